package controllers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/fsdevblog/golinks/internal/models"
	"github.com/fsdevblog/golinks/internal/services"
	"github.com/gin-gonic/gin"
)

// mutationResponse ответ мутаций: {success, shortCode} либо {success, error}.
type mutationResponse struct {
	Success   bool   `json:"success"`
	ShortCode string `json:"shortCode,omitempty"`
	Error     string `json:"error,omitempty"`
}

// linkItem запись списка: модель плюс готовая короткая ссылка.
type linkItem struct {
	models.Link
	ShortURL string `json:"shortUrl"`
}

type listResponse struct {
	Success bool       `json:"success"`
	Links   []linkItem `json:"links,omitempty"`
	Error   string     `json:"error,omitempty"`
}

// LinksController обслуживает дашборд: список ссылок владельца и мутации.
type LinksController struct {
	linkService LinkManager
	baseURL     *url.URL
}

func NewLinksController(linkService LinkManager, baseURL *url.URL) *LinksController {
	return &LinksController{
		linkService: linkService,
		baseURL:     baseURL,
	}
}

// Create принимает url и необязательный customSlug.
func (l *LinksController) Create(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		l.fail(ctx, services.ErrUnauthorized, msgFailedCreate)
		return
	}

	params, bindErr := bindLinkParams(ctx)
	if bindErr != nil {
		ctx.JSON(http.StatusBadRequest, mutationResponse{Error: msgFailedCreate})
		return
	}

	link, createErr := l.linkService.Create(ctx.Request.Context(), userID, params.URL, params.CustomSlug)
	if createErr != nil {
		l.fail(ctx, createErr, msgFailedCreate)
		return
	}

	ctx.JSON(http.StatusCreated, mutationResponse{Success: true, ShortCode: link.ShortCode})
}

func (l *LinksController) Update(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		l.fail(ctx, services.ErrUnauthorized, msgFailedUpdate)
		return
	}

	id, idOK := parseLinkID(ctx)
	if !idOK {
		l.fail(ctx, services.ErrLinkNotFound, msgFailedUpdate)
		return
	}

	params, bindErr := bindLinkParams(ctx)
	if bindErr != nil {
		ctx.JSON(http.StatusBadRequest, mutationResponse{Error: msgFailedUpdate})
		return
	}

	link, updateErr := l.linkService.Update(ctx.Request.Context(), userID, id, params.URL, params.CustomSlug)
	if updateErr != nil {
		l.fail(ctx, updateErr, msgFailedUpdate)
		return
	}

	ctx.JSON(http.StatusOK, mutationResponse{Success: true, ShortCode: link.ShortCode})
}

func (l *LinksController) Delete(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		l.fail(ctx, services.ErrUnauthorized, msgFailedDelete)
		return
	}

	id, idOK := parseLinkID(ctx)
	if !idOK {
		l.fail(ctx, services.ErrLinkNotFound, msgFailedDelete)
		return
	}

	if delErr := l.linkService.Delete(ctx.Request.Context(), userID, id); delErr != nil {
		l.fail(ctx, delErr, msgFailedDelete)
		return
	}

	ctx.JSON(http.StatusOK, mutationResponse{Success: true})
}

// List отдает ссылки владельца, свежие первыми.
func (l *LinksController) List(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, listResponse{Error: services.ErrUnauthorized.Error()})
		return
	}

	links, listErr := l.linkService.GetAllByUserID(ctx.Request.Context(), userID)
	if listErr != nil {
		ctx.JSON(errorStatus(listErr), listResponse{Error: errorMessage(listErr, msgFailedList)})
		return
	}

	items := make([]linkItem, 0, len(links))
	for _, link := range links {
		items = append(items, linkItem{
			Link:     link,
			ShortURL: l.getShortURL(ctx.Request, link.ShortCode),
		})
	}

	ctx.JSON(http.StatusOK, listResponse{Success: true, Links: items})
}

// getShortURL собирает полную короткую ссылку. Без настроенного базового
// адреса берем Scheme://Host текущего запроса.
func (l *LinksController) getShortURL(r *http.Request, shortCode string) string {
	if l.baseURL == nil {
		var scheme = "http"
		if r.TLS != nil {
			scheme = "https"
		}
		return fmt.Sprintf("%s://%s/%s", scheme, r.Host, shortCode)
	}
	return fmt.Sprintf("%s/%s", l.baseURL, shortCode)
}

func (l *LinksController) fail(ctx *gin.Context, err error, genericMsg string) {
	_ = ctx.Error(err)
	ctx.JSON(errorStatus(err), mutationResponse{Error: errorMessage(err, genericMsg)})
}
