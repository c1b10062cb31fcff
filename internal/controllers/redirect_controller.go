package controllers

import (
	"net/http"

	"github.com/fsdevblog/golinks/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// RedirectController обслуживает переходы по коротким ссылкам.
type RedirectController struct {
	linkService LinkManager
}

func NewRedirectController(linkService LinkManager) *RedirectController {
	return &RedirectController{linkService: linkService}
}

// Redirect находит ссылку по коду, засчитывает переход и отвечает 307,
// чтобы метод и тело запроса пережили редирект.
func (r *RedirectController) Redirect(ctx *gin.Context) {
	shortCode := ctx.Param("shortCode")

	link, err := r.linkService.Resolve(ctx.Request.Context(), shortCode)
	if err != nil {
		if errors.Is(err, services.ErrLinkNotFound) {
			ctx.String(http.StatusNotFound, "Link not found")
			return
		}
		_ = ctx.Error(err)
		ctx.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	ctx.Redirect(http.StatusTemporaryRedirect, link.OriginalURL)
}
