package controllers

import (
	"strconv"
	"strings"

	"github.com/fsdevblog/golinks/internal/controllers/middlewares"
	"github.com/gin-gonic/gin"
)

// linkParams вход мутаций: пары ключ/значение формы либо такой же JSON.
type linkParams struct {
	URL        string `form:"url" json:"url"`
	CustomSlug string `form:"customSlug" json:"customSlug"`
}

// isJSONRequest Определяет тип запроса (json или нет) по заголовку Content-Type.
func isJSONRequest(ctx *gin.Context) bool {
	ct := ctx.Request.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/json")
}

// bindLinkParams разбирает тело запроса в зависимости от Content-Type.
func bindLinkParams(ctx *gin.Context) (linkParams, error) {
	var params linkParams
	if isJSONRequest(ctx) {
		return params, ctx.ShouldBindJSON(&params) //nolint:wrapcheck
	}
	return params, ctx.ShouldBind(&params) //nolint:wrapcheck
}

// currentUserID достает идентификатор пользователя, положенный в контекст
// миддлварой авторизации.
func currentUserID(ctx *gin.Context) (string, bool) {
	val, ok := ctx.Get(middlewares.UserIDKey)
	if !ok {
		return "", false
	}
	userID, isStr := val.(string)
	return userID, isStr && userID != ""
}

// parseLinkID разбирает path-параметр id.
func parseLinkID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
