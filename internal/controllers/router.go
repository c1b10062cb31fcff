package controllers

import (
	"net/url"

	"github.com/fsdevblog/golinks/internal/controllers/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RouterParams struct {
	LinkService LinkManager
	BaseURL     *url.URL
	JWTSecret   []byte
	Logger      *logrus.Logger
}

func SetupRouter(p RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware(p.Logger))
	r.Use(middlewares.AuthCookieMiddleware(p.JWTSecret))

	redirectController := NewRedirectController(p.LinkService)
	linksController := NewLinksController(p.LinkService, p.BaseURL)

	r.GET("/:shortCode", redirectController.Redirect)

	api := r.Group("/api")
	links := api.Group("/links")
	links.GET("", linksController.List)
	links.POST("", linksController.Create)
	links.PUT("/:id", linksController.Update)
	links.DELETE("/:id", linksController.Delete)

	return r
}
