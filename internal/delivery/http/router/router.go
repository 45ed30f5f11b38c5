// Package router registers the API routes.
package router

import (
	"adcopy/internal/delivery/http/middleware"
	"adcopy/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CloudHandler      *handler.CloudHandler
	ProjectHandler    *handler.ProjectHandler
	GenerationHandler *handler.GenerationHandler
	ScrapeHandler     *handler.ScrapeHandler
	TemplateHandler   *handler.TemplateHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

type router struct {
	cloud          *handler.CloudHandler
	projects       *handler.ProjectHandler
	generations    *handler.GenerationHandler
	scrape         *handler.ScrapeHandler
	templates      *handler.TemplateHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		cloud:          params.CloudHandler,
		projects:       params.ProjectHandler,
		generations:    params.GenerationHandler,
		scrape:         params.ScrapeHandler,
		templates:      params.TemplateHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authed := e.Group("", r.authMiddleware.Authenticate)

	cloudGroup := authed.Group("/cloud")
	{
		cloudGroup.GET("/files", r.cloud.ListFiles)
		cloudGroup.GET("/oauth/url", r.cloud.AuthorizationURL)
		cloudGroup.POST("/oauth/callback", r.cloud.OAuthCallback)
		cloudGroup.GET("/connection", r.cloud.ConnectionStatus)
		cloudGroup.DELETE("/connection", r.cloud.Disconnect)
	}

	projectGroup := authed.Group("/projects")
	{
		projectGroup.POST("", r.projects.CreateProject)
		projectGroup.GET("", r.projects.ListProjects)
		projectGroup.GET("/:id", r.projects.GetProject)
		projectGroup.PATCH("/:id", r.projects.UpdateProject)
		projectGroup.DELETE("/:id", r.projects.DeleteProject)

		projectGroup.POST("/:id/assets", r.projects.ImportAssets)
		projectGroup.GET("/:id/assets", r.projects.ListAssets)
		projectGroup.DELETE("/:id/assets/:assetId", r.projects.DeleteAsset)
		projectGroup.POST("/:id/assets/interpret", r.projects.InterpretAssets)

		projectGroup.POST("/:id/generate", r.generations.Generate)
		projectGroup.POST("/:id/generate/async", r.generations.GenerateAsync)
		projectGroup.GET("/:id/generations", r.generations.ListGenerations)
	}

	authed.POST("/scrape", r.scrape.Scrape)

	templateGroup := authed.Group("/templates")
	{
		templateGroup.GET("", r.templates.ListTemplates)
		templateGroup.POST("", r.templates.CreateTemplate)
		templateGroup.GET("/default", r.templates.DefaultTemplate)
		templateGroup.GET("/:id", r.templates.GetTemplate)
		templateGroup.PUT("/:id", r.templates.UpdateTemplate)
		templateGroup.DELETE("/:id", r.templates.DeleteTemplate)
	}
}
