package router

import (
	"github.com/gin-gonic/gin"
	"superpump.app/api/internal/http/handler"
	"superpump.app/api/internal/http/middleware"
	"superpump.app/api/internal/service"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authService := services.Auth()
	requireSession := middleware.RequireSession(authService)

	authHandler := handler.NewAuthHandler(authService)
	AuthRouter(router.Group("/auth"), authHandler, requireSession)

	// The Slack connect flow keeps its legacy top-level paths because Slack's
	// app config points at them.
	slackHandler := handler.NewSlackHandler(services.Slack(), cfg.DashboardURL)
	SlackRouter(router, slackHandler, requireSession, cfg.DashboardURL)

	v1 := router.Group("/api/v1")
	v1.Use(requireSession)
	{
		workspaceHandler := handler.NewWorkspaceHandler(services.Slack())
		WorkspaceRouter(v1.Group("/workspace"), workspaceHandler)

		postHandler := handler.NewPostHandler(services.Posts())
		PostRouter(v1.Group("/posts"), postHandler)

		bookmarkHandler := handler.NewBookmarkHandler(services.Bookmarks())
		BookmarkRouter(v1.Group("/bookmarks"), bookmarkHandler)
	}
}
