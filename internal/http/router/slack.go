package router

import (
	"github.com/gin-gonic/gin"
	"superpump.app/api/internal/http/handler"
	"superpump.app/api/internal/http/middleware"
)

func SlackRouter(router *gin.Engine, h *handler.SlackHandler, requireSession gin.HandlerFunc, dashboardURL string) {
	// The connect and callback routes face a browser mid-OAuth, so even a
	// panic must land it back on the dashboard rather than a JSON error.
	browserRecovery := middleware.RecoveryRedirect(dashboardURL + "?slack_error=internal_error")

	router.GET("/slack-auth", browserRecovery, h.Connect)
	router.GET("/slack-callback", browserRecovery, h.Callback)
	router.GET("/slack-members", requireSession, h.Members)
	router.POST("/slack-disconnect", requireSession, h.Disconnect)
}
