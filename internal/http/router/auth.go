package router

import (
	"github.com/gin-gonic/gin"
	"superpump.app/api/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, requireSession gin.HandlerFunc) {
	rg.POST("/sync", h.Sync)
	rg.GET("/me", requireSession, h.Me)
	rg.POST("/logout", h.Logout)
}
