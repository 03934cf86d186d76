package router

import (
	"github.com/gin-gonic/gin"
	"superpump.app/api/internal/http/handler"
)

func WorkspaceRouter(rg *gin.RouterGroup, h *handler.WorkspaceHandler) {
	rg.GET("", h.Status)
	rg.PATCH("", h.Update)
}
