package router

import (
	"github.com/gin-gonic/gin"
	"superpump.app/api/internal/http/handler"
)

func PostRouter(rg *gin.RouterGroup, h *handler.PostHandler) {
	rg.POST("", h.Track)
	rg.GET("", h.List)
	rg.GET("/metrics", h.Metrics)
}
