package router

import (
	"github.com/gin-gonic/gin"
	"superpump.app/api/internal/http/handler"
)

func BookmarkRouter(rg *gin.RouterGroup, h *handler.BookmarkHandler) {
	rg.POST("", h.Add)
	rg.GET("", h.List)
	rg.DELETE("/:id", h.Remove)
}
