package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"superpump.app/api/internal/http/dto"
	"superpump.app/api/internal/http/middleware"
	"superpump.app/api/internal/service"
)

type BookmarkHandler struct {
	bookmarkService service.BookmarkService
}

func NewBookmarkHandler(bookmarkService service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{bookmarkService: bookmarkService}
}

func (h *BookmarkHandler) Add(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req dto.AddBookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bm, err := h.bookmarkService.Add(ctx, user.ID, service.AddBookmarkInput{
		MemberID:   req.MemberID,
		MemberName: req.MemberName,
		ProfileURL: req.ProfileURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkspaceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "workspace not found"})
		case errors.Is(err, service.ErrDuplicateBookmark):
			c.JSON(http.StatusConflict, gin.H{"error": "member already bookmarked"})
		default:
			slog.ErrorContext(ctx, "failed to add bookmark", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add bookmark"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookmarkResponse(bm))
}

func (h *BookmarkHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	bookmarks, err := h.bookmarkService.List(ctx, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrWorkspaceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workspace not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to list bookmarks", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookmarks"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBookmarksResponse(bookmarks))
}

func (h *BookmarkHandler) Remove(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	bookmarkID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bookmark id"})
		return
	}

	if err := h.bookmarkService.Remove(ctx, user.ID, bookmarkID); err != nil {
		switch {
		case errors.Is(err, service.ErrWorkspaceNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "workspace not found"})
		case errors.Is(err, service.ErrBookmarkNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "bookmark not found"})
		default:
			slog.ErrorContext(ctx, "failed to remove bookmark", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove bookmark"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": true})
}
