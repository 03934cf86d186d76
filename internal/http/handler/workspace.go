package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"superpump.app/api/internal/http/dto"
	"superpump.app/api/internal/http/middleware"
	"superpump.app/api/internal/service/integration"
)

type WorkspaceHandler struct {
	slackService integration.SlackService
}

func NewWorkspaceHandler(slackService integration.SlackService) *WorkspaceHandler {
	return &WorkspaceHandler{slackService: slackService}
}

func (h *WorkspaceHandler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	status, err := h.slackService.Status(ctx, user.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get workspace status", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get workspace status"})
		return
	}

	c.JSON(http.StatusOK, dto.WorkspaceStatusResponse{
		Connected:     status.Connected,
		TeamName:      status.TeamName,
		ConnectedAt:   status.ConnectedAt,
		NotifyChannel: status.NotifyChannel,
	})
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	var req dto.UpdateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	status, err := h.slackService.SetNotifyChannel(ctx, user.ID, req.NotifyChannel)
	if err != nil {
		if errors.Is(err, integration.ErrNoWorkspace) {
			c.JSON(http.StatusNotFound, gin.H{"error": "workspace not found"})
			return
		}
		slog.ErrorContext(ctx, "failed to update workspace", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update workspace"})
		return
	}

	c.JSON(http.StatusOK, dto.WorkspaceStatusResponse{
		Connected:     status.Connected,
		TeamName:      status.TeamName,
		ConnectedAt:   status.ConnectedAt,
		NotifyChannel: status.NotifyChannel,
	})
}
