package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"superpump.app/api/internal/http/dto"
	"superpump.app/api/internal/http/middleware"
	"superpump.app/api/internal/service/integration"
)

type SlackHandler struct {
	slackService integration.SlackService
	dashboardURL string
}

func NewSlackHandler(slackService integration.SlackService, dashboardURL string) *SlackHandler {
	return &SlackHandler{
		slackService: slackService,
		dashboardURL: dashboardURL,
	}
}

// Connect kicks off the OAuth flow by redirecting the browser to Slack's
// consent screen. The tenant id travels as the OAuth state parameter.
func (h *SlackHandler) Connect(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid user_id"})
		return
	}

	authURL, err := h.slackService.AuthorizeURL(userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to build authorize url", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "slack integration is not configured"})
		return
	}

	c.Redirect(http.StatusFound, authURL)
}

// Callback finishes the OAuth flow. Whatever happens, the browser lands back
// on the dashboard; failures are reported through the slack_error query param
// rather than an error page.
func (h *SlackHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	if errParam := c.Query("error"); errParam != "" {
		slog.WarnContext(ctx, "slack oauth denied", "error", errParam)
		h.redirectError(c, errParam)
		return
	}

	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		h.redirectError(c, "missing_parameters")
		return
	}

	if err := h.slackService.HandleCallback(ctx, code, state); err != nil {
		slog.ErrorContext(ctx, "slack callback failed", "error", err)
		h.redirectError(c, callbackErrorReason(err))
		return
	}

	c.Redirect(http.StatusFound, h.dashboardURL+"?slack_success=true")
}

// Members lists the connected workspace's human members.
func (h *SlackHandler) Members(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	result, err := h.slackService.ListMembers(ctx, user.ID)
	if err != nil {
		if errors.Is(err, integration.ErrCredentialNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "slack credential not found"})
			return
		}
		var provErr *integration.ProviderError
		if errors.As(err, &provErr) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": provErr.Code})
			return
		}
		slog.ErrorContext(ctx, "failed to list members", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list members"})
		return
	}

	c.JSON(http.StatusOK, dto.ToMembersResponse(result.Members, string(result.Reason)))
}

// Disconnect drops the workspace's Slack connection and credential.
func (h *SlackHandler) Disconnect(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	if err := h.slackService.Disconnect(ctx, user.ID); err != nil {
		slog.ErrorContext(ctx, "failed to disconnect slack", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to disconnect"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"disconnected": true})
}

func (h *SlackHandler) redirectError(c *gin.Context, reason string) {
	c.Redirect(http.StatusFound, h.dashboardURL+"?slack_error="+url.QueryEscape(reason))
}

func callbackErrorReason(err error) string {
	switch {
	case errors.Is(err, integration.ErrInvalidState):
		return "missing_parameters"
	case errors.Is(err, integration.ErrNotConfigured):
		return "configuration_error"
	case errors.Is(err, integration.ErrPersistence):
		return "database_error"
	}

	var provErr *integration.ProviderError
	if errors.As(err, &provErr) {
		return provErr.Code
	}
	return err.Error()
}
