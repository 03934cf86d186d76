package dto

import "time"

type WorkspaceStatusResponse struct {
	Connected     bool       `json:"connected"`
	TeamName      string     `json:"team_name,omitempty"`
	ConnectedAt   *time.Time `json:"connected_at,omitempty"`
	NotifyChannel *string    `json:"notify_channel,omitempty"`
}

type UpdateWorkspaceRequest struct {
	NotifyChannel *string `json:"notify_channel" binding:"omitempty,max=255"`
}
