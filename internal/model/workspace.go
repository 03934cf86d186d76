package model

import "time"

// Workspace links a tenant (user) to at most one Slack team.
// IsConnected=true implies a non-nil SlackAuthID; disconnecting clears both.
type Workspace struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	TeamName      string     `json:"team_name"`
	IsConnected   bool       `json:"is_connected"`
	ConnectedAt   *time.Time `json:"connected_at,omitempty"`
	SlackAuthID   *int64     `json:"-"`
	NotifyChannel *string    `json:"notify_channel,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
