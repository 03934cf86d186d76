package model

import "time"

// SlackCredential stores the bot token granted for a workspace install.
// At most one credential exists per workspace, enforced by a unique
// constraint on WorkspaceID. The token is only ever used server-side.
type SlackCredential struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	InstalledAt time.Time `json:"installed_at"`
	TeamID      string    `json:"team_id"`
	AccessToken string    `json:"-"`
	Scopes      string    `json:"scopes"`
	ID          int64     `json:"id"`
	WorkspaceID int64     `json:"workspace_id"`
}
