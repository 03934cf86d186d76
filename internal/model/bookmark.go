package model

import "time"

// Bookmark marks a workspace member whose posts should be watched.
// One bookmark per member per workspace.
type Bookmark struct {
	CreatedAt   time.Time `json:"created_at"`
	MemberID    string    `json:"member_id"`
	MemberName  string    `json:"member_name"`
	ProfileURL  *string   `json:"profile_url,omitempty"`
	ID          int64     `json:"id"`
	WorkspaceID int64     `json:"workspace_id"`
}
