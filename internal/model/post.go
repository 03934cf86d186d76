package model

import "time"

// Post is a tracked LinkedIn post by a workspace member, with the
// engagement counts last seen for it.
type Post struct {
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	PostedAt    time.Time  `json:"posted_at"`
	NotifiedAt  *time.Time `json:"notified_at,omitempty"`
	MemberID    string     `json:"member_id"`
	MemberName  string     `json:"member_name"`
	URL         string     `json:"url"`
	Title       *string    `json:"title,omitempty"`
	ID          int64      `json:"id"`
	WorkspaceID int64      `json:"workspace_id"`
	Likes       int32      `json:"likes"`
	Comments    int32      `json:"comments"`
	Reposts     int32      `json:"reposts"`
}
