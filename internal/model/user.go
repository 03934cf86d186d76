package model

import "time"

// User rows are provisioned by the dashboard's sync call on sign-in; there is
// no self-registration path on this side.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"` // unique, the sync upsert key
	AvatarURL *string   `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
