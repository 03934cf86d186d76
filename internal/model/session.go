package model

import "time"

type Session struct {
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Token     string    `json:"-"`
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
}
