package service

import "errors"

var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrSessionExpired    = errors.New("session expired")
	ErrUserNotFound      = errors.New("user not found")
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrDuplicateBookmark = errors.New("member already bookmarked")
	ErrBookmarkNotFound  = errors.New("bookmark not found")
	ErrPostNotFound      = errors.New("post not found")
)
