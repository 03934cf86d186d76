package store

import (
	"context"
	"errors"

	"superpump.app/api/internal/model"
)

var ErrNotFound = errors.New("not found")

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpsertByEmail(ctx context.Context, user *model.User) error
}

type SessionStore interface {
	GetByToken(ctx context.Context, token string) (*model.Session, error)
	GetValidByToken(ctx context.Context, token string) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteExpired(ctx context.Context) error
}

type WorkspaceStore interface {
	GetByID(ctx context.Context, id int64) (*model.Workspace, error)
	GetByUser(ctx context.Context, userID int64) (*model.Workspace, error)
	Create(ctx context.Context, ws *model.Workspace) error
	MarkConnected(ctx context.Context, id int64, teamName string) (*model.Workspace, error)
	SetSlackAuthID(ctx context.Context, id int64, credentialID int64) error
	SetNotifyChannel(ctx context.Context, id int64, channel *string) (*model.Workspace, error)
	Disconnect(ctx context.Context, id int64) (*model.Workspace, error)
}

type SlackCredentialStore interface {
	GetByID(ctx context.Context, id int64) (*model.SlackCredential, error)
	GetByWorkspace(ctx context.Context, workspaceID int64) (*model.SlackCredential, error)
	// Upsert creates or replaces the credential keyed by workspace reference,
	// so a reconnect never produces a second row for the same workspace.
	Upsert(ctx context.Context, cred *model.SlackCredential) error
	DeleteByWorkspace(ctx context.Context, workspaceID int64) error
}

type PostStore interface {
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	GetByWorkspaceAndURL(ctx context.Context, workspaceID int64, url string) (*model.Post, error)
	Create(ctx context.Context, post *model.Post) error
	UpdateEngagement(ctx context.Context, id int64, likes, comments, reposts int32) (*model.Post, error)
	MarkNotified(ctx context.Context, id int64) error
	ListByWorkspace(ctx context.Context, workspaceID int64, limit int32) ([]model.Post, error)
}

type BookmarkStore interface {
	GetByID(ctx context.Context, id int64) (*model.Bookmark, error)
	GetByWorkspaceAndMember(ctx context.Context, workspaceID int64, memberID string) (*model.Bookmark, error)
	Create(ctx context.Context, bm *model.Bookmark) error
	Delete(ctx context.Context, id int64) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Bookmark, error)
}
