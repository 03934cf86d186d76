package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"superpump.app/api/common/id"
	"superpump.app/api/internal/model"
	"superpump.app/api/internal/store"
)

const sessionTTL = 7 * 24 * time.Hour

type AuthService interface {
	// Sync upserts the user by email and issues a fresh session token.
	Sync(ctx context.Context, name, email string, avatarURL *string) (*model.User, *model.Session, error)
	// ValidateToken resolves a bearer token to at most one user, or fails
	// with ErrUnauthenticated / ErrSessionExpired.
	ValidateToken(ctx context.Context, token string) (*model.User, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userStore    store.UserStore
	sessionStore store.SessionStore
}

func NewAuthService(userStore store.UserStore, sessionStore store.SessionStore) AuthService {
	return &authService{
		userStore:    userStore,
		sessionStore: sessionStore,
	}
}

func (s *authService) Sync(ctx context.Context, name, email string, avatarURL *string) (*model.User, *model.Session, error) {
	user := &model.User{
		ID:        id.New(),
		Name:      name,
		Email:     email,
		AvatarURL: avatarURL,
	}

	if err := s.userStore.UpsertByEmail(ctx, user); err != nil {
		slog.ErrorContext(ctx, "failed to upsert user", "error", err, "email", email)
		return nil, nil, fmt.Errorf("upserting user: %w", err)
	}

	token, err := generateToken()
	if err != nil {
		return nil, nil, fmt.Errorf("generating session token: %w", err)
	}

	session := &model.Session{
		ID:        id.New(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(sessionTTL),
	}

	if err := s.sessionStore.Create(ctx, session); err != nil {
		slog.ErrorContext(ctx, "failed to create session", "error", err, "user_id", user.ID)
		return nil, nil, fmt.Errorf("creating session: %w", err)
	}

	// Each sync issues a fresh session, so sweep expired rows here or they
	// accumulate forever.
	if err := s.sessionStore.DeleteExpired(ctx); err != nil {
		slog.WarnContext(ctx, "failed to prune expired sessions", "error", err)
	}

	slog.InfoContext(ctx, "user session issued", "user_id", user.ID, "session_id", session.ID)

	return user, session, nil
}

func (s *authService) ValidateToken(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	session, err := s.sessionStore.GetValidByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("getting session: %w", err)
	}

	user, err := s.userStore.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}

	return user, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	session, err := s.sessionStore.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("getting session: %w", err)
	}

	if err := s.sessionStore.Delete(ctx, session.ID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
