package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"superpump.app/api/common/id"
	"superpump.app/api/internal/model"
	"superpump.app/api/internal/store"
)

// AddBookmarkInput identifies the workspace member to bookmark.
type AddBookmarkInput struct {
	MemberID   string
	MemberName string
	ProfileURL *string
}

type BookmarkService interface {
	Add(ctx context.Context, userID int64, input AddBookmarkInput) (*model.Bookmark, error)
	List(ctx context.Context, userID int64) ([]model.Bookmark, error)
	Remove(ctx context.Context, userID int64, bookmarkID int64) error
}

type bookmarkService struct {
	workspaceStore store.WorkspaceStore
	bookmarkStore  store.BookmarkStore
}

func NewBookmarkService(workspaceStore store.WorkspaceStore, bookmarkStore store.BookmarkStore) BookmarkService {
	return &bookmarkService{
		workspaceStore: workspaceStore,
		bookmarkStore:  bookmarkStore,
	}
}

func (s *bookmarkService) Add(ctx context.Context, userID int64, input AddBookmarkInput) (*model.Bookmark, error) {
	ws, err := s.workspace(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.bookmarkStore.GetByWorkspaceAndMember(ctx, ws.ID, input.MemberID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("looking up bookmark: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateBookmark
	}

	bm := &model.Bookmark{
		ID:          id.New(),
		WorkspaceID: ws.ID,
		MemberID:    input.MemberID,
		MemberName:  input.MemberName,
		ProfileURL:  input.ProfileURL,
	}

	if err := s.bookmarkStore.Create(ctx, bm); err != nil {
		return nil, fmt.Errorf("creating bookmark: %w", err)
	}

	slog.InfoContext(ctx, "member bookmarked", "workspace_id", ws.ID, "member_id", input.MemberID)
	return bm, nil
}

func (s *bookmarkService) List(ctx context.Context, userID int64) ([]model.Bookmark, error) {
	ws, err := s.workspace(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookmarks, err := s.bookmarkStore.ListByWorkspace(ctx, ws.ID)
	if err != nil {
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}
	if bookmarks == nil {
		bookmarks = []model.Bookmark{}
	}
	return bookmarks, nil
}

func (s *bookmarkService) Remove(ctx context.Context, userID int64, bookmarkID int64) error {
	ws, err := s.workspace(ctx, userID)
	if err != nil {
		return err
	}

	bm, err := s.bookmarkStore.GetByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBookmarkNotFound
		}
		return fmt.Errorf("getting bookmark: %w", err)
	}

	// Tenants can only remove their own bookmarks.
	if bm.WorkspaceID != ws.ID {
		return ErrBookmarkNotFound
	}

	if err := s.bookmarkStore.Delete(ctx, bm.ID); err != nil {
		return fmt.Errorf("deleting bookmark: %w", err)
	}
	return nil
}

func (s *bookmarkService) workspace(ctx context.Context, userID int64) (*model.Workspace, error) {
	ws, err := s.workspaceStore.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("fetching workspace: %w", err)
	}
	return ws, nil
}
