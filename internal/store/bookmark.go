package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"superpump.app/api/core/db"
	"superpump.app/api/internal/model"
)

type bookmarkStore struct {
	q db.Querier
}

func newBookmarkStore(q db.Querier) BookmarkStore {
	return &bookmarkStore{q: q}
}

const bookmarkColumns = `id, workspace_id, member_id, member_name, profile_url, created_at`

func (s *bookmarkStore) GetByID(ctx context.Context, id int64) (*model.Bookmark, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+bookmarkColumns+` FROM bookmarks WHERE id = $1`, id)
	return scanBookmark(row)
}

func (s *bookmarkStore) GetByWorkspaceAndMember(ctx context.Context, workspaceID int64, memberID string) (*model.Bookmark, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+bookmarkColumns+` FROM bookmarks WHERE workspace_id = $1 AND member_id = $2`,
		workspaceID, memberID)
	return scanBookmark(row)
}

func (s *bookmarkStore) Create(ctx context.Context, bm *model.Bookmark) error {
	row := s.q.QueryRow(ctx, `
		INSERT INTO bookmarks (id, workspace_id, member_id, member_name, profile_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+bookmarkColumns,
		bm.ID, bm.WorkspaceID, bm.MemberID, bm.MemberName, bm.ProfileURL)

	stored, err := scanBookmark(row)
	if err != nil {
		return err
	}
	*bm = *stored
	return nil
}

func (s *bookmarkStore) Delete(ctx context.Context, id int64) error {
	_, err := s.q.Exec(ctx, `DELETE FROM bookmarks WHERE id = $1`, id)
	return err
}

func (s *bookmarkStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Bookmark, error) {
	rows, err := s.q.Query(ctx, `
		SELECT `+bookmarkColumns+`
		FROM bookmarks
		WHERE workspace_id = $1
		ORDER BY member_name`,
		workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookmarks []model.Bookmark
	for rows.Next() {
		bm, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, *bm)
	}
	return bookmarks, rows.Err()
}

func scanBookmark(row pgx.Row) (*model.Bookmark, error) {
	var bm model.Bookmark
	err := row.Scan(&bm.ID, &bm.WorkspaceID, &bm.MemberID, &bm.MemberName, &bm.ProfileURL, &bm.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &bm, nil
}
