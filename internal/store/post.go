package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"superpump.app/api/core/db"
	"superpump.app/api/internal/model"
)

type postStore struct {
	q db.Querier
}

func newPostStore(q db.Querier) PostStore {
	return &postStore{q: q}
}

const postColumns = `id, workspace_id, member_id, member_name, url, title, likes, comments, reposts, posted_at, notified_at, created_at, updated_at`

func (s *postStore) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	return scanPost(row)
}

func (s *postStore) GetByWorkspaceAndURL(ctx context.Context, workspaceID int64, url string) (*model.Post, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+postColumns+` FROM posts WHERE workspace_id = $1 AND url = $2`, workspaceID, url)
	return scanPost(row)
}

func (s *postStore) Create(ctx context.Context, post *model.Post) error {
	row := s.q.QueryRow(ctx, `
		INSERT INTO posts (id, workspace_id, member_id, member_name, url, title, likes, comments, reposts, posted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+postColumns,
		post.ID, post.WorkspaceID, post.MemberID, post.MemberName, post.URL,
		post.Title, post.Likes, post.Comments, post.Reposts, post.PostedAt)

	stored, err := scanPost(row)
	if err != nil {
		return err
	}
	*post = *stored
	return nil
}

func (s *postStore) UpdateEngagement(ctx context.Context, id int64, likes, comments, reposts int32) (*model.Post, error) {
	row := s.q.QueryRow(ctx, `
		UPDATE posts
		SET likes = $2, comments = $3, reposts = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+postColumns,
		id, likes, comments, reposts)
	return scanPost(row)
}

func (s *postStore) MarkNotified(ctx context.Context, id int64) error {
	tag, err := s.q.Exec(ctx,
		`UPDATE posts SET notified_at = now(), updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *postStore) ListByWorkspace(ctx context.Context, workspaceID int64, limit int32) ([]model.Post, error) {
	rows, err := s.q.Query(ctx, `
		SELECT `+postColumns+`
		FROM posts
		WHERE workspace_id = $1
		ORDER BY posted_at DESC
		LIMIT NULLIF($2, 0)`,
		workspaceID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var p model.Post
	err := row.Scan(
		&p.ID,
		&p.WorkspaceID,
		&p.MemberID,
		&p.MemberName,
		&p.URL,
		&p.Title,
		&p.Likes,
		&p.Comments,
		&p.Reposts,
		&p.PostedAt,
		&p.NotifiedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
