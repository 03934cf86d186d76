package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"superpump.app/api/core/db"
	"superpump.app/api/internal/model"
)

type workspaceStore struct {
	q db.Querier
}

func newWorkspaceStore(q db.Querier) WorkspaceStore {
	return &workspaceStore{q: q}
}

const workspaceColumns = `id, user_id, team_name, is_connected, connected_at, slack_auth_id, notify_channel, created_at, updated_at`

func (s *workspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+workspaceColumns+` FROM workspaces WHERE id = $1`, id)
	return scanWorkspace(row)
}

func (s *workspaceStore) GetByUser(ctx context.Context, userID int64) (*model.Workspace, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+workspaceColumns+` FROM workspaces WHERE user_id = $1`, userID)
	return scanWorkspace(row)
}

func (s *workspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	row := s.q.QueryRow(ctx, `
		INSERT INTO workspaces (id, user_id, team_name, is_connected, connected_at)
		VALUES ($1, $2, $3, $4, CASE WHEN $4 THEN now() END)
		RETURNING `+workspaceColumns,
		ws.ID, ws.UserID, ws.TeamName, ws.IsConnected)

	stored, err := scanWorkspace(row)
	if err != nil {
		return err
	}
	*ws = *stored
	return nil
}

func (s *workspaceStore) MarkConnected(ctx context.Context, id int64, teamName string) (*model.Workspace, error) {
	row := s.q.QueryRow(ctx, `
		UPDATE workspaces
		SET team_name = $2,
		    is_connected = TRUE,
		    connected_at = now(),
		    updated_at = now()
		WHERE id = $1
		RETURNING `+workspaceColumns,
		id, teamName)
	return scanWorkspace(row)
}

func (s *workspaceStore) SetSlackAuthID(ctx context.Context, id int64, credentialID int64) error {
	tag, err := s.q.Exec(ctx, `
		UPDATE workspaces
		SET slack_auth_id = $2, updated_at = now()
		WHERE id = $1`,
		id, credentialID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *workspaceStore) SetNotifyChannel(ctx context.Context, id int64, channel *string) (*model.Workspace, error) {
	row := s.q.QueryRow(ctx, `
		UPDATE workspaces
		SET notify_channel = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+workspaceColumns,
		id, channel)
	return scanWorkspace(row)
}

func (s *workspaceStore) Disconnect(ctx context.Context, id int64) (*model.Workspace, error) {
	row := s.q.QueryRow(ctx, `
		UPDATE workspaces
		SET is_connected = FALSE,
		    connected_at = NULL,
		    slack_auth_id = NULL,
		    updated_at = now()
		WHERE id = $1
		RETURNING `+workspaceColumns,
		id)
	return scanWorkspace(row)
}

func scanWorkspace(row pgx.Row) (*model.Workspace, error) {
	var ws model.Workspace
	err := row.Scan(
		&ws.ID,
		&ws.UserID,
		&ws.TeamName,
		&ws.IsConnected,
		&ws.ConnectedAt,
		&ws.SlackAuthID,
		&ws.NotifyChannel,
		&ws.CreatedAt,
		&ws.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &ws, nil
}
