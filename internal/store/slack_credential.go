package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"superpump.app/api/core/db"
	"superpump.app/api/internal/model"
)

type slackCredentialStore struct {
	q db.Querier
}

func newSlackCredentialStore(q db.Querier) SlackCredentialStore {
	return &slackCredentialStore{q: q}
}

const credentialColumns = `id, workspace_id, team_id, access_token, scopes, installed_at, created_at, updated_at`

func (s *slackCredentialStore) GetByID(ctx context.Context, id int64) (*model.SlackCredential, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+credentialColumns+` FROM slack_credentials WHERE id = $1`, id)
	return scanCredential(row)
}

func (s *slackCredentialStore) GetByWorkspace(ctx context.Context, workspaceID int64) (*model.SlackCredential, error) {
	row := s.q.QueryRow(ctx,
		`SELECT `+credentialColumns+` FROM slack_credentials WHERE workspace_id = $1`, workspaceID)
	return scanCredential(row)
}

// Upsert relies on the UNIQUE constraint on workspace_id: a reconnect
// replaces the stored token rather than inserting a second row, and two
// concurrent callbacks for the same workspace cannot both insert.
func (s *slackCredentialStore) Upsert(ctx context.Context, cred *model.SlackCredential) error {
	row := s.q.QueryRow(ctx, `
		INSERT INTO slack_credentials (id, workspace_id, team_id, access_token, scopes, installed_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (workspace_id) DO UPDATE
		SET team_id = EXCLUDED.team_id,
		    access_token = EXCLUDED.access_token,
		    scopes = EXCLUDED.scopes,
		    installed_at = now(),
		    updated_at = now()
		RETURNING `+credentialColumns,
		cred.ID, cred.WorkspaceID, cred.TeamID, cred.AccessToken, cred.Scopes)

	stored, err := scanCredential(row)
	if err != nil {
		return err
	}
	*cred = *stored
	return nil
}

func (s *slackCredentialStore) DeleteByWorkspace(ctx context.Context, workspaceID int64) error {
	_, err := s.q.Exec(ctx,
		`DELETE FROM slack_credentials WHERE workspace_id = $1`, workspaceID)
	return err
}

func scanCredential(row pgx.Row) (*model.SlackCredential, error) {
	var cred model.SlackCredential
	err := row.Scan(
		&cred.ID,
		&cred.WorkspaceID,
		&cred.TeamID,
		&cred.AccessToken,
		&cred.Scopes,
		&cred.InstalledAt,
		&cred.CreatedAt,
		&cred.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cred, nil
}
