package service

import (
	"context"
	"fmt"

	"superpump.app/api/core/db"
	"superpump.app/api/internal/service/integration"
	"superpump.app/api/internal/store"
)

// StoreProvider exposes only the stores needed by a transactional operation.
type StoreProvider interface {
	Users() store.UserStore
	Sessions() store.SessionStore
	Workspaces() store.WorkspaceStore
	SlackCredentials() store.SlackCredentialStore
	Posts() store.PostStore
	Bookmarks() store.BookmarkStore
}

// TxRunner runs functions within a transaction and provides stores bound to that transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type dbTxRunner struct {
	db *db.DB
}

// NewTxRunner builds a TxRunner backed by the core DB.
func NewTxRunner(database *db.DB) TxRunner {
	return &dbTxRunner{db: database}
}

func (r *dbTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithTx(ctx, func(q db.Querier) error {
		stores := store.NewStores(q)
		return fn(stores)
	})
}

// slackTxRunnerAdapter bridges the service.TxRunner and integration.TxRunner
// interfaces.
//
// The integration package defines its own TxRunner interface (with
// integration.StoreProvider) rather than importing service.TxRunner. This
// avoids an import cycle: service -> integration -> service. The factory
// adapts its runner to the narrower interface, keeping dependencies flowing
// in one direction.
type slackTxRunnerAdapter struct {
	tx TxRunner
}

func (a *slackTxRunnerAdapter) WithTx(ctx context.Context, fn func(stores integration.StoreProvider) error) error {
	return a.tx.WithTx(ctx, func(sp StoreProvider) error {
		s, ok := sp.(*store.Stores)
		if !ok {
			return fmt.Errorf("unexpected store provider type %T", sp)
		}
		return fn(s)
	})
}
