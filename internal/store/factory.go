package store

import (
	"superpump.app/api/core/db"
)

type Stores struct {
	q db.Querier
}

// NewStores builds the store set over the given querier, which may be a
// connection pool or a transaction.
func NewStores(q db.Querier) *Stores {
	return &Stores{q: q}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.q)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.q)
}

func (s *Stores) Workspaces() WorkspaceStore {
	return newWorkspaceStore(s.q)
}

func (s *Stores) SlackCredentials() SlackCredentialStore {
	return newSlackCredentialStore(s.q)
}

func (s *Stores) Posts() PostStore {
	return newPostStore(s.q)
}

func (s *Stores) Bookmarks() BookmarkStore {
	return newBookmarkStore(s.q)
}
