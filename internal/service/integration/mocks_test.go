package integration

import (
	"context"
	"sync"
	"time"

	"superpump.app/api/internal/model"
	"superpump.app/api/internal/store"
)

type fakeSlackAPI struct {
	exchangeCodeFn func(ctx context.Context, code string) (*OAuthGrant, error)
	listUsersFn    func(ctx context.Context, token string) ([]DirectoryUser, error)
	postMessageFn  func(ctx context.Context, token, channel, text string) error
}

func (f *fakeSlackAPI) ExchangeCode(ctx context.Context, code string) (*OAuthGrant, error) {
	if f.exchangeCodeFn != nil {
		return f.exchangeCodeFn(ctx, code)
	}
	return &OAuthGrant{}, nil
}

func (f *fakeSlackAPI) ListUsers(ctx context.Context, token string) ([]DirectoryUser, error) {
	if f.listUsersFn != nil {
		return f.listUsersFn(ctx, token)
	}
	return nil, nil
}

func (f *fakeSlackAPI) PostMessage(ctx context.Context, token, channel, text string) error {
	if f.postMessageFn != nil {
		return f.postMessageFn(ctx, token, channel, text)
	}
	return nil
}

type fakeWorkspaceStore struct {
	byID      map[int64]*model.Workspace
	createErr error
	mu        sync.Mutex
}

func newFakeWorkspaceStore() *fakeWorkspaceStore {
	return &fakeWorkspaceStore{byID: make(map[int64]*model.Workspace)}
}

func (f *fakeWorkspaceStore) seed(ws *model.Workspace) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy := *ws
	f.byID[ws.ID] = &copy
}

func (f *fakeWorkspaceStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

func (f *fakeWorkspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if ws, ok := f.byID[id]; ok {
		copy := *ws
		return &copy, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeWorkspaceStore) GetByUser(ctx context.Context, userID int64) (*model.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ws := range f.byID {
		if ws.UserID == userID {
			copy := *ws
			return &copy, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeWorkspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	ws.CreatedAt = now
	ws.UpdatedAt = now
	if ws.IsConnected {
		ws.ConnectedAt = &now
	}
	copy := *ws
	f.byID[ws.ID] = &copy
	return nil
}

func (f *fakeWorkspaceStore) MarkConnected(ctx context.Context, id int64, teamName string) (*model.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ws, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	now := time.Now()
	ws.TeamName = teamName
	ws.IsConnected = true
	ws.ConnectedAt = &now
	ws.UpdatedAt = now
	copy := *ws
	return &copy, nil
}

func (f *fakeWorkspaceStore) SetSlackAuthID(ctx context.Context, id int64, credentialID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ws, ok := f.byID[id]
	if !ok {
		return store.ErrNotFound
	}
	ws.SlackAuthID = &credentialID
	return nil
}

func (f *fakeWorkspaceStore) SetNotifyChannel(ctx context.Context, id int64, channel *string) (*model.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ws, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	ws.NotifyChannel = channel
	copy := *ws
	return &copy, nil
}

func (f *fakeWorkspaceStore) Disconnect(ctx context.Context, id int64) (*model.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ws, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	ws.IsConnected = false
	ws.ConnectedAt = nil
	ws.SlackAuthID = nil
	copy := *ws
	return &copy, nil
}

type fakeCredentialStore struct {
	byID map[int64]*model.SlackCredential
	mu   sync.Mutex
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{byID: make(map[int64]*model.SlackCredential)}
}

func (f *fakeCredentialStore) seed(cred *model.SlackCredential) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy := *cred
	f.byID[cred.ID] = &copy
}

func (f *fakeCredentialStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byID)
}

func (f *fakeCredentialStore) GetByID(ctx context.Context, id int64) (*model.SlackCredential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cred, ok := f.byID[id]; ok {
		copy := *cred
		return &copy, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeCredentialStore) GetByWorkspace(ctx context.Context, workspaceID int64) (*model.SlackCredential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, cred := range f.byID {
		if cred.WorkspaceID == workspaceID {
			copy := *cred
			return &copy, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeCredentialStore) Upsert(ctx context.Context, cred *model.SlackCredential) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	// Mirror the workspace_id uniqueness constraint: a reconnect replaces
	// the existing row and keeps its id.
	for id, existing := range f.byID {
		if existing.WorkspaceID == cred.WorkspaceID {
			cred.ID = id
			existing.TeamID = cred.TeamID
			existing.AccessToken = cred.AccessToken
			existing.Scopes = cred.Scopes
			return nil
		}
	}
	now := time.Now()
	cred.InstalledAt = now
	cred.CreatedAt = now
	cred.UpdatedAt = now
	copy := *cred
	f.byID[cred.ID] = &copy
	return nil
}

func (f *fakeCredentialStore) DeleteByWorkspace(ctx context.Context, workspaceID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, cred := range f.byID {
		if cred.WorkspaceID == workspaceID {
			delete(f.byID, id)
		}
	}
	return nil
}

type fakeStoreProvider struct {
	workspaces store.WorkspaceStore
	creds      store.SlackCredentialStore
}

func (f *fakeStoreProvider) Workspaces() store.WorkspaceStore {
	return f.workspaces
}

func (f *fakeStoreProvider) SlackCredentials() store.SlackCredentialStore {
	return f.creds
}

type fakeTxRunner struct {
	provider StoreProvider
}

func (f *fakeTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return fn(f.provider)
}
