package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"superpump.app/api/internal/model"
	"superpump.app/api/internal/queue"
	"superpump.app/api/internal/store"
)

type fakeUserStore struct {
	byID map[int64]*model.User
	mu   sync.Mutex
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byID: make(map[int64]*model.User)}
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byID[id]; ok {
		copy := *u
		return &copy, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) Create(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	copy := *user
	f.byID[user.ID] = &copy
	return nil
}

func (f *fakeUserStore) UpsertByEmail(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.byID {
		if strings.EqualFold(existing.Email, user.Email) {
			existing.Name = user.Name
			existing.AvatarURL = user.AvatarURL
			*user = *existing
			return nil
		}
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	copy := *user
	f.byID[user.ID] = &copy
	return nil
}

type fakeSessionStore struct {
	byToken map[string]*model.Session
	mu      sync.Mutex
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{byToken: make(map[string]*model.Session)}
}

func (f *fakeSessionStore) GetByToken(ctx context.Context, token string) (*model.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.byToken[token]; ok {
		copy := *s
		return &copy, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeSessionStore) GetValidByToken(ctx context.Context, token string) (*model.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.byToken[token]; ok && s.ExpiresAt.After(time.Now()) {
		copy := *s
		return &copy, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeSessionStore) Create(ctx context.Context, session *model.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	session.CreatedAt = time.Now()
	copy := *session
	f.byToken[session.Token] = &copy
	return nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for token, s := range f.byToken {
		if s.ID == id {
			delete(f.byToken, token)
		}
	}
	return nil
}

func (f *fakeSessionStore) DeleteExpired(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for token, s := range f.byToken {
		if !s.ExpiresAt.After(time.Now()) {
			delete(f.byToken, token)
		}
	}
	return nil
}

type fakeWorkspaceStore struct {
	byID map[int64]*model.Workspace
	mu   sync.Mutex
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
	f.seed(ws)
	return nil
}

func (f *fakeWorkspaceStore) MarkConnected(ctx context.Context, id int64, teamName string) (*model.Workspace, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ws, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	ws.TeamName = teamName
	ws.IsConnected = true
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

type fakePostStore struct {
	byID map[int64]*model.Post
	mu   sync.Mutex
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{byID: make(map[int64]*model.Post)}
}

func (f *fakePostStore) seed(post *model.Post) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy := *post
	f.byID[post.ID] = &copy
}

func (f *fakePostStore) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.byID[id]; ok {
		copy := *p
		return &copy, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakePostStore) GetByWorkspaceAndURL(ctx context.Context, workspaceID int64, url string) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.byID {
		if p.WorkspaceID == workspaceID && p.URL == url {
			copy := *p
			return &copy, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakePostStore) Create(ctx context.Context, post *model.Post) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	copy := *post
	f.byID[post.ID] = &copy
	return nil
}

func (f *fakePostStore) UpdateEngagement(ctx context.Context, id int64, likes, comments, reposts int32) (*model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	p.Likes = likes
	p.Comments = comments
	p.Reposts = reposts
	p.UpdatedAt = time.Now()
	copy := *p
	return &copy, nil
}

func (f *fakePostStore) MarkNotified(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byID[id]
	if !ok {
		return store.ErrNotFound
	}
	now := time.Now()
	p.NotifiedAt = &now
	return nil
}

func (f *fakePostStore) ListByWorkspace(ctx context.Context, workspaceID int64, limit int32) ([]model.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var posts []model.Post
	for _, p := range f.byID {
		if p.WorkspaceID == workspaceID {
			posts = append(posts, *p)
		}
	}
	if limit > 0 && int32(len(posts)) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

type fakeBookmarkStore struct {
	byID map[int64]*model.Bookmark
	mu   sync.Mutex
}

func newFakeBookmarkStore() *fakeBookmarkStore {
	return &fakeBookmarkStore{byID: make(map[int64]*model.Bookmark)}
}

func (f *fakeBookmarkStore) GetByID(ctx context.Context, id int64) (*model.Bookmark, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if bm, ok := f.byID[id]; ok {
		copy := *bm
		return &copy, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeBookmarkStore) GetByWorkspaceAndMember(ctx context.Context, workspaceID int64, memberID string) (*model.Bookmark, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, bm := range f.byID {
		if bm.WorkspaceID == workspaceID && bm.MemberID == memberID {
			copy := *bm
			return &copy, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeBookmarkStore) Create(ctx context.Context, bm *model.Bookmark) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	bm.CreatedAt = time.Now()
	copy := *bm
	f.byID[bm.ID] = &copy
	return nil
}

func (f *fakeBookmarkStore) Delete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byID, id)
	return nil
}

func (f *fakeBookmarkStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Bookmark, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var bookmarks []model.Bookmark
	for _, bm := range f.byID {
		if bm.WorkspaceID == workspaceID {
			bookmarks = append(bookmarks, *bm)
		}
	}
	return bookmarks, nil
}

type fakeProducer struct {
	events     []queue.PostEvent
	enqueueErr error
	mu         sync.Mutex
}

func (f *fakeProducer) Enqueue(ctx context.Context, msg queue.PostEvent) error {
	if f.enqueueErr != nil {
		return f.enqueueErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, msg)
	return nil
}

func (f *fakeProducer) Close() error {
	return nil
}

func (f *fakeProducer) enqueued() []queue.PostEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]queue.PostEvent(nil), f.events...)
}
