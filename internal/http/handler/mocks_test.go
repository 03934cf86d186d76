package handler_test

import (
	"context"

	"superpump.app/api/internal/model"
	"superpump.app/api/internal/service"
	"superpump.app/api/internal/service/integration"
)

type mockSlackService struct {
	authorizeURLFn     func(userID int64) (string, error)
	handleCallbackFn   func(ctx context.Context, code, state string) error
	listMembersFn      func(ctx context.Context, userID int64) (*integration.MemberList, error)
	disconnectFn       func(ctx context.Context, userID int64) error
	statusFn           func(ctx context.Context, userID int64) (*integration.StatusResult, error)
	setNotifyChannelFn func(ctx context.Context, userID int64, channel *string) (*integration.StatusResult, error)
}

func (m *mockSlackService) AuthorizeURL(userID int64) (string, error) {
	if m.authorizeURLFn != nil {
		return m.authorizeURLFn(userID)
	}
	return "https://slack.com/oauth/v2/authorize?state=1", nil
}

func (m *mockSlackService) HandleCallback(ctx context.Context, code, state string) error {
	if m.handleCallbackFn != nil {
		return m.handleCallbackFn(ctx, code, state)
	}
	return nil
}

func (m *mockSlackService) ListMembers(ctx context.Context, userID int64) (*integration.MemberList, error) {
	if m.listMembersFn != nil {
		return m.listMembersFn(ctx, userID)
	}
	return &integration.MemberList{Members: []model.Member{}}, nil
}

func (m *mockSlackService) Disconnect(ctx context.Context, userID int64) error {
	if m.disconnectFn != nil {
		return m.disconnectFn(ctx, userID)
	}
	return nil
}

func (m *mockSlackService) Status(ctx context.Context, userID int64) (*integration.StatusResult, error) {
	if m.statusFn != nil {
		return m.statusFn(ctx, userID)
	}
	return &integration.StatusResult{Connected: false}, nil
}

func (m *mockSlackService) SetNotifyChannel(ctx context.Context, userID int64, channel *string) (*integration.StatusResult, error) {
	if m.setNotifyChannelFn != nil {
		return m.setNotifyChannelFn(ctx, userID, channel)
	}
	return &integration.StatusResult{}, nil
}

type mockAuthService struct {
	syncFn          func(ctx context.Context, name, email string, avatarURL *string) (*model.User, *model.Session, error)
	validateTokenFn func(ctx context.Context, token string) (*model.User, error)
	logoutFn        func(ctx context.Context, token string) error
}

func (m *mockAuthService) Sync(ctx context.Context, name, email string, avatarURL *string) (*model.User, *model.Session, error) {
	if m.syncFn != nil {
		return m.syncFn(ctx, name, email, avatarURL)
	}
	return &model.User{ID: 1, Name: name, Email: email}, &model.Session{Token: "tok"}, nil
}

func (m *mockAuthService) ValidateToken(ctx context.Context, token string) (*model.User, error) {
	if m.validateTokenFn != nil {
		return m.validateTokenFn(ctx, token)
	}
	return nil, service.ErrUnauthenticated
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, token)
	}
	return nil
}

type mockPostService struct {
	trackFn   func(ctx context.Context, userID int64, input service.TrackPostInput) (*model.Post, error)
	listFn    func(ctx context.Context, userID int64, limit int32) ([]model.Post, error)
	metricsFn func(ctx context.Context, userID int64) (*service.WorkspaceMetrics, error)
}

func (m *mockPostService) Track(ctx context.Context, userID int64, input service.TrackPostInput) (*model.Post, error) {
	if m.trackFn != nil {
		return m.trackFn(ctx, userID, input)
	}
	return &model.Post{}, nil
}

func (m *mockPostService) List(ctx context.Context, userID int64, limit int32) ([]model.Post, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID, limit)
	}
	return nil, nil
}

func (m *mockPostService) Metrics(ctx context.Context, userID int64) (*service.WorkspaceMetrics, error) {
	if m.metricsFn != nil {
		return m.metricsFn(ctx, userID)
	}
	return &service.WorkspaceMetrics{}, nil
}

type mockBookmarkService struct {
	addFn    func(ctx context.Context, userID int64, input service.AddBookmarkInput) (*model.Bookmark, error)
	listFn   func(ctx context.Context, userID int64) ([]model.Bookmark, error)
	removeFn func(ctx context.Context, userID int64, bookmarkID int64) error
}

func (m *mockBookmarkService) Add(ctx context.Context, userID int64, input service.AddBookmarkInput) (*model.Bookmark, error) {
	if m.addFn != nil {
		return m.addFn(ctx, userID, input)
	}
	return &model.Bookmark{}, nil
}

func (m *mockBookmarkService) List(ctx context.Context, userID int64) ([]model.Bookmark, error) {
	if m.listFn != nil {
		return m.listFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockBookmarkService) Remove(ctx context.Context, userID int64, bookmarkID int64) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, userID, bookmarkID)
	}
	return nil
}
