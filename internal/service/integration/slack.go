package integration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"superpump.app/api/common/id"
	"superpump.app/api/internal/model"
	"superpump.app/api/internal/store"
)

// Scopes requested on install: read members and their emails, read the
// team profile, and post notifications.
const oauthScopes = "users:read,users:read.email,team:read,chat:write"

const authorizeURL = "https://slack.com/oauth/v2/authorize"

// Slackbot is present in every workspace and is excluded from member lists.
const slackbotID = "USLACKBOT"

var (
	ErrNotConfigured      = errors.New("slack client id is not configured")
	ErrInvalidState       = errors.New("state is not a valid tenant id")
	ErrCredentialNotFound = errors.New("slack credential not found")
	ErrNoWorkspace        = errors.New("workspace not found")

	// ErrPersistence tags database failures during callback handling so the
	// handler can redirect with a database_error code.
	ErrPersistence = errors.New("persisting slack connection")
)

// Reason explains an empty member list. These travel to the dashboard as
// machine-readable codes so it can distinguish "no data yet" from failure.
type Reason string

const (
	ReasonNone         Reason = ""
	ReasonNoWorkspace  Reason = "no_workspace"
	ReasonNotConnected Reason = "not_connected"
	ReasonNoSlackAuth  Reason = "no_slack_auth"
)

type MemberList struct {
	Members []model.Member
	Reason  Reason
}

type StatusResult struct {
	ConnectedAt   *time.Time
	NotifyChannel *string
	TeamName      string
	Connected     bool
}

// Config carries the OAuth app settings from process configuration.
type Config struct {
	ClientID    string
	RedirectURI string
}

// StoreProvider is the minimal view of stores needed when running inside a
// transaction. It is implemented by *store.Stores in production and by fakes
// in tests.
type StoreProvider interface {
	Workspaces() store.WorkspaceStore
	SlackCredentials() store.SlackCredentialStore
}

// TxRunner is a narrow transaction runner dependency for the Slack service.
// It is intentionally defined here to avoid a dependency cycle back into the
// main service package while still allowing transactional operations.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type SlackService interface {
	// AuthorizeURL builds the provider redirect for the given tenant. The
	// tenant id rides along as the OAuth state parameter.
	AuthorizeURL(userID int64) (string, error)
	// HandleCallback exchanges the authorization code and persists the
	// workspace connection. Idempotent per tenant.
	HandleCallback(ctx context.Context, code, state string) error
	ListMembers(ctx context.Context, userID int64) (*MemberList, error)
	Disconnect(ctx context.Context, userID int64) error
	Status(ctx context.Context, userID int64) (*StatusResult, error)
	SetNotifyChannel(ctx context.Context, userID int64, channel *string) (*StatusResult, error)
}

type slackService struct {
	api             API
	cfg             Config
	txRunner        TxRunner
	workspaceStore  store.WorkspaceStore
	credentialStore store.SlackCredentialStore
}

func NewSlackService(api API, cfg Config, txRunner TxRunner, workspaceStore store.WorkspaceStore, credentialStore store.SlackCredentialStore) SlackService {
	return &slackService{
		api:             api,
		cfg:             cfg,
		txRunner:        txRunner,
		workspaceStore:  workspaceStore,
		credentialStore: credentialStore,
	}
}

func (s *slackService) AuthorizeURL(userID int64) (string, error) {
	if s.cfg.ClientID == "" {
		return "", ErrNotConfigured
	}

	v := url.Values{}
	v.Set("client_id", s.cfg.ClientID)
	v.Set("scope", oauthScopes)
	v.Set("redirect_uri", s.cfg.RedirectURI)
	v.Set("state", strconv.FormatInt(userID, 10))

	return authorizeURL + "?" + v.Encode(), nil
}

func (s *slackService) HandleCallback(ctx context.Context, code, state string) error {
	if s.cfg.ClientID == "" {
		return ErrNotConfigured
	}

	userID, err := strconv.ParseInt(state, 10, 64)
	if err != nil {
		return ErrInvalidState
	}

	grant, err := s.api.ExchangeCode(ctx, code)
	if err != nil {
		slog.WarnContext(ctx, "slack code exchange failed", "error", err, "user_id", userID)
		return err
	}

	// Lookup, upsert and back-link run in one transaction so concurrent
	// callbacks for the same tenant cannot interleave partial writes.
	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		ws, err := stores.Workspaces().GetByUser(ctx, userID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("fetching workspace: %w", err)
		}

		if errors.Is(err, store.ErrNotFound) {
			ws = &model.Workspace{
				ID:          id.New(),
				UserID:      userID,
				TeamName:    grant.TeamName,
				IsConnected: true,
			}
			if err := stores.Workspaces().Create(ctx, ws); err != nil {
				return fmt.Errorf("creating workspace: %w", err)
			}
		} else {
			ws, err = stores.Workspaces().MarkConnected(ctx, ws.ID, grant.TeamName)
			if err != nil {
				return fmt.Errorf("reconnecting workspace: %w", err)
			}
		}

		cred := &model.SlackCredential{
			ID:          id.New(),
			WorkspaceID: ws.ID,
			TeamID:      grant.TeamID,
			AccessToken: grant.AccessToken,
			Scopes:      grant.Scopes,
		}
		if err := stores.SlackCredentials().Upsert(ctx, cred); err != nil {
			return fmt.Errorf("storing credential: %w", err)
		}

		// The credential id is only known after the upsert, so the
		// workspace reference is patched last (two-phase link).
		if err := stores.Workspaces().SetSlackAuthID(ctx, ws.ID, cred.ID); err != nil {
			return fmt.Errorf("linking credential: %w", err)
		}

		return nil
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to persist slack connection", "error", err, "user_id", userID, "team_id", grant.TeamID)
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	slog.InfoContext(ctx, "slack workspace connected", "user_id", userID, "team_id", grant.TeamID, "team_name", grant.TeamName)

	return nil
}

func (s *slackService) ListMembers(ctx context.Context, userID int64) (*MemberList, error) {
	ws, err := s.workspaceStore.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &MemberList{Members: []model.Member{}, Reason: ReasonNoWorkspace}, nil
		}
		return nil, fmt.Errorf("fetching workspace: %w", err)
	}

	if !ws.IsConnected {
		return &MemberList{Members: []model.Member{}, Reason: ReasonNotConnected}, nil
	}

	if ws.SlackAuthID == nil {
		return &MemberList{Members: []model.Member{}, Reason: ReasonNoSlackAuth}, nil
	}

	// Token loads happen here, never in the handler: the caller's session
	// must not grant direct access to stored secrets.
	cred, err := s.credentialStore.GetByID(ctx, *ws.SlackAuthID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCredentialNotFound
		}
		return nil, fmt.Errorf("fetching credential: %w", err)
	}

	users, err := s.api.ListUsers(ctx, cred.AccessToken)
	if err != nil {
		return nil, err
	}

	members := make([]model.Member, 0, len(users))
	for _, u := range users {
		if u.IsBot || u.Deleted || u.ID == slackbotID {
			continue
		}
		members = append(members, model.Member{
			ID:        u.ID,
			Name:      memberName(u),
			Email:     nilIfEmpty(u.Email),
			AvatarURL: nilIfEmpty(u.Avatar),
		})
	}

	return &MemberList{Members: members}, nil
}

func (s *slackService) Disconnect(ctx context.Context, userID int64) error {
	return s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		ws, err := stores.Workspaces().GetByUser(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Nothing to disconnect.
				return nil
			}
			return fmt.Errorf("fetching workspace: %w", err)
		}

		if _, err := stores.Workspaces().Disconnect(ctx, ws.ID); err != nil {
			return fmt.Errorf("disconnecting workspace: %w", err)
		}

		if err := stores.SlackCredentials().DeleteByWorkspace(ctx, ws.ID); err != nil {
			return fmt.Errorf("revoking credential: %w", err)
		}

		slog.InfoContext(ctx, "slack workspace disconnected", "user_id", userID, "workspace_id", ws.ID)
		return nil
	})
}

func (s *slackService) Status(ctx context.Context, userID int64) (*StatusResult, error) {
	ws, err := s.workspaceStore.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &StatusResult{Connected: false}, nil
		}
		return nil, fmt.Errorf("fetching workspace: %w", err)
	}

	return &StatusResult{
		Connected:     ws.IsConnected,
		TeamName:      ws.TeamName,
		ConnectedAt:   ws.ConnectedAt,
		NotifyChannel: ws.NotifyChannel,
	}, nil
}

func (s *slackService) SetNotifyChannel(ctx context.Context, userID int64, channel *string) (*StatusResult, error) {
	ws, err := s.workspaceStore.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoWorkspace
		}
		return nil, fmt.Errorf("fetching workspace: %w", err)
	}

	ws, err = s.workspaceStore.SetNotifyChannel(ctx, ws.ID, channel)
	if err != nil {
		return nil, fmt.Errorf("updating notify channel: %w", err)
	}

	return &StatusResult{
		Connected:     ws.IsConnected,
		TeamName:      ws.TeamName,
		ConnectedAt:   ws.ConnectedAt,
		NotifyChannel: ws.NotifyChannel,
	}, nil
}

// memberName prefers the display name, falling back to the real name and
// finally the username.
func memberName(u DirectoryUser) string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if u.RealName != "" {
		return u.RealName
	}
	return u.Username
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
