package integration

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/slack-go/slack"
)

// ProviderError carries a Slack API error code (e.g. "invalid_code",
// "access_denied", "ratelimited") so callers can surface it verbatim.
type ProviderError struct {
	Code string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("slack: %s", e.Code)
}

// OAuthGrant is the outcome of a successful oauth.v2.access exchange.
type OAuthGrant struct {
	AccessToken string
	Scopes      string
	TeamID      string
	TeamName    string
}

// DirectoryUser is a raw users.list entry before filtering.
type DirectoryUser struct {
	ID          string
	Username    string
	RealName    string
	DisplayName string
	Email       string
	Avatar      string
	IsBot       bool
	Deleted     bool
}

// API covers the Slack Web API calls this service needs. Implemented by
// webAPI over slack-go; tests substitute a fake.
type API interface {
	ExchangeCode(ctx context.Context, code string) (*OAuthGrant, error)
	ListUsers(ctx context.Context, token string) ([]DirectoryUser, error)
	PostMessage(ctx context.Context, token, channel, text string) error
}

type webAPI struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client
}

// NewWebAPI builds the production Slack Web API client.
func NewWebAPI(clientID, clientSecret, redirectURI string) API {
	return &webAPI{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		httpClient:   http.DefaultClient,
	}
}

func (a *webAPI) ExchangeCode(ctx context.Context, code string) (*OAuthGrant, error) {
	resp, err := slack.GetOAuthV2ResponseContext(ctx, a.httpClient, a.clientID, a.clientSecret, code, a.redirectURI)
	if err != nil {
		return nil, asProviderError(err)
	}

	token := resp.AccessToken
	scopes := resp.Scope
	if token == "" && resp.AuthedUser.AccessToken != "" {
		// User-token installs carry the grant on authed_user instead.
		token = resp.AuthedUser.AccessToken
		scopes = resp.AuthedUser.Scope
	}

	return &OAuthGrant{
		AccessToken: token,
		Scopes:      scopes,
		TeamID:      resp.Team.ID,
		TeamName:    resp.Team.Name,
	}, nil
}

func (a *webAPI) ListUsers(ctx context.Context, token string) ([]DirectoryUser, error) {
	client := slack.New(token, slack.OptionHTTPClient(a.httpClient))

	users, err := client.GetUsersContext(ctx)
	if err != nil {
		return nil, asProviderError(err)
	}

	result := make([]DirectoryUser, 0, len(users))
	for _, u := range users {
		result = append(result, DirectoryUser{
			ID:          u.ID,
			Username:    u.Name,
			RealName:    u.Profile.RealName,
			DisplayName: u.Profile.DisplayName,
			Email:       u.Profile.Email,
			Avatar:      u.Profile.Image192,
			IsBot:       u.IsBot,
			Deleted:     u.Deleted,
		})
	}
	return result, nil
}

func (a *webAPI) PostMessage(ctx context.Context, token, channel, text string) error {
	client := slack.New(token, slack.OptionHTTPClient(a.httpClient))

	_, _, err := client.PostMessageContext(ctx, channel, slack.MsgOptionText(text, false))
	if err != nil {
		return asProviderError(err)
	}
	return nil
}

func asProviderError(err error) error {
	var slackErr slack.SlackErrorResponse
	if errors.As(err, &slackErr) {
		return &ProviderError{Code: slackErr.Err}
	}

	var rateErr *slack.RateLimitedError
	if errors.As(err, &rateErr) {
		return &ProviderError{Code: "ratelimited"}
	}

	return &ProviderError{Code: err.Error()}
}
