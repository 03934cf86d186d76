package service

import (
	"superpump.app/api/core/config"
	"superpump.app/api/internal/queue"
	"superpump.app/api/internal/service/integration"
	"superpump.app/api/internal/store"
)

type ServicesConfig struct {
	Stores   *store.Stores
	TxRunner TxRunner
	SlackAPI integration.API
	Slack    config.SlackConfig
	Producer queue.Producer
}

type Services struct {
	cfg ServicesConfig
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{cfg: cfg}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.cfg.Stores.Users(), s.cfg.Stores.Sessions())
}

func (s *Services) Slack() integration.SlackService {
	return integration.NewSlackService(
		s.cfg.SlackAPI,
		integration.Config{
			ClientID:    s.cfg.Slack.ClientID,
			RedirectURI: s.cfg.Slack.RedirectURI,
		},
		&slackTxRunnerAdapter{tx: s.cfg.TxRunner},
		s.cfg.Stores.Workspaces(),
		s.cfg.Stores.SlackCredentials(),
	)
}

func (s *Services) Posts() PostService {
	return NewPostService(s.cfg.Stores.Workspaces(), s.cfg.Stores.Posts(), s.cfg.Producer)
}

func (s *Services) Bookmarks() BookmarkService {
	return NewBookmarkService(s.cfg.Stores.Workspaces(), s.cfg.Stores.Bookmarks())
}
