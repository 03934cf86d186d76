package model

// Member is a Slack directory entry fetched live from the API.
// It is never persisted; bots, deleted accounts and Slackbot are
// filtered out before it reaches the caller.
type Member struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email"`
	AvatarURL *string `json:"avatar_url"`
}
