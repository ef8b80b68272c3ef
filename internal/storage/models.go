package storage

type Config struct {
	UserID        string `json:"user_id"`
	BaseURL       string `json:"base_url"`
	GitHubToken   string `json:"github_token"`
	LastSessionID string `json:"last_session_id"`
}
