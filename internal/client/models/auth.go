package models

// TokenResponse is the body of a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// User is the current-user check payload. Unknown fields are ignored.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Snapshot bundles the whole dashboard, used by backups.
type Snapshot struct {
	Profile  *Profile  `json:"profile"`
	Skills   []Skill   `json:"skills"`
	Projects []Project `json:"projects"`
	TakenAt  string    `json:"taken_at"`
}
