package model

import "time"

// User represents a registered creator account. OAuth tokens are never
// serialized in API responses.
type User struct {
	ID                  int       `json:"id"`
	Username            string    `json:"username"`
	Email               string    `json:"email"`
	PasswordHash        string    `json:"-"`
	YouTubeAccessToken  *string   `json:"-"`
	YouTubeRefreshToken *string   `json:"-"`
	YouTubeChannelID    *string   `json:"youtubeChannelId,omitempty"`
	YouTubeChannelName  *string   `json:"youtubeChannelName,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

// NewUser is the insert payload for a user registration.
type NewUser struct {
	Username     string
	Email        string
	PasswordHash string
}

// YouTubeCredentials is the credential bundle obtained from the OAuth exchange.
type YouTubeCredentials struct {
	AccessToken  string
	RefreshToken string
	ChannelID    string
	ChannelName  string
}

// RegisterRequest is the API request body for POST /api/users.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the API request body for POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserSummary is the API response for registration and login.
// YouTubeChannelName is always present, null until the account is linked.
type UserSummary struct {
	ID                 int     `json:"id"`
	Username           string  `json:"username"`
	Email              string  `json:"email"`
	YouTubeChannelName *string `json:"youtubeChannelName"`
}

// Summary builds the API-safe view of a user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:                 u.ID,
		Username:           u.Username,
		Email:              u.Email,
		YouTubeChannelName: u.YouTubeChannelName,
	}
}
