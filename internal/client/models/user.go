package models

import "github.com/dmitrijs2005/wepub/internal/timex"

// User is the profile returned for the current credential. It is treated as
// an immutable snapshot.
type User struct {
	ID        int64      `json:"id"`
	Username  string     `json:"username"`
	Email     string     `json:"email,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt timex.Time `json:"created_at"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// Token is the result of a login exchange.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
