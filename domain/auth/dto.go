package auth

import (
	"github.com/leavedesk/leavedesk-client-go/domain/user"
)

// LoginRequest carries internal (password) credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ExternalLoginRequest completes an OAuth2 authorization-code flow
type ExternalLoginRequest struct {
	Code  string `json:"code"`
	State string `json:"state"`
}

// LoginResponse is the backend's login payload
type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   int64     `json:"expires_at"`
	User        user.User `json:"user"`
}
