package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrNotAuthenticated   = errors.New("Not authenticated")
	ErrTokenExpired       = errors.New("Token expired")
	ErrInvalidToken       = errors.New("Invalid token")
	ErrInvalidOAuthState  = errors.New("Invalid OAuth state")
)
