package auth

import (
	"github.com/leavedesk/leavedesk-client-go/domain/user"
)

// LoginType selects the credential flow used against the backend
type LoginType string

const (
	LoginTypeInternal LoginType = "INTERNAL"
	LoginTypeExternal LoginType = "EXTERNAL"
)

// Session is the client-held snapshot persisted across reloads
type Session struct {
	Token string     `json:"access_token"`
	User  *user.User `json:"user,omitempty"`
}

// IsAuthenticated reports whether the session carries a token
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}
