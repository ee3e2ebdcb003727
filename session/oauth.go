package session

import (
	"crypto/rand"
	"encoding/base64"

	"golang.org/x/oauth2"

	"github.com/leavedesk/leavedesk-client-go/config"
	"github.com/leavedesk/leavedesk-client-go/domain/auth"
)

// ExternalLogin builds the provider-redirect side of the EXTERNAL login
// flow. The authorization code is exchanged by the backend; the client
// only produces the redirect URL and checks the returned state.
type ExternalLogin struct {
	config *oauth2.Config
}

func NewExternalLogin(cfg config.OAuth2ExternalConfig, endpoint oauth2.Endpoint) *ExternalLogin {
	return &ExternalLogin{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint:     endpoint,
		},
	}
}

// GenerateState generates a random state string for the OAuth2 flow
func (e *ExternalLogin) GenerateState() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(b)
}

// AuthURL returns the provider authorization URL carrying the state
func (e *ExternalLogin) AuthURL(state string) string {
	return e.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// VerifyState compares the state echoed back by the provider against
// the one issued at redirect time.
func (e *ExternalLogin) VerifyState(issued, returned string) error {
	if issued == "" || issued != returned {
		return auth.ErrInvalidOAuthState
	}
	return nil
}
