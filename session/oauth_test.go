package session

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/leavedesk/leavedesk-client-go/config"
)

func newTestExternalLogin() *ExternalLogin {
	return NewExternalLogin(config.OAuth2ExternalConfig{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		RedirectURL:  "https://app.example.com/auth/callback",
		Scopes:       []string{"openid", "email"},
	}, oauth2.Endpoint{
		AuthURL:  "https://provider.example.com/o/authorize",
		TokenURL: "https://provider.example.com/o/token",
	})
}

func TestGenerateStateRoundTrip(t *testing.T) {
	ext := newTestExternalLogin()

	state := ext.GenerateState()
	require.NotEmpty(t, state)
	assert.NoError(t, ext.VerifyState(state, state))

	// Fresh states never collide
	assert.NotEqual(t, state, ext.GenerateState())
}

func TestAuthURLCarriesState(t *testing.T) {
	ext := newTestExternalLogin()
	state := ext.GenerateState()

	parsed, err := url.Parse(ext.AuthURL(state))
	require.NoError(t, err)

	assert.Equal(t, "provider.example.com", parsed.Host)
	query := parsed.Query()
	assert.Equal(t, state, query.Get("state"))
	assert.Equal(t, "client-1", query.Get("client_id"))
	assert.Equal(t, "https://app.example.com/auth/callback", query.Get("redirect_uri"))
	assert.Contains(t, query.Get("scope"), "email")
}
