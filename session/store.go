package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/leavedesk/leavedesk-client-go/api"
	"github.com/leavedesk/leavedesk-client-go/domain/auth"
	"github.com/leavedesk/leavedesk-client-go/domain/user"
)

// Store owns the authenticated session: the access token and the cached
// user snapshot. It implements api.TokenSource so the HTTP client picks
// up the bearer token automatically.
type Store struct {
	mu      sync.RWMutex
	session auth.Session
	storage Storage
	client  *api.Client
	logger  *slog.Logger
}

// NewStore loads any persisted session from storage
func NewStore(storage Storage, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	session, err := storage.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &Store{
		session: session,
		storage: storage,
		logger:  logger,
	}, nil
}

// SetClient attaches the API client used for login and profile calls.
// The store is created before the client because the client needs the
// store as its token source.
func (s *Store) SetClient(client *api.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = client
}

// Token implements api.TokenSource
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Token
}

// User returns the cached user snapshot, nil when logged out
func (s *Store) User() *user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.User
}

// Session returns a copy of the current session
func (s *Store) Session() auth.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// IsAuthenticated reports whether a token is present
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.IsAuthenticated()
}

// Login authenticates with internal (password) credentials
func (s *Store) Login(ctx context.Context, req auth.LoginRequest) (*user.User, error) {
	var resp auth.LoginResponse
	err := s.apiClient().Post(ctx, "/api/auth/login", req, &resp,
		api.WithParam("loginType", string(auth.LoginTypeInternal)))
	if err != nil {
		return nil, err
	}
	return s.establish(resp)
}

// LoginExternal completes an OAuth2 authorization-code login. The code
// is exchanged server-side; the client only forwards it.
func (s *Store) LoginExternal(ctx context.Context, req auth.ExternalLoginRequest) (*user.User, error) {
	var resp auth.LoginResponse
	err := s.apiClient().Post(ctx, "/api/auth/login", req, &resp,
		api.WithParam("loginType", string(auth.LoginTypeExternal)))
	if err != nil {
		return nil, err
	}
	return s.establish(resp)
}

// FetchExternalResult resolves a pending external login after the
// provider redirect, via the backend's success endpoint.
func (s *Store) FetchExternalResult(ctx context.Context) (*user.User, error) {
	var resp auth.LoginResponse
	if err := s.apiClient().Get(ctx, "/api/auth/login/success", &resp); err != nil {
		return nil, err
	}
	return s.establish(resp)
}

func (s *Store) establish(resp auth.LoginResponse) (*user.User, error) {
	u := resp.User
	u.Role = user.NormalizeRole(string(u.Role))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = auth.Session{Token: resp.AccessToken, User: &u}
	if err := s.storage.Save(s.session); err != nil {
		return nil, err
	}
	s.logger.Info("session established", "user_id", u.ID, "role", u.Role)
	return &u, nil
}

// UpdateProfile pushes profile edits and refreshes the cached user.
// Validation failures never reach the network.
func (s *Store) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var updated user.User
	if err := s.apiClient().Put(ctx, "/api/users/profile", req, &updated); err != nil {
		return nil, err
	}
	updated.Role = user.NormalizeRole(string(updated.Role))

	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.User = &updated
	if err := s.storage.Save(s.session); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Logout clears the session. The token is simply discarded; the backend
// owns revocation.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = auth.Session{}
	if err := s.storage.Clear(); err != nil {
		return err
	}
	s.logger.Info("session cleared")
	return nil
}

func (s *Store) apiClient() *api.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.client == nil {
		panic("session: API client not attached; call SetClient first")
	}
	return s.client
}
