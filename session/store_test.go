package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leavedesk/leavedesk-client-go/api"
	"github.com/leavedesk/leavedesk-client-go/domain/auth"
	"github.com/leavedesk/leavedesk-client-go/domain/user"
	"github.com/leavedesk/leavedesk-client-go/internal/fixtures"
	"github.com/leavedesk/leavedesk-client-go/validator"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestStore wires a store to a fixture backend
func newTestStore(t *testing.T, storage Storage) (*Store, *fixtures.Server) {
	t.Helper()
	fx := fixtures.NewServer()
	srv := httptest.NewServer(fx.Router())
	t.Cleanup(srv.Close)

	store, err := NewStore(storage, testLogger())
	require.NoError(t, err)
	store.SetClient(api.NewClient(srv.URL, store, testLogger()))
	return store, fx
}

func TestLoginEstablishesSession(t *testing.T) {
	store, _ := newTestStore(t, NewMemoryStorage())
	require.False(t, store.IsAuthenticated())

	u, err := store.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: fixtures.Password,
	})
	require.NoError(t, err)

	assert.Equal(t, fixtures.StaffUserID, u.ID)
	assert.Equal(t, user.RoleStaff, u.Role)
	assert.True(t, store.IsAuthenticated())
	assert.NotEmpty(t, store.Token())
	require.NotNil(t, store.User())
	assert.Equal(t, fixtures.StaffUserID, store.User().ID)
}

func TestLoginBadCredentials(t *testing.T) {
	store, _ := newTestStore(t, NewMemoryStorage())

	_, err := store.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Equal(t, "Invalid email or password", api.ErrorMessage(err))
	assert.False(t, store.IsAuthenticated())
}

func TestSessionPersistsAcrossStores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	storage, err := NewFileStorage(path)
	require.NoError(t, err)

	store, _ := newTestStore(t, storage)
	_, err = store.Login(context.Background(), auth.LoginRequest{
		Email:    "bob@example.com",
		Password: fixtures.Password,
	})
	require.NoError(t, err)
	token := store.Token()

	// A fresh store over the same file picks the session back up
	reloaded, err := NewStore(storage, testLogger())
	require.NoError(t, err)
	assert.Equal(t, token, reloaded.Token())
	require.NotNil(t, reloaded.User())
	assert.Equal(t, fixtures.ManagerUserID, reloaded.User().ID)
}

func TestLogoutClearsSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	storage, err := NewFileStorage(path)
	require.NoError(t, err)

	store, _ := newTestStore(t, storage)
	_, err = store.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: fixtures.Password,
	})
	require.NoError(t, err)

	require.NoError(t, store.Logout())
	assert.False(t, store.IsAuthenticated())
	assert.Nil(t, store.User())

	loaded, err := storage.Load()
	require.NoError(t, err)
	assert.False(t, loaded.IsAuthenticated())
}

func TestUpdateProfileRefreshesCachedUser(t *testing.T) {
	store, _ := newTestStore(t, NewMemoryStorage())
	_, err := store.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: fixtures.Password,
	})
	require.NoError(t, err)

	updated, err := store.UpdateProfile(context.Background(), user.UpdateProfileRequest{
		Name:  "Alice A. Staff",
		Email: "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice A. Staff", updated.Name)
	assert.Equal(t, "Alice A. Staff", store.User().Name)
}

func TestUpdateProfileValidationNeverReachesNetwork(t *testing.T) {
	store, fx := newTestStore(t, NewMemoryStorage())
	_, err := store.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: fixtures.Password,
	})
	require.NoError(t, err)

	// Armed failure would fire if any request went out
	fx.FailNext("should not be called")

	_, err = store.UpdateProfile(context.Background(), user.UpdateProfileRequest{
		Name:  "Alice A. Staff",
		Email: "alice-at-example",
	})
	require.Error(t, err)

	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
	assert.Contains(t, verrs.ToMap(), "email")
	assert.Equal(t, "Alice Staff", store.User().Name, "cached user is untouched")
}

func TestExternalLogin(t *testing.T) {
	store, _ := newTestStore(t, NewMemoryStorage())

	u, err := store.LoginExternal(context.Background(), auth.ExternalLoginRequest{
		Code:  "provider-code",
		State: "state-1",
	})
	require.NoError(t, err)
	assert.Equal(t, fixtures.ExternalUserID, u.ID)
	assert.True(t, store.IsAuthenticated())
}

func TestExternalStateVerification(t *testing.T) {
	ext := &ExternalLogin{}
	state := "abc"
	assert.NoError(t, ext.VerifyState(state, "abc"))
	assert.ErrorIs(t, ext.VerifyState(state, "tampered"), auth.ErrInvalidOAuthState)
	assert.ErrorIs(t, ext.VerifyState("", ""), auth.ErrInvalidOAuthState)
}
