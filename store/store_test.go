package store

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/leavedesk/leavedesk-client-go/api"
	"github.com/leavedesk/leavedesk-client-go/internal/fixtures"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestStores spins a fixture backend and returns the full store
// wired as the given seeded user.
func newTestStores(t *testing.T, userID string) (*Stores, *fixtures.Server) {
	t.Helper()
	fx := fixtures.NewServer()
	srv := httptest.NewServer(fx.Router())
	t.Cleanup(srv.Close)

	token := fx.TokenFor(userID, time.Hour)
	client := api.NewClient(srv.URL, staticToken(token), testLogger())
	return New(client, testLogger()), fx
}
