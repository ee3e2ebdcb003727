package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func envelopeBody(data interface{}) string {
	payload, _ := json.Marshal(map[string]interface{}{
		"data":      data,
		"resp_code": 200,
		"resp_msg":  "success",
	})
	return string(payload)
}

func TestClientInjectsBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		io.WriteString(w, envelopeBody(map[string]string{"ok": "yes"}))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken("tok-123"), testLogger())
	var out map[string]string
	require.NoError(t, client.Get(context.Background(), "/api/ping", &out))

	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "yes", out["ok"])
}

func TestClientNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		io.WriteString(w, envelopeBody(nil))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, staticToken(""), testLogger())
	require.NoError(t, client.Get(context.Background(), "/", nil))
	assert.Empty(t, gotAuth)
}

func TestClientApplicationErrorOnHTTP200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// HTTP 200 but an application-level failure
		io.WriteString(w, `{"resp_code": 500, "resp_msg": "Quota exceeded"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, testLogger())
	err := client.Get(context.Background(), "/api/leave-requests/user", nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.RespCode)
	assert.Equal(t, http.StatusOK, apiErr.StatusCode)
	assert.Equal(t, "Quota exceeded", apiErr.Message)
	assert.Equal(t, "Quota exceeded", ErrorMessage(err))
}

func TestClientQueryParams(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		io.WriteString(w, envelopeBody(nil))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, testLogger())
	require.NoError(t, client.Post(context.Background(), "/api/auth/login",
		map[string]string{"email": "a@b.cd"}, nil, WithParam("loginType", "INTERNAL")))
	assert.Equal(t, "loginType=INTERNAL", gotQuery)
}

func TestClientPostMultipart(t *testing.T) {
	var gotContentType, gotPayload, gotFile string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotPayload = r.FormValue("payload")
		file, _, err := r.FormFile("attachment")
		require.NoError(t, err)
		defer file.Close()
		data, _ := io.ReadAll(file)
		gotFile = string(data)
		io.WriteString(w, envelopeBody(nil))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil, testLogger())
	file := &FileUpload{
		FieldName: "attachment",
		FileName:  "note.txt",
		Reader:    strings.NewReader("doctor's note"),
	}
	err := client.PostMultipart(context.Background(), "/api/leave-requests",
		map[string]string{"leave_type": "SICK"}, file, nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(gotContentType, "multipart/form-data"))
	assert.JSONEq(t, `{"leave_type":"SICK"}`, gotPayload)
	assert.Equal(t, "doctor's note", gotFile)
}

func TestClientTransportErrorSurfacesImmediately(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", nil, testLogger())
	err := client.Get(context.Background(), "/api/users", nil)
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, strings.Contains(err.Error(), "resp_code"))
	assert.NotErrorAs(t, err, &apiErr)
}
