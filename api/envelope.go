package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

// CodeOK is the backend's application-level success code
const CodeOK = 200

// Envelope is the uniform backend response wrapper
type Envelope struct {
	Data     json.RawMessage `json:"data"`
	RespCode int             `json:"resp_code"`
	RespMsg  string          `json:"resp_msg"`
}

// Error represents an application-level API failure
type Error struct {
	StatusCode int
	RespCode   int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error [%d/%d]: %s", e.StatusCode, e.RespCode, e.Message)
}

// ErrorMessage extracts the user-facing message from an error. For
// application-level failures this is the server's resp_msg; anything
// else falls back to the raw error text.
func ErrorMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
