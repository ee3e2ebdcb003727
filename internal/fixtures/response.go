package fixtures

import (
	"encoding/json"
	"net/http"
)

// envelope mirrors the backend's uniform response wrapper
type envelope struct {
	Data     interface{} `json:"data,omitempty"`
	RespCode int         `json:"resp_code"`
	RespMsg  string      `json:"resp_msg"`
}

func respond(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, envelope{Data: data, RespCode: 200, RespMsg: "success"})
}

// respondError reports an application-level failure. The HTTP status
// stays 200 for business errors, matching the real backend's habit of
// signalling failure through resp_code alone.
func respondError(w http.ResponseWriter, httpStatus, code int, msg string) {
	writeJSON(w, httpStatus, envelope{RespCode: code, RespMsg: msg})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
