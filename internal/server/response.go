package server

import (
	"encoding/json"
	"net/http"

	"github.com/visgraphio/visgraph/pkg/errors"
)

// errorResponse is the JSON body for all error responses.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError sends an error response. The message is what the client sees;
// err only contributes its machine-readable code, never its text, so internal
// details stay out of responses.
func writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := errorResponse{Error: msg}
	if err != nil {
		resp.Code = errors.GetCode(err)
	}
	writeJSON(w, status, resp)
}
