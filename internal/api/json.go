package api

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/coopcast/flocktree/pkg/errors"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("json encode failed", "error", err)
	}
}

type errResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

// writeError maps err to its HTTP status and writes a JSON error body.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errors.HTTPStatus(err), errResponse{
		Error: errors.UserMessage(err),
		Code:  errors.GetCode(err),
	})
}
