package utils

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func RespondWithError(w http.ResponseWriter, code int, errKind string) {
	RespondWithJSON(w, code, Response{Error: errKind})
}

// RespondWithErrorDetails reports a machine-readable error kind plus a
// human-readable detail string carrying the computed figures.
func RespondWithErrorDetails(w http.ResponseWriter, code int, errKind, details string) {
	RespondWithJSON(w, code, Response{Error: errKind, Details: details})
}
