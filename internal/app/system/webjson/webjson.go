// internal/app/system/webjson/webjson.go

// Package webjson holds the JSON response helpers used by every
// feature handler. Responses follow the shape of the health endpoint:
// a payload on success, {"error": "..."} on failure.
package webjson

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/seedscope/seedscope/internal/app/system/apperr"
)

// Write encodes v as the JSON response body with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errBody struct {
	Error string `json:"error"`
}

// Error writes a JSON error body with the given status and message.
func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, errBody{Error: msg})
}

// FromErr maps a taxonomy error to its HTTP status and writes it.
// Unknown errors become 500 with a generic message so internals never
// leak to the client.
func FromErr(w http.ResponseWriter, err error) {
	switch {
	case apperr.IsNotFound(err):
		Error(w, http.StatusNotFound, "not found")
	case apperr.IsUnauthorized(err):
		Error(w, http.StatusForbidden, "you do not own this record")
	case errors.Is(err, apperr.ErrValidation):
		msg := apperr.Reason(err)
		if msg == "" {
			msg = "validation failed"
		}
		Error(w, http.StatusUnprocessableEntity, msg)
	case errors.Is(err, apperr.ErrUpstream):
		Error(w, http.StatusBadGateway, "upstream unavailable")
	default:
		Error(w, http.StatusInternalServerError, "internal error")
	}
}

// Decode reads the request body as JSON into dst, rejecting unknown
// fields.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}
