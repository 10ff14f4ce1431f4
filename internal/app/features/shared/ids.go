// internal/app/features/shared/ids.go

// Package shared holds small helpers used across feature handlers.
package shared

import (
	"net/http"

	"github.com/seedscope/seedscope/internal/app/system/apperr"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// URLID parses the {id} route parameter as a Mongo ObjectID. A
// malformed id is reported as NotFound: from the client's view an
// unparseable id and a missing record are the same thing.
func URLID(r *http.Request) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		return primitive.NilObjectID, apperr.NotFound("id")
	}
	return id, nil
}

// ParseIDs converts hex id strings from a request body into ObjectIDs.
// Any malformed entry fails the whole request as a validation error.
func ParseIDs(field string, hexes []string) ([]primitive.ObjectID, error) {
	if hexes == nil {
		return nil, nil
	}
	out := make([]primitive.ObjectID, 0, len(hexes))
	for _, h := range hexes {
		id, err := primitive.ObjectIDFromHex(h)
		if err != nil {
			return nil, apperr.Validation(field + " contains a malformed id")
		}
		out = append(out, id)
	}
	return out, nil
}

// ListResponse is the envelope for paginated list endpoints.
type ListResponse[T any] struct {
	Data       []T `json:"data"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
}
