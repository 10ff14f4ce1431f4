// internal/app/features/lookups/handler.go

// Package lookups serves the six taxonomy tables through one handler;
// the {table} route parameter selects the collection.
package lookups

import (
	"net/http"

	lookupstore "github.com/seedscope/seedscope/internal/app/store/lookups"
	"github.com/seedscope/seedscope/internal/app/system/webjson"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// URL slugs for each taxonomy collection.
var tables = map[string]string{
	"categories":          lookupstore.Categories,
	"funding-types":       lookupstore.FundingTypes,
	"sdg-focus":           lookupstore.SDGFocuses,
	"sectors":             lookupstore.Sectors,
	"funding-instruments": lookupstore.FundingInstruments,
	"funding-rounds":      lookupstore.FundingRounds,
}

// Handler owns the taxonomy handlers.
type Handler struct {
	DB     *mongo.Database
	stores map[string]*lookupstore.Store
	Log    *zap.Logger
}

// NewHandler constructs a lookups Handler with one store per table.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	stores := make(map[string]*lookupstore.Store, len(tables))
	for slug, collection := range tables {
		stores[slug] = lookupstore.New(db, collection)
	}
	return &Handler{DB: db, stores: stores, Log: logger}
}

// tableStore resolves the {table} route parameter. An unknown table is
// a 404, matching the unrouted-path behavior.
func (h *Handler) tableStore(w http.ResponseWriter, r *http.Request) (*lookupstore.Store, bool) {
	s, ok := h.stores[chi.URLParam(r, "table")]
	if !ok {
		webjson.Error(w, http.StatusNotFound, "not found")
		return nil, false
	}
	return s, true
}
