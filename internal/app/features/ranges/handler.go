// internal/app/features/ranges/handler.go

// Package ranges serves the two numeric-range tables (ticket sizes and
// investment asks) through one handler.
package ranges

import (
	"net/http"

	rangestore "github.com/seedscope/seedscope/internal/app/store/ranges"
	"github.com/seedscope/seedscope/internal/app/system/webjson"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var tables = map[string]string{
	"ticket-sizes":    rangestore.TicketSizes,
	"investment-asks": rangestore.InvestmentAsks,
}

// Handler owns the range-table handlers.
type Handler struct {
	DB     *mongo.Database
	stores map[string]*rangestore.Store
	Log    *zap.Logger
}

// NewHandler constructs a ranges Handler with one store per table.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	stores := make(map[string]*rangestore.Store, len(tables))
	for slug, collection := range tables {
		stores[slug] = rangestore.New(db, collection)
	}
	return &Handler{DB: db, stores: stores, Log: logger}
}

func (h *Handler) tableStore(w http.ResponseWriter, r *http.Request) (*rangestore.Store, bool) {
	s, ok := h.stores[chi.URLParam(r, "table")]
	if !ok {
		webjson.Error(w, http.StatusNotFound, "not found")
		return nil, false
	}
	return s, true
}
