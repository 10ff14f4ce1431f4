// internal/app/features/companies/handler.go
package companies

import (
	"github.com/seedscope/seedscope/internal/app/populate"
	companystore "github.com/seedscope/seedscope/internal/app/store/companies"
	lookupstore "github.com/seedscope/seedscope/internal/app/store/lookups"
	"github.com/seedscope/seedscope/internal/app/store/queries"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all Companies handlers.
type Handler struct {
	DB         *mongo.Database
	Store      *companystore.Store
	Categories *lookupstore.Store
	Populate   *populate.Populator
	Related    *queries.RelatedFinder
	Log        *zap.Logger
}

// NewHandler constructs a Companies Handler.
func NewHandler(db *mongo.Database, pop *populate.Populator, related *queries.RelatedFinder, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Store:      companystore.New(db),
		Categories: lookupstore.New(db, lookupstore.Categories),
		Populate:   pop,
		Related:    related,
		Log:        logger,
	}
}
