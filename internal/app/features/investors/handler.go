// internal/app/features/investors/handler.go
package investors

import (
	"github.com/seedscope/seedscope/internal/app/populate"
	investorstore "github.com/seedscope/seedscope/internal/app/store/investors"
	"github.com/seedscope/seedscope/internal/app/store/queries"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns all Investors handlers. One handler serves the union;
// the type-specific routes just pin the collection.
type Handler struct {
	DB       *mongo.Database
	Store    *investorstore.Store
	Populate *populate.Populator
	Related  *queries.RelatedFinder
	Log      *zap.Logger
}

// NewHandler constructs an Investors Handler. globalPaging selects the
// merged list ordering instead of the legacy concatenated pages.
func NewHandler(db *mongo.Database, globalPaging bool, pop *populate.Populator, related *queries.RelatedFinder, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Store:    investorstore.New(db, globalPaging),
		Populate: pop,
		Related:  related,
		Log:      logger,
	}
}
