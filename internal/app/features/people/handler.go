// internal/app/features/people/handler.go
package people

import (
	companystore "github.com/seedscope/seedscope/internal/app/store/companies"
	investorstore "github.com/seedscope/seedscope/internal/app/store/investors"
	peoplestore "github.com/seedscope/seedscope/internal/app/store/people"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the People handlers. It holds both organization stores
// so a person's tagged reference can be resolved against exactly one
// of them.
type Handler struct {
	DB        *mongo.Database
	Store     *peoplestore.Store
	Companies *companystore.Store
	Investors *investorstore.Store
	Log       *zap.Logger
}

// NewHandler constructs a People Handler.
func NewHandler(db *mongo.Database, investors *investorstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		DB:        db,
		Store:     peoplestore.New(db),
		Companies: companystore.New(db),
		Investors: investors,
		Log:       logger,
	}
}
