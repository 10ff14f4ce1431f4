// internal/app/features/grants/handler.go
package grants

import (
	grantstore "github.com/seedscope/seedscope/internal/app/store/grants"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler owns the Grants handlers.
type Handler struct {
	DB    *mongo.Database
	Store *grantstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a Grants Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Store: grantstore.New(db), Log: logger}
}
