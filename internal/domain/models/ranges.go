// internal/domain/models/ranges.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RangeEntry is a named numeric range describing typical deal size.
// Ticket sizes (investor side) and investment asks (company side) are
// both RangeEntry collections, referenced by id arrays and resolved
// with a single $in batch fetch.
type RangeEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Min         float64            `bson:"min" json:"min"`
	Max         float64            `bson:"max" json:"max"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Ref returns the resolved-reference view of the range entry.
func (e RangeEntry) Ref() RangeRef {
	return RangeRef{ID: e.ID, Min: e.Min, Max: e.Max, Description: e.Description}
}
