// internal/domain/models/lookup.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lookup is a simple {name, description} taxonomy entry. Categories,
// funding types, SDG focuses, sectors, funding instruments, and
// funding rounds all share this shape; each lives in its own
// collection.
type Lookup struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	NameCI      string             `bson:"name_ci" json:"-"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`

	// CompanyIDs is a reverse index maintained (best effort) when a
	// company is created under a category. The write is independent of
	// the company insert; the window where the two disagree is an
	// accepted inconsistency.
	CompanyIDs []primitive.ObjectID `bson:"company_ids,omitempty" json:"company_ids,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Ref returns the resolved-reference view of the lookup.
func (l Lookup) Ref() LookupRef {
	return LookupRef{ID: l.ID, Name: l.Name}
}
