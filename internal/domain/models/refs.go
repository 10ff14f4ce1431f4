// internal/domain/models/refs.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LookupRef is a resolved reference to a lookup document (category,
// funding type, sector, and so on). Stored documents keep raw
// []primitive.ObjectID reference arrays; only the populated Detail
// views carry LookupRef values. Keeping the two shapes as distinct
// types means a caller can never read Name off an unresolved id.
type LookupRef struct {
	ID   primitive.ObjectID `bson:"_id" json:"_id"`
	Name string             `bson:"name" json:"name"`
}

// RangeRef is a resolved reference into one of the range tables
// (ticket_sizes, investment_asks). Range tables are not a native
// relation; they are batch-fetched by id list and the result order is
// not guaranteed.
type RangeRef struct {
	ID          primitive.ObjectID `bson:"_id" json:"_id"`
	Min         float64            `bson:"min" json:"min"`
	Max         float64            `bson:"max" json:"max"`
	Description string             `bson:"description" json:"description"`
}

// OrgKind discriminates the polymorphic organization reference on a
// Person record.
type OrgKind string

const (
	OrgCompany  OrgKind = "Company"
	OrgInvestor OrgKind = "Investor"
)

// Valid reports whether k is one of the known organization kinds.
func (k OrgKind) Valid() bool {
	return k == OrgCompany || k == OrgInvestor
}

// OrgRef is a tagged reference to either a company or an investor.
// Enrichment dispatches on Kind; it never probes both collections.
type OrgRef struct {
	Kind OrgKind            `bson:"organization_type" json:"organization_type"`
	ID   primitive.ObjectID `bson:"organization_id" json:"organization_id"`
}
