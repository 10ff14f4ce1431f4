// internal/domain/models/grant.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Grant is a standalone funding opportunity. Grants have no relations
// to companies or investors.
type Grant struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title" json:"title"`
	TitleCI      string             `bson:"title_ci" json:"-"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	AwardingOrg  string             `bson:"awarding_org,omitempty" json:"awarding_org,omitempty"`
	OrgURL       string             `bson:"org_url,omitempty" json:"org_url,omitempty"`
	Amount       float64            `bson:"amount,omitempty" json:"amount,omitempty"`
	Eligibility  string             `bson:"eligibility,omitempty" json:"eligibility,omitempty"`
	Duration     string             `bson:"duration,omitempty" json:"duration,omitempty"`
	ExpiringDate *time.Time         `bson:"expiring_date,omitempty" json:"expiring_date,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
