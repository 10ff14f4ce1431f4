// internal/domain/models/company.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company is a startup/organization listed in the directory.
//
// Reference arrays (Categories, FundingTypes, …) hold raw ObjectIDs in
// storage. Use populate.Company to obtain a CompanyDetail whose
// reference fields are resolved LookupRef/RangeRef values.
type Company struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrganizationName string             `bson:"organization_name" json:"organization_name"`
	NameCI           string             `bson:"organization_name_ci" json:"-"` // lowercase, diacritics-stripped
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	Location         string             `bson:"location,omitempty" json:"location,omitempty"`
	Industries       []string           `bson:"industries,omitempty" json:"industries,omitempty"`
	ImageURL         string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	FundedDate       *time.Time         `bson:"funded_date,omitempty" json:"funded_date,omitempty"`
	OperatingStatus  string             `bson:"operating_status,omitempty" json:"operating_status,omitempty"`
	Owners           []string           `bson:"owners,omitempty" json:"owners,omitempty"`

	ContactEmail string `bson:"contact_email,omitempty" json:"contact_email,omitempty"`
	ContactPhone string `bson:"contact_phone,omitempty" json:"contact_phone,omitempty"`
	Website      string `bson:"website,omitempty" json:"website,omitempty"`

	AnnualRevenue float64 `bson:"annual_revenue,omitempty" json:"annual_revenue,omitempty"`

	// Reference-id arrays, resolved by the populator.
	Categories         []primitive.ObjectID `bson:"categories,omitempty" json:"categories,omitempty"`
	FundingTypes       []primitive.ObjectID `bson:"funding_types,omitempty" json:"funding_types,omitempty"`
	SDGFocus           []primitive.ObjectID `bson:"sdg_focus,omitempty" json:"sdg_focus,omitempty"`
	FundingInstruments []primitive.ObjectID `bson:"funding_instruments,omitempty" json:"funding_instruments,omitempty"`
	FundingRounds      []primitive.ObjectID `bson:"funding_rounds,omitempty" json:"funding_rounds,omitempty"`
	Sector             []primitive.ObjectID `bson:"sector,omitempty" json:"sector,omitempty"`
	InvestmentAsk      []primitive.ObjectID `bson:"investment_ask,omitempty" json:"investment_ask,omitempty"`
	FundedBy           []primitive.ObjectID `bson:"funded_by,omitempty" json:"funded_by,omitempty"`

	// CreatedBy is the account that owns the record; updates require a
	// matching caller id.
	CreatedBy primitive.ObjectID `bson:"created_by,omitempty" json:"created_by,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// CompanyDetail is a Company with every declared reference field
// resolved. All non-reference fields pass through untouched.
type CompanyDetail struct {
	ID               primitive.ObjectID `bson:"_id" json:"id"`
	OrganizationName string             `json:"organization_name"`
	Description      string             `json:"description,omitempty"`
	Location         string             `json:"location,omitempty"`
	Industries       []string           `json:"industries,omitempty"`
	ImageURL         string             `json:"image_url,omitempty"`
	FundedDate       *time.Time         `json:"funded_date,omitempty"`
	OperatingStatus  string             `json:"operating_status,omitempty"`
	Owners           []string           `json:"owners,omitempty"`

	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Website      string `json:"website,omitempty"`

	AnnualRevenue float64 `json:"annual_revenue,omitempty"`

	Categories         []LookupRef `json:"categories"`
	FundingTypes       []LookupRef `json:"funding_types"`
	SDGFocus           []LookupRef `json:"sdg_focus"`
	FundingInstruments []LookupRef `json:"funding_instruments"`
	FundingRounds      []LookupRef `json:"funding_rounds"`
	Sector             []LookupRef `json:"sector"`
	InvestmentAsk      []RangeRef  `json:"investment_ask"`
	FundedBy           []primitive.ObjectID `json:"funded_by,omitempty"`

	People []Person `json:"people,omitempty"`

	CreatedBy primitive.ObjectID `json:"created_by,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
