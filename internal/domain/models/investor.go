// internal/domain/models/investor.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Investor type discriminator values. The tag on a stored document
// always matches the collection it lives in.
const (
	InvestorTypeIndividual  = "Individual"
	InvestorTypeInstitution = "Institution"
)

// Investor is the shared shape stored in both investor collections.
// The Type field says which detail block is present.
//
// Individual and institution investors live in two physically separate
// collections (individual_investors, institution_investors). The union
// resolver in store/investors presents them as one logical entity; the
// legacy shared "investors" collection survives only to back
// category-based related-investor discovery.
type Investor struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type        string             `bson:"type" json:"type"` // Individual | Institution
	Name        string             `bson:"name" json:"name"`
	NameCI      string             `bson:"name_ci" json:"-"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	PhoneNumber string             `bson:"phone_number,omitempty" json:"phone_number,omitempty"`

	TotalAmountFunded   float64 `bson:"total_amount_funded,omitempty" json:"total_amount_funded,omitempty"`
	HighestAmountFunded float64 `bson:"highest_amount_funded,omitempty" json:"highest_amount_funded,omitempty"`

	FundingTypes       []primitive.ObjectID `bson:"funding_types,omitempty" json:"funding_types,omitempty"`
	FundingRounds      []primitive.ObjectID `bson:"funding_rounds,omitempty" json:"funding_rounds,omitempty"`
	FundingInstruments []primitive.ObjectID `bson:"funding_instruments,omitempty" json:"funding_instruments,omitempty"`
	TicketSize         []primitive.ObjectID `bson:"ticket_size,omitempty" json:"ticket_size,omitempty"`
	Categories         []primitive.ObjectID `bson:"categories,omitempty" json:"categories,omitempty"`
	FundedCompanies    []primitive.ObjectID `bson:"funded_companies,omitempty" json:"funded_companies,omitempty"`

	IndividualDetails  *IndividualDetails  `bson:"individual_details,omitempty" json:"individual_details,omitempty"`
	InstitutionDetails *InstitutionDetails `bson:"institution_details,omitempty" json:"institution_details,omitempty"`

	CreatedBy primitive.ObjectID `bson:"created_by,omitempty" json:"created_by,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// IndividualDetails holds the fields specific to an individual angel
// investor.
type IndividualDetails struct {
	FirstName  string `bson:"first_name" json:"first_name"`
	LastName   string `bson:"last_name" json:"last_name"`
	Age        int    `bson:"age,omitempty" json:"age,omitempty"`
	Occupation string `bson:"occupation,omitempty" json:"occupation,omitempty"`
	Bio        string `bson:"bio,omitempty" json:"bio,omitempty"`
	Portfolio  string `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
	ImageURL   string `bson:"image_url,omitempty" json:"image_url,omitempty"`
}

// InstitutionDetails holds the fields specific to an institutional
// investor (fund, bank, foundation).
type InstitutionDetails struct {
	OrganizationName string               `bson:"organization_name" json:"organization_name"`
	Description      string               `bson:"description,omitempty" json:"description,omitempty"`
	Website          string               `bson:"website,omitempty" json:"website,omitempty"`
	ContactNumber    string               `bson:"contact_number,omitempty" json:"contact_number,omitempty"`
	Address          string               `bson:"address,omitempty" json:"address,omitempty"`
	Categories       []primitive.ObjectID `bson:"categories,omitempty" json:"categories,omitempty"`
	ContactEmail     string               `bson:"contact_email,omitempty" json:"contact_email,omitempty"`
	Location         string               `bson:"location,omitempty" json:"location,omitempty"`
	ImageURL         string               `bson:"image_url,omitempty" json:"image_url,omitempty"`
}

// InvestorDetail is an Investor with reference fields resolved.
type InvestorDetail struct {
	ID          primitive.ObjectID `json:"id"`
	Type        string             `json:"type"`
	Name        string             `json:"name"`
	Email       string             `json:"email,omitempty"`
	PhoneNumber string             `json:"phone_number,omitempty"`

	TotalAmountFunded   float64 `json:"total_amount_funded,omitempty"`
	HighestAmountFunded float64 `json:"highest_amount_funded,omitempty"`

	FundingTypes       []LookupRef `json:"funding_types"`
	FundingRounds      []LookupRef `json:"funding_rounds"`
	FundingInstruments []LookupRef `json:"funding_instruments"`
	TicketSize         []RangeRef  `json:"ticket_size"`

	FundedCompanies []primitive.ObjectID `json:"funded_companies,omitempty"`

	IndividualDetails  *IndividualDetails  `json:"individual_details,omitempty"`
	InstitutionDetails *InstitutionDetails `json:"institution_details,omitempty"`

	People []Person `json:"people,omitempty"`

	CreatedBy primitive.ObjectID `json:"created_by,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
