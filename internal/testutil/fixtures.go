package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/seedscope/seedscope/internal/domain/models"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateLookup inserts a taxonomy entry into the named lookup
// collection and returns it with its generated ID.
func (f *Fixtures) CreateLookup(ctx context.Context, collection, name string) models.Lookup {
	f.t.Helper()

	now := time.Now().UTC()
	l := models.Lookup{
		ID:          primitive.NewObjectID(),
		Name:        name,
		NameCI:      text.Fold(name),
		Description: "Test lookup entry",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := f.db.Collection(collection).InsertOne(ctx, l); err != nil {
		f.t.Fatalf("failed to create test lookup in %s: %v", collection, err)
	}
	return l
}

// CreateRange inserts a range entry into the named range collection.
func (f *Fixtures) CreateRange(ctx context.Context, collection string, min, max float64) models.RangeEntry {
	f.t.Helper()

	now := time.Now().UTC()
	e := models.RangeEntry{
		ID:        primitive.NewObjectID(),
		Min:       min,
		Max:       max,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection(collection).InsertOne(ctx, e); err != nil {
		f.t.Fatalf("failed to create test range in %s: %v", collection, err)
	}
	return e
}

// CreateCompany inserts a company owned by createdBy, tagged with the
// given category IDs.
func (f *Fixtures) CreateCompany(ctx context.Context, name string, createdBy primitive.ObjectID, categories ...primitive.ObjectID) models.Company {
	f.t.Helper()

	now := time.Now().UTC()
	co := models.Company{
		ID:               primitive.NewObjectID(),
		OrganizationName: name,
		NameCI:           text.Fold(name),
		Categories:       categories,
		CreatedBy:        createdBy,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := f.db.Collection("companies").InsertOne(ctx, co); err != nil {
		f.t.Fatalf("failed to create test company: %v", err)
	}
	return co
}

// CreateIndividualInvestor inserts an individual investor and its slim
// mirror row in the base collection.
func (f *Fixtures) CreateIndividualInvestor(ctx context.Context, firstName, lastName string, createdBy primitive.ObjectID, categories ...primitive.ObjectID) models.Investor {
	f.t.Helper()

	name := firstName + " " + lastName
	inv := models.Investor{
		Type:   models.InvestorTypeIndividual,
		Name:   name,
		NameCI: text.Fold(name),
		IndividualDetails: &models.IndividualDetails{
			FirstName: firstName,
			LastName:  lastName,
		},
		Categories: categories,
	}
	return f.insertInvestor(ctx, "individual_investors", inv, createdBy)
}

// CreateInstitutionInvestor inserts an institution investor and its
// slim mirror row in the base collection.
func (f *Fixtures) CreateInstitutionInvestor(ctx context.Context, orgName string, createdBy primitive.ObjectID, categories ...primitive.ObjectID) models.Investor {
	f.t.Helper()

	inv := models.Investor{
		Type:   models.InvestorTypeInstitution,
		Name:   orgName,
		NameCI: text.Fold(orgName),
		InstitutionDetails: &models.InstitutionDetails{
			OrganizationName: orgName,
		},
		Categories: categories,
	}
	return f.insertInvestor(ctx, "institution_investors", inv, createdBy)
}

func (f *Fixtures) insertInvestor(ctx context.Context, collection string, inv models.Investor, createdBy primitive.ObjectID) models.Investor {
	f.t.Helper()

	now := time.Now().UTC()
	inv.ID = primitive.NewObjectID()
	inv.CreatedBy = createdBy
	inv.CreatedAt = now
	inv.UpdatedAt = now

	if _, err := f.db.Collection(collection).InsertOne(ctx, inv); err != nil {
		f.t.Fatalf("failed to create test investor: %v", err)
	}

	mirror := struct {
		ID         primitive.ObjectID   `bson:"_id"`
		Type       string               `bson:"type"`
		Name       string               `bson:"name"`
		NameCI     string               `bson:"name_ci"`
		Categories []primitive.ObjectID `bson:"categories,omitempty"`
		CreatedAt  time.Time            `bson:"created_at"`
		UpdatedAt  time.Time            `bson:"updated_at"`
	}{inv.ID, inv.Type, inv.Name, inv.NameCI, inv.Categories, inv.CreatedAt, inv.UpdatedAt}

	if _, err := f.db.Collection("investors").InsertOne(ctx, mirror); err != nil {
		f.t.Fatalf("failed to create test investor mirror: %v", err)
	}
	return inv
}

// CreateUser creates a test account with the given role.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, role string) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:         primitive.NewObjectID(),
		FullName:   fullName,
		FullNameCI: text.Fold(fullName),
		Email:      email,
		Role:       role,
		Status:     "active",
		AuthMethod: "google",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateAdmin creates a test admin account.
func (f *Fixtures) CreateAdmin(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, "admin")
}

// CreatePerson inserts a person attached to the given organization.
func (f *Fixtures) CreatePerson(ctx context.Context, firstName, lastName string, org models.OrgRef) models.Person {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Person{
		ID:        primitive.NewObjectID(),
		FirstName: firstName,
		LastName:  lastName,
		NameCI:    text.Fold(firstName + " " + lastName),
		Org:       org,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("people").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test person: %v", err)
	}
	return p
}

// CreateGrant inserts a grant with the given title.
func (f *Fixtures) CreateGrant(ctx context.Context, title string) models.Grant {
	f.t.Helper()

	now := time.Now().UTC()
	g := models.Grant{
		ID:        primitive.NewObjectID(),
		Title:     title,
		TitleCI:   text.Fold(title),
		Amount:    50000,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("grants").InsertOne(ctx, g); err != nil {
		f.t.Fatalf("failed to create test grant: %v", err)
	}
	return g
}
