// internal/app/store/companies/companystore.go

// Package companystore persists Company records in the companies
// collection. Updates and deletes are ownership-checked: only the
// creating account or an admin may mutate a record, and an owner
// mismatch is reported as Unauthorized, never as NotFound.
package companystore

import (
	"context"
	"fmt"
	"time"

	"github.com/seedscope/seedscope/internal/app/system/apperr"
	"github.com/seedscope/seedscope/internal/app/system/normalize"
	"github.com/seedscope/seedscope/internal/app/system/paging"
	"github.com/seedscope/seedscope/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Collection = "companies"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// Create inserts a company owned by createdBy.
func (s *Store) Create(ctx context.Context, co models.Company, createdBy primitive.ObjectID) (models.Company, error) {
	co.OrganizationName = normalize.Name(co.OrganizationName)
	if co.OrganizationName == "" {
		return models.Company{}, apperr.Validation("organization name is required")
	}
	co.NameCI = text.Fold(co.OrganizationName)

	co.ID = primitive.NewObjectID()
	co.CreatedBy = createdBy
	now := time.Now()
	co.CreatedAt = now
	co.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, co); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Company{}, apperr.Validation("a company with this name already exists")
		}
		return models.Company{}, fmt.Errorf("insert company: %w", err)
	}
	return co, nil
}

// GetByID loads one company; apperr.ErrNotFound when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Company, error) {
	var co models.Company
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&co); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("company")
		}
		return nil, err
	}
	return &co, nil
}

// List returns one page of companies, newest first, with the total
// page count. A non-empty search term matches a folded prefix of the
// organization name.
func (s *Store) List(ctx context.Context, p paging.Params, search string) ([]models.Company, int, error) {
	filter := bson.M{}
	if search != "" {
		filter["organization_name_ci"] = bson.M{"$regex": "^" + text.Fold(search)}
	}

	total, err := s.c.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit64())
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var out []models.Company
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, p.TotalPages(total), nil
}

// CompanyUpdate carries the mutable fields for Update. Nil pointers
// and nil slices mean "leave unchanged".
type CompanyUpdate struct {
	OrganizationName *string
	Description      *string
	Location         *string
	Industries       []string
	ImageURL         *string
	FundedDate       *time.Time
	OperatingStatus  *string
	Owners           []string
	ContactEmail     *string
	ContactPhone     *string
	Website          *string
	AnnualRevenue    *float64

	Categories         []primitive.ObjectID
	FundingTypes       []primitive.ObjectID
	SDGFocus           []primitive.ObjectID
	FundingInstruments []primitive.ObjectID
	FundingRounds      []primitive.ObjectID
	Sector             []primitive.ObjectID
	InvestmentAsk      []primitive.ObjectID
	FundedBy           []primitive.ObjectID
}

func (u CompanyUpdate) set() bson.M {
	set := bson.M{"updated_at": time.Now()}
	if u.OrganizationName != nil {
		name := normalize.Name(*u.OrganizationName)
		set["organization_name"] = name
		set["organization_name_ci"] = text.Fold(name)
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Location != nil {
		set["location"] = *u.Location
	}
	if u.Industries != nil {
		set["industries"] = u.Industries
	}
	if u.ImageURL != nil {
		set["image_url"] = *u.ImageURL
	}
	if u.FundedDate != nil {
		set["funded_date"] = *u.FundedDate
	}
	if u.OperatingStatus != nil {
		set["operating_status"] = *u.OperatingStatus
	}
	if u.Owners != nil {
		set["owners"] = u.Owners
	}
	if u.ContactEmail != nil {
		set["contact_email"] = normalize.Email(*u.ContactEmail)
	}
	if u.ContactPhone != nil {
		set["contact_phone"] = *u.ContactPhone
	}
	if u.Website != nil {
		set["website"] = *u.Website
	}
	if u.AnnualRevenue != nil {
		set["annual_revenue"] = *u.AnnualRevenue
	}
	if u.Categories != nil {
		set["categories"] = u.Categories
	}
	if u.FundingTypes != nil {
		set["funding_types"] = u.FundingTypes
	}
	if u.SDGFocus != nil {
		set["sdg_focus"] = u.SDGFocus
	}
	if u.FundingInstruments != nil {
		set["funding_instruments"] = u.FundingInstruments
	}
	if u.FundingRounds != nil {
		set["funding_rounds"] = u.FundingRounds
	}
	if u.Sector != nil {
		set["sector"] = u.Sector
	}
	if u.InvestmentAsk != nil {
		set["investment_ask"] = u.InvestmentAsk
	}
	if u.FundedBy != nil {
		set["funded_by"] = u.FundedBy
	}
	return set
}

// Update applies upd after verifying ownership. The record is fetched
// first so a missing document surfaces as NotFound and an owner
// mismatch as Unauthorized; the two are never conflated.
func (s *Store) Update(ctx context.Context, id, callerID primitive.ObjectID, isAdmin bool, upd CompanyUpdate) (*models.Company, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && existing.CreatedBy != callerID {
		return nil, apperr.ErrUnauthorized
	}
	if upd.OrganizationName != nil && normalize.Name(*upd.OrganizationName) == "" {
		return nil, apperr.Validation("organization name is required")
	}

	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": upd.set()},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var co models.Company
	if err := res.Decode(&co); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("company")
		}
		return nil, err
	}
	return &co, nil
}

// Delete removes a company after the same ownership check as Update.
func (s *Store) Delete(ctx context.Context, id, callerID primitive.ObjectID, isAdmin bool) error {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && existing.CreatedBy != callerID {
		return apperr.ErrUnauthorized
	}
	_, err = s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// GetByIDs batch-fetches companies in one $in query. Missing ids are
// skipped.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Company, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Company
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
