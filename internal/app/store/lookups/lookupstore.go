// internal/app/store/lookups/lookupstore.go

// Package lookupstore provides CRUD for the six taxonomy collections
// (categories, funding_types, sdg_focuses, sectors,
// funding_instruments, funding_rounds). They share one document shape,
// so a single Store parameterized by collection covers all of them.
package lookupstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/seedscope/seedscope/internal/app/system/apperr"
	"github.com/seedscope/seedscope/internal/app/system/normalize"
	"github.com/seedscope/seedscope/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names for the taxonomy tables.
const (
	Categories         = "categories"
	FundingTypes       = "funding_types"
	SDGFocuses         = "sdg_focuses"
	Sectors            = "sectors"
	FundingInstruments = "funding_instruments"
	FundingRounds      = "funding_rounds"
)

// All lists every taxonomy collection, for index setup and seeding.
var All = []string{Categories, FundingTypes, SDGFocuses, Sectors, FundingInstruments, FundingRounds}

// ErrDuplicateName is returned when a lookup with the same folded name
// already exists in the collection.
var ErrDuplicateName = errors.New("an entry with this name already exists")

type Store struct {
	c *mongo.Collection
}

// New returns a Store over the named taxonomy collection.
func New(db *mongo.Database, collection string) *Store {
	return &Store{c: db.Collection(collection)}
}

// Create inserts a new lookup entry after normalizing the name.
func (s *Store) Create(ctx context.Context, l models.Lookup) (models.Lookup, error) {
	l.ID = primitive.NewObjectID()
	l.Name = normalize.Name(l.Name)
	l.NameCI = text.Fold(l.Name)
	if l.Name == "" {
		return models.Lookup{}, apperr.Validation("name is required")
	}

	now := time.Now()
	l.CreatedAt = now
	l.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, l); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Lookup{}, ErrDuplicateName
		}
		return models.Lookup{}, fmt.Errorf("insert %s: %w", s.c.Name(), err)
	}
	return l, nil
}

// GetByID loads one entry; apperr.ErrNotFound when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Lookup, error) {
	var l models.Lookup
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound(s.c.Name())
		}
		return nil, err
	}
	return &l, nil
}

// GetAll returns every entry sorted by folded name. Lookup tables are
// small; no pagination.
func (s *Store) GetAll(ctx context.Context) ([]models.Lookup, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Lookup
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDs batch-fetches entries by id list in one $in query. Missing
// ids are silently absent from the result; broken references degrade
// to fewer rows, never an error.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Lookup, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Lookup
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update replaces name/description. Lookup tables carry no ownership;
// updates are unchecked.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, name, description string) (*models.Lookup, error) {
	name = normalize.Name(name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}
	set := bson.M{
		"name":        name,
		"name_ci":     text.Fold(name),
		"description": description,
		"updated_at":  time.Now(),
	}
	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var l models.Lookup
	if err := res.Decode(&l); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound(s.c.Name())
		}
		if wafflemongo.IsDup(err) {
			return nil, ErrDuplicateName
		}
		return nil, err
	}
	return &l, nil
}

// Delete removes an entry. Companies still referencing it are not
// touched; their populate output simply drops the dangling id.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

// PushCompanyID appends a company id to the entries' reverse index.
// This write is independent of the company insert; if it fails the
// company simply is not indexed under its categories.
func (s *Store) PushCompanyID(ctx context.Context, lookupIDs []primitive.ObjectID, companyID primitive.ObjectID) error {
	if len(lookupIDs) == 0 {
		return nil
	}
	_, err := s.c.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": lookupIDs}},
		bson.M{"$addToSet": bson.M{"company_ids": companyID}},
	)
	return err
}
