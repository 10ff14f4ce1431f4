// internal/app/store/ranges/rangestore.go

// Package rangestore covers the two numeric-range tables, ticket_sizes
// and investment_asks. Same shape, one Store per collection.
package rangestore

import (
	"context"
	"fmt"
	"time"

	"github.com/seedscope/seedscope/internal/app/system/apperr"
	"github.com/seedscope/seedscope/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	TicketSizes    = "ticket_sizes"
	InvestmentAsks = "investment_asks"
)

var All = []string{TicketSizes, InvestmentAsks}

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database, collection string) *Store {
	return &Store{c: db.Collection(collection)}
}

// Create inserts a range entry. Min must not exceed Max.
func (s *Store) Create(ctx context.Context, e models.RangeEntry) (models.RangeEntry, error) {
	if e.Min < 0 {
		return models.RangeEntry{}, apperr.Validation("minimum must not be negative")
	}
	if e.Max < e.Min {
		return models.RangeEntry{}, apperr.Validation("maximum must not be less than minimum")
	}

	e.ID = primitive.NewObjectID()
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.RangeEntry{}, fmt.Errorf("insert %s: %w", s.c.Name(), err)
	}
	return e, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.RangeEntry, error) {
	var e models.RangeEntry
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound(s.c.Name())
		}
		return nil, err
	}
	return &e, nil
}

// GetAll returns every range sorted ascending by lower bound.
func (s *Store) GetAll(ctx context.Context) ([]models.RangeEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "min", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RangeEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByIDs batch-fetches by id list. Missing ids are skipped.
func (s *Store) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.RangeEntry, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := s.c.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RangeEntry
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, min, max float64, description string) (*models.RangeEntry, error) {
	if min < 0 {
		return nil, apperr.Validation("minimum must not be negative")
	}
	if max < min {
		return nil, apperr.Validation("maximum must not be less than minimum")
	}
	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"min":         min,
			"max":         max,
			"description": description,
			"updated_at":  time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var e models.RangeEntry
	if err := res.Decode(&e); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound(s.c.Name())
		}
		return nil, err
	}
	return &e, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
