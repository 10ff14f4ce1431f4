// internal/app/store/grants/grantstore.go

// Package grantstore persists grants. Grants stand alone; they hold no
// references into the rest of the directory and need no populate pass.
package grantstore

import (
	"context"
	"fmt"
	"time"

	"github.com/seedscope/seedscope/internal/app/system/apperr"
	"github.com/seedscope/seedscope/internal/app/system/normalize"
	"github.com/seedscope/seedscope/internal/app/system/paging"
	"github.com/seedscope/seedscope/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Collection = "grants"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

func (s *Store) Create(ctx context.Context, g models.Grant) (models.Grant, error) {
	g.Title = normalize.Name(g.Title)
	if g.Title == "" {
		return models.Grant{}, apperr.Validation("title is required")
	}
	if g.Amount < 0 {
		return models.Grant{}, apperr.Validation("amount must not be negative")
	}
	g.TitleCI = text.Fold(g.Title)

	g.ID = primitive.NewObjectID()
	now := time.Now()
	g.CreatedAt = now
	g.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, g); err != nil {
		return models.Grant{}, fmt.Errorf("insert grant: %w", err)
	}
	return g, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Grant, error) {
	var g models.Grant
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("grant")
		}
		return nil, err
	}
	return &g, nil
}

// List pages grants newest first. A search term matches a folded
// prefix of the title.
func (s *Store) List(ctx context.Context, p paging.Params, search string) ([]models.Grant, int, error) {
	filter := bson.M{}
	if search != "" {
		filter["title_ci"] = bson.M{"$regex": "^" + text.Fold(search)}
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

	var out []models.Grant
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, p.TotalPages(total), nil
}

// GrantUpdate carries the mutable fields for Update. Nil means
// unchanged.
type GrantUpdate struct {
	Title        *string
	Description  *string
	AwardingOrg  *string
	OrgURL       *string
	Amount       *float64
	Eligibility  *string
	Duration     *string
	ExpiringDate *time.Time
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd GrantUpdate) (*models.Grant, error) {
	set := bson.M{"updated_at": time.Now()}
	if upd.Title != nil {
		title := normalize.Name(*upd.Title)
		if title == "" {
			return nil, apperr.Validation("title is required")
		}
		set["title"] = title
		set["title_ci"] = text.Fold(title)
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.AwardingOrg != nil {
		set["awarding_org"] = *upd.AwardingOrg
	}
	if upd.OrgURL != nil {
		set["org_url"] = *upd.OrgURL
	}
	if upd.Amount != nil {
		if *upd.Amount < 0 {
			return nil, apperr.Validation("amount must not be negative")
		}
		set["amount"] = *upd.Amount
	}
	if upd.Eligibility != nil {
		set["eligibility"] = *upd.Eligibility
	}
	if upd.Duration != nil {
		set["duration"] = *upd.Duration
	}
	if upd.ExpiringDate != nil {
		set["expiring_date"] = *upd.ExpiringDate
	}

	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var g models.Grant
	if err := res.Decode(&g); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("grant")
		}
		return nil, err
	}
	return &g, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
