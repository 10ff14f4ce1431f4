// internal/app/system/indexes/indexes.go

// Package indexes creates the MongoDB indexes the stores rely on.
// EnsureAll runs at startup and is idempotent.
package indexes

import (
	"context"
	"fmt"

	companystore "github.com/seedscope/seedscope/internal/app/store/companies"
	grantstore "github.com/seedscope/seedscope/internal/app/store/grants"
	investorstore "github.com/seedscope/seedscope/internal/app/store/investors"
	lookupstore "github.com/seedscope/seedscope/internal/app/store/lookups"
	"github.com/seedscope/seedscope/internal/app/store/oauthstate"
	peoplestore "github.com/seedscope/seedscope/internal/app/store/people"
	rangestore "github.com/seedscope/seedscope/internal/app/store/ranges"
	userstore "github.com/seedscope/seedscope/internal/app/store/users"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureAll(ctx context.Context, db *mongo.Database) error {
	// Lookup tables: unique folded name per collection.
	for _, name := range lookupstore.All {
		_, err := db.Collection(name).Indexes().CreateMany(ctx, []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "name_ci", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		})
		if err != nil {
			return fmt.Errorf("indexes %s: %w", name, err)
		}
	}

	for _, name := range rangestore.All {
		_, err := db.Collection(name).Indexes().CreateMany(ctx, []mongo.IndexModel{
			{Keys: bson.D{{Key: "min", Value: 1}}},
		})
		if err != nil {
			return fmt.Errorf("indexes %s: %w", name, err)
		}
	}

	_, err := db.Collection(companystore.Collection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "organization_name_ci", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "categories", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("indexes companies: %w", err)
	}

	for _, name := range []string{investorstore.Individuals, investorstore.Institutions} {
		_, err := db.Collection(name).Indexes().CreateMany(ctx, []mongo.IndexModel{
			{Keys: bson.D{{Key: "name_ci", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
			{Keys: bson.D{{Key: "created_by", Value: 1}}},
		})
		if err != nil {
			return fmt.Errorf("indexes %s: %w", name, err)
		}
	}

	// The base mirror is queried by category intersection.
	_, err = db.Collection(investorstore.Base).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "categories", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("indexes investors: %w", err)
	}

	_, err = db.Collection(peoplestore.Collection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "organization_type", Value: 1}, {Key: "organization_id", Value: 1}}},
		{Keys: bson.D{{Key: "name_ci", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("indexes people: %w", err)
	}

	_, err = db.Collection(grantstore.Collection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "title_ci", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("indexes grants: %w", err)
	}

	_, err = db.Collection(userstore.Collection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "external_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetSparse(true),
		},
	})
	if err != nil {
		return fmt.Errorf("indexes users: %w", err)
	}

	// OAuth states are single-use and expire on their own.
	_, err = db.Collection(oauthstate.Collection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "state", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	})
	if err != nil {
		return fmt.Errorf("indexes oauth_states: %w", err)
	}

	return nil
}
