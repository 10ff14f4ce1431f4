// internal/app/store/users/userstore.go

// Package userstore persists accounts. Accounts arrive two ways:
// Google sign-in upserts by email, and identity-provider webhooks
// upsert by external id.
package userstore

import (
	"context"
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
	"golang.org/x/crypto/bcrypt"
)

const Collection = "users"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

// Create inserts a user. The email must be unique; a duplicate is
// reported as a validation failure.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.Email = normalize.Email(u.Email)
	u.FullName = normalize.Name(u.FullName)
	u.Role = normalize.Role(u.Role)
	u.Status = normalize.Status(u.Status)
	if u.Email == "" {
		return models.User{}, apperr.Validation("email is required")
	}
	u.FullNameCI = text.Fold(u.FullName)

	u.ID = primitive.NewObjectID()
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, apperr.Validation("an account with this email already exists")
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("user")
		}
		return nil, err
	}
	return &u, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("user")
		}
		return nil, err
	}
	return &u, nil
}

// UpsertOAuthUser finds-or-creates the account for a Google sign-in.
// An existing account keeps its role; a new one starts as contributor.
func (s *Store) UpsertOAuthUser(ctx context.Context, email, fullName string) (*models.User, error) {
	email = normalize.Email(email)
	if email == "" {
		return nil, apperr.Validation("email is required")
	}
	fullName = normalize.Name(fullName)

	now := time.Now()
	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"email": email},
		bson.M{
			"$set": bson.M{
				"full_name":    fullName,
				"full_name_ci": text.Fold(fullName),
				"auth_method":  "google",
				"updated_at":   now,
			},
			"$setOnInsert": bson.M{
				"_id":        primitive.NewObjectID(),
				"email":      email,
				"role":       "contributor",
				"status":     "active",
				"created_at": now,
			},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)
	var u models.User
	if err := res.Decode(&u); err != nil {
		return nil, fmt.Errorf("upsert oauth user: %w", err)
	}
	return &u, nil
}

// UpsertExternal creates or refreshes the account mirrored from an
// identity-provider webhook, keyed by external id.
func (s *Store) UpsertExternal(ctx context.Context, externalID, email, fullName, role string) (*models.User, error) {
	if externalID == "" {
		return nil, apperr.Validation("external id is required")
	}
	email = normalize.Email(email)
	if email == "" {
		return nil, apperr.Validation("email is required")
	}
	fullName = normalize.Name(fullName)
	role = normalize.Role(role)

	now := time.Now()
	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"external_id": externalID},
		bson.M{
			"$set": bson.M{
				"email":        email,
				"full_name":    fullName,
				"full_name_ci": text.Fold(fullName),
				"role":         role,
				"auth_method":  "external",
				"status":       "active",
				"updated_at":   now,
			},
			"$setOnInsert": bson.M{
				"_id":        primitive.NewObjectID(),
				"created_at": now,
			},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)
	var u models.User
	if err := res.Decode(&u); err != nil {
		return nil, fmt.Errorf("upsert external user: %w", err)
	}
	return &u, nil
}

// DeactivateExternal marks the webhook-managed account deleted instead
// of removing it, so ownership references on directory records stay
// resolvable.
func (s *Store) DeactivateExternal(ctx context.Context, externalID string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"external_id": externalID},
		bson.M{"$set": bson.M{"status": "deleted", "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("user")
	}
	return nil
}

// SetPassword stores a bcrypt hash for password-auth accounts.
func (s *Store) SetPassword(ctx context.Context, id primitive.ObjectID, plaintext string) error {
	if len(plaintext) < 8 {
		return apperr.Validation("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	h := string(hash)
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"password_hash": h, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("user")
	}
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (s *Store) CheckPassword(ctx context.Context, email, plaintext string) (*models.User, error) {
	u, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u.PasswordHash == nil {
		return nil, apperr.ErrUnauthorized
	}
	if bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(plaintext)) != nil {
		return nil, apperr.ErrUnauthorized
	}
	return u, nil
}

// SetRole changes an account's role (admin action).
func (s *Store) SetRole(ctx context.Context, id primitive.ObjectID, role string) error {
	role = normalize.Role(role)
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": role, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("user")
	}
	return nil
}
