// internal/app/store/oauthstate/oauthstate.go

// Package oauthstate persists short-lived OAuth state tokens so the
// callback can verify the flow originated here. States are single-use
// and expire via a TTL index.
package oauthstate

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const Collection = "oauth_states"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

type stateDoc struct {
	State     string    `bson:"state"`
	ReturnURL string    `bson:"return_url,omitempty"`
	ExpiresAt time.Time `bson:"expires_at"`
}

// Save stores a state token with its return URL and expiry.
func (s *Store) Save(ctx context.Context, state, returnURL string, expiresAt time.Time) error {
	_, err := s.c.InsertOne(ctx, stateDoc{
		State:     state,
		ReturnURL: returnURL,
		ExpiresAt: expiresAt,
	})
	return err
}

// Validate consumes a state token. It returns the saved return URL and
// whether the state was known and unexpired. The token is deleted
// either way; a state never validates twice.
func (s *Store) Validate(ctx context.Context, state string) (returnURL string, valid bool, err error) {
	var doc stateDoc
	findErr := s.c.FindOneAndDelete(ctx, bson.M{"state": state}).Decode(&doc)
	if findErr == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if findErr != nil {
		return "", false, findErr
	}
	if time.Now().After(doc.ExpiresAt) {
		return "", false, nil
	}
	return doc.ReturnURL, true, nil
}
