// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account that can own directory records. Accounts are
// created either by Google sign-in or by webhook lifecycle events from
// the upstream identity provider.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"full_name" json:"full_name"`
	FullNameCI string             `bson:"full_name_ci" json:"-"`
	Email      string             `bson:"email" json:"email"`
	Role       string             `bson:"role" json:"role"` // admin | contributor
	Status     string             `bson:"status,omitempty" json:"status,omitempty"`
	AuthMethod string             `bson:"auth_method,omitempty" json:"auth_method,omitempty"`

	// ExternalID links the account to the upstream identity provider
	// when it was created via webhook.
	ExternalID string `bson:"external_id,omitempty" json:"external_id,omitempty"`

	// PasswordHash is set only for password-auth accounts (bcrypt).
	PasswordHash *string `bson:"password_hash,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
