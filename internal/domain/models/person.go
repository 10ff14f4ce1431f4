// internal/domain/models/person.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Person is an employee/contact attached to a company or investor via
// a tagged OrgRef. The store does not enforce the reference; a person
// whose organization was deleted is simply orphaned (documented gap —
// deletes do not cascade).
type Person struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string             `bson:"title,omitempty" json:"title,omitempty"`
	FirstName    string             `bson:"first_name" json:"first_name"`
	LastName     string             `bson:"last_name" json:"last_name"`
	NameCI       string             `bson:"name_ci" json:"-"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	PhoneNumbers []string           `bson:"phone_numbers,omitempty" json:"phone_numbers,omitempty"`
	Position     string             `bson:"position,omitempty" json:"position,omitempty"`
	Department   string             `bson:"department,omitempty" json:"department,omitempty"`

	Org OrgRef `bson:",inline" json:"org"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
