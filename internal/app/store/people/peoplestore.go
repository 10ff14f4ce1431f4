// internal/app/store/people/peoplestore.go

// Package peoplestore persists employees/contacts. Each person carries
// a tagged organization reference; enrichment dispatches on the tag to
// exactly one of the two organization stores.
package peoplestore

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

const Collection = "people"

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection(Collection)}
}

func fold(p *models.Person) {
	p.FirstName = normalize.Name(p.FirstName)
	p.LastName = normalize.Name(p.LastName)
	p.NameCI = text.Fold(p.FirstName + " " + p.LastName)
}

// Create inserts a person. The organization tag must be a known kind;
// the referenced organization is not verified to exist.
func (s *Store) Create(ctx context.Context, p models.Person) (models.Person, error) {
	fold(&p)
	if p.FirstName == "" {
		return models.Person{}, apperr.Validation("first name is required")
	}
	if !p.Org.Kind.Valid() {
		return models.Person{}, apperr.Validation(fmt.Sprintf("unknown organization type %q", p.Org.Kind))
	}
	if p.Org.ID.IsZero() {
		return models.Person{}, apperr.Validation("organization id is required")
	}

	p.ID = primitive.NewObjectID()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Person{}, fmt.Errorf("insert person: %w", err)
	}
	return p, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Person, error) {
	var p models.Person
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("person")
		}
		return nil, err
	}
	return &p, nil
}

// List pages all people, newest first.
func (s *Store) List(ctx context.Context, p paging.Params, search string) ([]models.Person, int, error) {
	filter := bson.M{}
	if search != "" {
		filter["name_ci"] = bson.M{"$regex": "^" + text.Fold(search)}
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

	var out []models.Person
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, p.TotalPages(total), nil
}

// ListByOrg returns every person attached to one organization.
func (s *Store) ListByOrg(ctx context.Context, org models.OrgRef) ([]models.Person, error) {
	if !org.Kind.Valid() {
		return nil, apperr.Validation(fmt.Sprintf("unknown organization type %q", org.Kind))
	}
	cur, err := s.c.Find(ctx,
		bson.M{"organization_type": org.Kind, "organization_id": org.ID},
		options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Person
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PersonUpdate carries the mutable fields for Update. Nil means
// unchanged. The organization reference is immutable after creation.
type PersonUpdate struct {
	Title        *string
	FirstName    *string
	LastName     *string
	Email        *string
	PhoneNumbers []string
	Position     *string
	Department   *string
}

func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd PersonUpdate) (*models.Person, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}
	first, last := existing.FirstName, existing.LastName
	if upd.FirstName != nil {
		first = normalize.Name(*upd.FirstName)
		if first == "" {
			return nil, apperr.Validation("first name is required")
		}
		set["first_name"] = first
	}
	if upd.LastName != nil {
		last = normalize.Name(*upd.LastName)
		set["last_name"] = last
	}
	if upd.FirstName != nil || upd.LastName != nil {
		set["name_ci"] = text.Fold(first + " " + last)
	}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Email != nil {
		set["email"] = normalize.Email(*upd.Email)
	}
	if upd.PhoneNumbers != nil {
		set["phone_numbers"] = upd.PhoneNumbers
	}
	if upd.Position != nil {
		set["position"] = *upd.Position
	}
	if upd.Department != nil {
		set["department"] = *upd.Department
	}

	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var p models.Person
	if err := res.Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("person")
		}
		return nil, err
	}
	return &p, nil
}

func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
