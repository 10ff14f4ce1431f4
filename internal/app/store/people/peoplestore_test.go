package peoplestore_test

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	peoplestore "github.com/seedscope/seedscope/internal/app/store/people"
	"github.com/seedscope/seedscope/internal/app/system/apperr"
	"github.com/seedscope/seedscope/internal/app/system/paging"
	"github.com/seedscope/seedscope/internal/domain/models"
	"github.com/seedscope/seedscope/internal/testutil"
)

func companyRef() models.OrgRef {
	return models.OrgRef{Kind: models.OrgCompany, ID: primitive.NewObjectID()}
}

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := peoplestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Person{
		FirstName: "Leila",
		LastName:  "Haddad",
		Position:  "CTO",
		Org:       companyRef(),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.NameCI == "" {
		t.Error("expected NameCI to be set")
	}
}

func TestStore_Create_Invalid(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := peoplestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	tests := []struct {
		name   string
		person models.Person
	}{
		{"missing first name", models.Person{LastName: "Solo", Org: companyRef()}},
		{"invalid org kind", models.Person{FirstName: "Bad", Org: models.OrgRef{Kind: "Charity", ID: primitive.NewObjectID()}}},
		{"zero org id", models.Person{FirstName: "Bad", Org: models.OrgRef{Kind: models.OrgCompany}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.Create(ctx, tc.person)
			if !errors.Is(err, apperr.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestStore_ListByOrg(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := peoplestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	org := companyRef()
	other := models.OrgRef{Kind: models.OrgInvestor, ID: org.ID}

	fixtures.CreatePerson(ctx, "Zoe", "Adler", org)
	fixtures.CreatePerson(ctx, "Ben", "Adler", org)
	// Same id under a different kind must not match.
	fixtures.CreatePerson(ctx, "Carl", "Other", other)

	got, err := store.ListByOrg(ctx, org)
	if err != nil {
		t.Fatalf("ListByOrg failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 people, got %d", len(got))
	}
	// Sorted by folded name.
	if got[0].FirstName != "Ben" {
		t.Errorf("first person: got %q, want %q", got[0].FirstName, "Ben")
	}
}

func TestStore_List_Search(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := peoplestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	fixtures.CreatePerson(ctx, "Maria", "Santos", companyRef())
	fixtures.CreatePerson(ctx, "Mariam", "Diallo", companyRef())
	fixtures.CreatePerson(ctx, "John", "Okoro", companyRef())

	got, _, err := store.List(ctx, paging.Params{Page: 1, Limit: 10}, "maria")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 matches, got %d", len(got))
	}
}

func TestStore_Update_RecomputesFoldedName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := peoplestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Person{
		FirstName: "Old",
		LastName:  "Name",
		Org:       companyRef(),
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newLast := "Rename"
	updated, err := store.Update(ctx, created.ID, peoplestore.PersonUpdate{LastName: &newLast})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.LastName != "Rename" {
		t.Errorf("LastName: got %q, want %q", updated.LastName, "Rename")
	}
	if updated.NameCI == created.NameCI {
		t.Error("expected NameCI to change with the name")
	}
	// The organization reference is immutable; it must survive.
	if updated.Org != created.Org {
		t.Errorf("Org changed: got %+v, want %+v", updated.Org, created.Org)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := peoplestore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Person{FirstName: "Tmp", Org: companyRef()})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	deleted, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Error("expected Delete to report true")
	}

	if _, err := store.GetByID(ctx, created.ID); !apperr.IsNotFound(err) {
		t.Errorf("expected not-found after delete, got %v", err)
	}
}
