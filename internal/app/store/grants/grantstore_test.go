package grantstore_test

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	grantstore "github.com/seedscope/seedscope/internal/app/store/grants"
	"github.com/seedscope/seedscope/internal/app/system/apperr"
	"github.com/seedscope/seedscope/internal/app/system/paging"
	"github.com/seedscope/seedscope/internal/domain/models"
	"github.com/seedscope/seedscope/internal/testutil"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := grantstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Grant{
		Title:       "Climate Innovation Fund",
		AwardingOrg: "Global Climate Initiative",
		Amount:      250000,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.TitleCI == "" {
		t.Error("expected TitleCI to be set")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_Create_Invalid(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := grantstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	tests := []struct {
		name  string
		grant models.Grant
	}{
		{"missing title", models.Grant{Amount: 1000}},
		{"negative amount", models.Grant{Title: "Bad Amount", Amount: -5}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := store.Create(ctx, tc.grant)
			if !errors.Is(err, apperr.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestStore_List_Search(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := grantstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	fixtures.CreateGrant(ctx, "AgriTech Accelerator")
	fixtures.CreateGrant(ctx, "AgriFood Challenge")
	fixtures.CreateGrant(ctx, "Health Moonshot")

	got, totalPages, err := store.List(ctx, paging.Params{Page: 1, Limit: 10}, "agri")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 matches, got %d", len(got))
	}
	if totalPages != 1 {
		t.Errorf("totalPages: got %d, want 1", totalPages)
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := grantstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Grant{Title: "Original", Amount: 1000})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	amount := 2000.0
	updated, err := store.Update(ctx, created.ID, grantstore.GrantUpdate{Amount: &amount})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Amount != 2000 {
		t.Errorf("Amount: got %v, want 2000", updated.Amount)
	}
	if updated.Title != "Original" {
		t.Errorf("Title changed on partial update: got %q", updated.Title)
	}
}

func TestStore_Update_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := grantstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	title := "Missing"
	_, err := store.Update(ctx, primitive.NewObjectID(), grantstore.GrantUpdate{Title: &title})
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := grantstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Grant{Title: "Short Lived"})
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
}
