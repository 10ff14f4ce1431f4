package companystore_test

import (
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	companystore "github.com/seedscope/seedscope/internal/app/store/companies"
	"github.com/seedscope/seedscope/internal/app/system/apperr"
	"github.com/seedscope/seedscope/internal/app/system/paging"
	"github.com/seedscope/seedscope/internal/domain/models"
	"github.com/seedscope/seedscope/internal/testutil"
)

func TestStore_CreateAndGetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := companystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	created, err := store.Create(ctx, models.Company{
		OrganizationName: "  Solar Harvest  ",
		Description:      "Off-grid solar installations",
		Location:         "Nairobi",
	}, owner)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.OrganizationName != "Solar Harvest" {
		t.Errorf("OrganizationName: got %q, want %q", created.OrganizationName, "Solar Harvest")
	}
	if created.NameCI == "" {
		t.Error("expected NameCI to be set")
	}
	if created.CreatedBy != owner {
		t.Errorf("CreatedBy: got %s, want %s", created.CreatedBy.Hex(), owner.Hex())
	}

	found, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.OrganizationName != created.OrganizationName {
		t.Errorf("OrganizationName: got %q, want %q", found.OrganizationName, created.OrganizationName)
	}
	if found.Location != "Nairobi" {
		t.Errorf("Location: got %q, want %q", found.Location, "Nairobi")
	}
}

func TestStore_Create_MissingName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := companystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.Company{OrganizationName: "   "}, primitive.NewObjectID())
	if err == nil {
		t.Fatal("expected error for blank organization name")
	}
}

func TestStore_List_Search(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := companystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	owner := primitive.NewObjectID()
	fixtures.CreateCompany(ctx, "GreenGrid Energy", owner)
	fixtures.CreateCompany(ctx, "Greenhouse Labs", owner)
	fixtures.CreateCompany(ctx, "AquaPure", owner)

	got, totalPages, err := store.List(ctx, paging.Params{Page: 1, Limit: 10}, "green")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 matches for prefix search, got %d", len(got))
	}
	if totalPages != 1 {
		t.Errorf("totalPages: got %d, want 1", totalPages)
	}
}

func TestStore_List_Pagination(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := companystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	owner := primitive.NewObjectID()
	for i := 0; i < 7; i++ {
		fixtures.CreateCompany(ctx, fmt.Sprintf("Company %d", i), owner)
	}

	page1, totalPages, err := store.List(ctx, paging.Params{Page: 1, Limit: 3}, "")
	if err != nil {
		t.Fatalf("List page 1 failed: %v", err)
	}
	if len(page1) != 3 {
		t.Errorf("page 1: expected 3 companies, got %d", len(page1))
	}
	if totalPages != 3 {
		t.Errorf("totalPages: got %d, want 3", totalPages)
	}

	page3, _, err := store.List(ctx, paging.Params{Page: 3, Limit: 3}, "")
	if err != nil {
		t.Fatalf("List page 3 failed: %v", err)
	}
	if len(page3) != 1 {
		t.Errorf("page 3: expected 1 company, got %d", len(page3))
	}
}

func TestStore_Update_Ownership(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := companystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	created, err := store.Create(ctx, models.Company{OrganizationName: "Ownership Test"}, owner)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newName := "Renamed"

	// A non-owner cannot update; the record exists, so this is
	// unauthorized rather than not found.
	_, err = store.Update(ctx, created.ID, stranger, false, companystore.CompanyUpdate{OrganizationName: &newName})
	if !apperr.IsUnauthorized(err) {
		t.Errorf("expected unauthorized error for non-owner, got %v", err)
	}

	// A missing record is not found, even for a non-owner caller.
	_, err = store.Update(ctx, primitive.NewObjectID(), stranger, false, companystore.CompanyUpdate{OrganizationName: &newName})
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not-found error for missing record, got %v", err)
	}

	// The owner can update.
	updated, err := store.Update(ctx, created.ID, owner, false, companystore.CompanyUpdate{OrganizationName: &newName})
	if err != nil {
		t.Fatalf("owner Update failed: %v", err)
	}
	if updated.OrganizationName != "Renamed" {
		t.Errorf("OrganizationName: got %q, want %q", updated.OrganizationName, "Renamed")
	}

	// An admin can update records it does not own.
	desc := "admin edit"
	if _, err := store.Update(ctx, created.ID, stranger, true, companystore.CompanyUpdate{Description: &desc}); err != nil {
		t.Errorf("admin Update failed: %v", err)
	}
}

func TestStore_Update_PartialFieldsOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := companystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	created, err := store.Create(ctx, models.Company{
		OrganizationName: "Partial Update",
		Location:         "Lagos",
	}, owner)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	desc := "now with a description"
	updated, err := store.Update(ctx, created.ID, owner, false, companystore.CompanyUpdate{Description: &desc})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	// Untouched fields survive a partial update.
	if updated.Location != "Lagos" {
		t.Errorf("Location: got %q, want %q", updated.Location, "Lagos")
	}
	if updated.Description != desc {
		t.Errorf("Description: got %q, want %q", updated.Description, desc)
	}
}

func TestStore_Delete_Ownership(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := companystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	created, err := store.Create(ctx, models.Company{OrganizationName: "Delete Test"}, owner)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.Delete(ctx, created.ID, primitive.NewObjectID(), false); !apperr.IsUnauthorized(err) {
		t.Errorf("expected unauthorized error for non-owner, got %v", err)
	}

	if err := store.Delete(ctx, created.ID, owner, false); err != nil {
		t.Fatalf("owner Delete failed: %v", err)
	}

	if _, err := store.GetByID(ctx, created.ID); !apperr.IsNotFound(err) {
		t.Errorf("expected not-found after delete, got %v", err)
	}
}

func TestStore_GetByIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := companystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	owner := primitive.NewObjectID()
	a := fixtures.CreateCompany(ctx, "Batch A", owner)
	b := fixtures.CreateCompany(ctx, "Batch B", owner)

	got, err := store.GetByIDs(ctx, []primitive.ObjectID{a.ID, primitive.NewObjectID(), b.ID})
	if err != nil {
		t.Fatalf("GetByIDs failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 companies, got %d", len(got))
	}
}
