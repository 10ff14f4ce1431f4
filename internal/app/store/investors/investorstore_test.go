package investorstore_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	investorstore "github.com/seedscope/seedscope/internal/app/store/investors"
	"github.com/seedscope/seedscope/internal/app/system/apperr"
	"github.com/seedscope/seedscope/internal/app/system/paging"
	"github.com/seedscope/seedscope/internal/domain/models"
	"github.com/seedscope/seedscope/internal/testutil"
)

func individual(first, last string) models.Investor {
	return models.Investor{
		Type: models.InvestorTypeIndividual,
		IndividualDetails: &models.IndividualDetails{
			FirstName: first,
			LastName:  last,
		},
	}
}

func institution(name string) models.Investor {
	return models.Investor{
		Type: models.InvestorTypeInstitution,
		InstitutionDetails: &models.InstitutionDetails{
			OrganizationName: name,
		},
	}
}

func TestStore_Create_Individual(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := investorstore.New(db, false)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, individual("Amina", "Okafor"), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Name != "Amina Okafor" {
		t.Errorf("Name: got %q, want %q", created.Name, "Amina Okafor")
	}
	if created.NameCI == "" {
		t.Error("expected NameCI to be set")
	}

	// The typed document lands in the individual collection.
	n, err := db.Collection(investorstore.Individuals).CountDocuments(ctx, bson.M{"_id": created.ID})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 document in %s, got %d", investorstore.Individuals, n)
	}

	// A slim mirror lands in the base collection for discovery.
	n, err = db.Collection(investorstore.Base).CountDocuments(ctx, bson.M{"_id": created.ID})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 mirror document in %s, got %d", investorstore.Base, n)
	}
}

func TestStore_Create_MissingDetailBlock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := investorstore.New(db, false)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Individual type with only an institution block is rejected.
	inv := models.Investor{
		Type:               models.InvestorTypeIndividual,
		InstitutionDetails: &models.InstitutionDetails{OrganizationName: "Wrong Block"},
	}
	_, err := store.Create(ctx, inv, primitive.NewObjectID())
	if !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestStore_Create_UnknownType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := investorstore.New(db, false)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.Investor{Type: "Fund"}, primitive.NewObjectID())
	if err == nil {
		t.Fatal("expected error for unknown investor type")
	}
}

func TestStore_GetByID_ProbesBothCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := investorstore.New(db, false)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	ind, err := store.Create(ctx, individual("Jonas", "Berg"), owner)
	if err != nil {
		t.Fatalf("Create individual failed: %v", err)
	}
	inst, err := store.Create(ctx, institution("Horizon Capital"), owner)
	if err != nil {
		t.Fatalf("Create institution failed: %v", err)
	}

	// Both sides of the union resolve through the same call.
	got, err := store.GetByID(ctx, ind.ID)
	if err != nil {
		t.Fatalf("GetByID individual failed: %v", err)
	}
	if got.Type != models.InvestorTypeIndividual {
		t.Errorf("Type: got %q, want %q", got.Type, models.InvestorTypeIndividual)
	}

	got, err = store.GetByID(ctx, inst.ID)
	if err != nil {
		t.Fatalf("GetByID institution failed: %v", err)
	}
	if got.Type != models.InvestorTypeInstitution {
		t.Errorf("Type: got %q, want %q", got.Type, models.InvestorTypeInstitution)
	}

	// NotFound only after both collections miss.
	_, err = store.GetByID(ctx, primitive.NewObjectID())
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestStore_ListAll_LegacyConcat(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := investorstore.New(db, false)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	for i := 0; i < 4; i++ {
		if _, err := store.Create(ctx, individual("Ind", fmt.Sprintf("Number%d", i)), owner); err != nil {
			t.Fatalf("Create individual failed: %v", err)
		}
		if _, err := store.Create(ctx, institution(fmt.Sprintf("Inst Number%d", i)), owner); err != nil {
			t.Fatalf("Create institution failed: %v", err)
		}
	}

	got, totalPages, err := store.ListAll(ctx, paging.Params{Page: 1, Limit: 3}, "")
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}

	// Legacy paging concatenates a page from each collection, so a
	// full page holds up to twice the limit.
	if len(got) != 6 {
		t.Errorf("expected 6 investors (3 from each collection), got %d", len(got))
	}

	// Total pages reflect the combined count of both collections.
	if totalPages != 3 {
		t.Errorf("totalPages: got %d, want 3", totalPages)
	}

	// Individuals come first within the page.
	if got[0].Type != models.InvestorTypeIndividual {
		t.Errorf("first entry: got type %q, want %q", got[0].Type, models.InvestorTypeIndividual)
	}
	if got[len(got)-1].Type != models.InvestorTypeInstitution {
		t.Errorf("last entry: got type %q, want %q", got[len(got)-1].Type, models.InvestorTypeInstitution)
	}
}

func TestStore_ListAll_GlobalPaging(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := investorstore.New(db, true)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	for i := 0; i < 4; i++ {
		if _, err := store.Create(ctx, individual("Ind", fmt.Sprintf("Number%d", i)), owner); err != nil {
			t.Fatalf("Create individual failed: %v", err)
		}
		// created_at is stored at millisecond precision; spacing the
		// inserts keeps the merged ordering deterministic.
		time.Sleep(2 * time.Millisecond)
		if _, err := store.Create(ctx, institution(fmt.Sprintf("Inst Number%d", i)), owner); err != nil {
			t.Fatalf("Create institution failed: %v", err)
		}
		time.Sleep(2 * time.Millisecond)
	}

	page1, totalPages, err := store.ListAll(ctx, paging.Params{Page: 1, Limit: 3}, "")
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}

	// Global paging never exceeds the limit.
	if len(page1) != 3 {
		t.Errorf("expected 3 investors, got %d", len(page1))
	}
	if totalPages != 3 {
		t.Errorf("totalPages: got %d, want 3", totalPages)
	}

	// The merged page is ordered newest first across both collections.
	for i := 1; i < len(page1); i++ {
		if page1[i].CreatedAt.After(page1[i-1].CreatedAt) {
			t.Errorf("page not ordered newest first at index %d", i)
		}
	}

	// Pages never overlap.
	page2, _, err := store.ListAll(ctx, paging.Params{Page: 2, Limit: 3}, "")
	if err != nil {
		t.Fatalf("ListAll page 2 failed: %v", err)
	}
	seen := make(map[primitive.ObjectID]bool, len(page1))
	for _, inv := range page1 {
		seen[inv.ID] = true
	}
	for _, inv := range page2 {
		if seen[inv.ID] {
			t.Errorf("investor %s appears on both pages", inv.ID.Hex())
		}
	}

	// Past the end of the merged sequence the page is empty.
	past, _, err := store.ListAll(ctx, paging.Params{Page: 5, Limit: 3}, "")
	if err != nil {
		t.Fatalf("ListAll past end failed: %v", err)
	}
	if len(past) != 0 {
		t.Errorf("expected empty page past the end, got %d", len(past))
	}
}

func TestStore_ListByType(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := investorstore.New(db, false)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	if _, err := store.Create(ctx, individual("Solo", "Individual"), owner); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := store.Create(ctx, institution("Solo Institution"), owner); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, _, err := store.ListByType(ctx, models.InvestorTypeIndividual, paging.Params{Page: 1, Limit: 10}, "")
	if err != nil {
		t.Fatalf("ListByType failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 individual, got %d", len(got))
	}
	if got[0].Type != models.InvestorTypeIndividual {
		t.Errorf("Type: got %q", got[0].Type)
	}
}

func TestStore_Update_WrongDetailBlock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := investorstore.New(db, false)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	created, err := store.Create(ctx, individual("Ines", "Duarte"), owner)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// An institution block on an individual investor is rejected; the
	// type tag is immutable.
	_, err = store.Update(ctx, created.ID, owner, false, investorstore.InvestorUpdate{
		InstitutionDetails: &models.InstitutionDetails{OrganizationName: "Not Allowed"},
	})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestStore_Update_Ownership(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := investorstore.New(db, false)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	created, err := store.Create(ctx, institution("Owned Fund"), owner)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	email := "fund@example.com"
	_, err = store.Update(ctx, created.ID, primitive.NewObjectID(), false, investorstore.InvestorUpdate{Email: &email})
	if !apperr.IsUnauthorized(err) {
		t.Errorf("expected unauthorized error, got %v", err)
	}

	updated, err := store.Update(ctx, created.ID, owner, false, investorstore.InvestorUpdate{Email: &email})
	if err != nil {
		t.Fatalf("owner Update failed: %v", err)
	}
	if updated.Email != email {
		t.Errorf("Email: got %q, want %q", updated.Email, email)
	}
}

func TestStore_Delete_RemovesMirror(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := investorstore.New(db, false)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := primitive.NewObjectID()
	created, err := store.Create(ctx, individual("Gone", "Soon"), owner)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.Delete(ctx, created.ID, owner, false); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := store.GetByID(ctx, created.ID); !apperr.IsNotFound(err) {
		t.Errorf("expected not-found after delete, got %v", err)
	}

	n, err := db.Collection(investorstore.Base).CountDocuments(ctx, bson.M{"_id": created.ID})
	if err != nil {
		t.Fatalf("CountDocuments failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected mirror document to be removed, found %d", n)
	}
}
