package queries_test

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/seedscope/seedscope/internal/app/store/queries"
	"github.com/seedscope/seedscope/internal/app/system/apperr"
	"github.com/seedscope/seedscope/internal/app/system/paging"
	"github.com/seedscope/seedscope/internal/testutil"
)

func TestRelatedCompanies(t *testing.T) {
	db := testutil.SetupTestDB(t)
	finder := queries.NewRelatedFinder(db.Collection("companies"), db.Collection("investors"))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	owner := primitive.NewObjectID()
	catA := primitive.NewObjectID()
	catB := primitive.NewObjectID()
	catC := primitive.NewObjectID()

	root := fixtures.CreateCompany(ctx, "Root Co", owner, catA, catB)
	sharesA := fixtures.CreateCompany(ctx, "Shares A", owner, catA)
	sharesB := fixtures.CreateCompany(ctx, "Shares B", owner, catB, catC)
	fixtures.CreateCompany(ctx, "Unrelated", owner, catC)

	got, totalPages, err := finder.RelatedCompanies(ctx, root.ID, paging.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("RelatedCompanies failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 related companies, got %d", len(got))
	}
	if totalPages != 1 {
		t.Errorf("totalPages: got %d, want 1", totalPages)
	}

	found := map[primitive.ObjectID]bool{}
	for _, co := range got {
		// The root never appears in its own related list.
		if co.ID == root.ID {
			t.Error("related list contains the root company")
		}
		found[co.ID] = true
	}
	if !found[sharesA.ID] || !found[sharesB.ID] {
		t.Errorf("expected %s and %s in related list", sharesA.ID.Hex(), sharesB.ID.Hex())
	}
}

func TestRelatedCompanies_NoCategories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	finder := queries.NewRelatedFinder(db.Collection("companies"), db.Collection("investors"))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	owner := primitive.NewObjectID()
	root := fixtures.CreateCompany(ctx, "Uncategorized", owner)
	fixtures.CreateCompany(ctx, "Other", owner, primitive.NewObjectID())

	// No categories means nothing can intersect: an empty page and
	// zero pages, not an error.
	got, totalPages, err := finder.RelatedCompanies(ctx, root.ID, paging.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("RelatedCompanies failed: %v", err)
	}
	if got == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no related companies, got %d", len(got))
	}
	if totalPages != 0 {
		t.Errorf("totalPages: got %d, want 0", totalPages)
	}
}

func TestRelatedCompanies_RootMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	finder := queries.NewRelatedFinder(db.Collection("companies"), db.Collection("investors"))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, _, err := finder.RelatedCompanies(ctx, primitive.NewObjectID(), paging.Params{Page: 1, Limit: 10})
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestRelatedInvestors_AcrossBothTypes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	finder := queries.NewRelatedFinder(db.Collection("companies"), db.Collection("investors"))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	owner := primitive.NewObjectID()
	cat := primitive.NewObjectID()

	root := fixtures.CreateIndividualInvestor(ctx, "Root", "Investor", owner, cat)
	ind := fixtures.CreateIndividualInvestor(ctx, "Related", "Individual", owner, cat)
	inst := fixtures.CreateInstitutionInvestor(ctx, "Related Institution", owner, cat)
	fixtures.CreateInstitutionInvestor(ctx, "Unrelated Institution", owner, primitive.NewObjectID())

	got, _, err := finder.RelatedInvestors(ctx, root.ID, paging.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("RelatedInvestors failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 related investors, got %d", len(got))
	}

	found := map[primitive.ObjectID]bool{}
	for _, inv := range got {
		if inv.ID == root.ID {
			t.Error("related list contains the root investor")
		}
		found[inv.ID] = true
	}
	// The base collection spans both physical collections, so the
	// related set mixes individuals and institutions.
	if !found[ind.ID] || !found[inst.ID] {
		t.Errorf("expected both investor types in related list")
	}
}

func TestInvestorsForCompany(t *testing.T) {
	db := testutil.SetupTestDB(t)
	finder := queries.NewRelatedFinder(db.Collection("companies"), db.Collection("investors"))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	owner := primitive.NewObjectID()
	cat := primitive.NewObjectID()

	co := fixtures.CreateCompany(ctx, "Seeking Funding", owner, cat)
	match := fixtures.CreateInstitutionInvestor(ctx, "Matching Fund", owner, cat)
	fixtures.CreateInstitutionInvestor(ctx, "Other Fund", owner, primitive.NewObjectID())

	got, totalPages, err := finder.InvestorsForCompany(ctx, co.ID, paging.Params{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("InvestorsForCompany failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 matching investor, got %d", len(got))
	}
	if got[0].ID != match.ID {
		t.Errorf("investor: got %s, want %s", got[0].ID.Hex(), match.ID.Hex())
	}
	if totalPages != 1 {
		t.Errorf("totalPages: got %d, want 1", totalPages)
	}
}

func TestRelatedCompanies_Pagination(t *testing.T) {
	db := testutil.SetupTestDB(t)
	finder := queries.NewRelatedFinder(db.Collection("companies"), db.Collection("investors"))
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	owner := primitive.NewObjectID()
	cat := primitive.NewObjectID()

	root := fixtures.CreateCompany(ctx, "Paged Root", owner, cat)
	for i := 0; i < 5; i++ {
		fixtures.CreateCompany(ctx, "Related", owner, cat)
	}

	got, totalPages, err := finder.RelatedCompanies(ctx, root.ID, paging.Params{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("RelatedCompanies failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected 2 companies on page, got %d", len(got))
	}
	// 5 related at limit 2 rounds up to 3 pages; the root is excluded
	// from the count.
	if totalPages != 3 {
		t.Errorf("totalPages: got %d, want 3", totalPages)
	}
}
