package lookups_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/seedscope/seedscope/internal/app/features/lookups"
	lookupstore "github.com/seedscope/seedscope/internal/app/store/lookups"
	"github.com/seedscope/seedscope/internal/testutil"
)

func TestList_UnknownTable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := lookups.NewHandler(db, zap.NewNop())

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/lookups/flavors", nil), "table", "flavors")
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestList_EmptyTableReturnsEmptyArray(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := lookups.NewHandler(db, zap.NewNop())

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/lookups/categories", nil), "table", "categories")
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	// An empty table serializes as [], never null.
	if !strings.Contains(rec.Body.String(), "[]") {
		t.Errorf("expected empty array in body, got %s", rec.Body.String())
	}
}

func TestListAndCreate_RoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := lookups.NewHandler(db, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	fixtures.CreateLookup(ctx, lookupstore.Sectors, "Renewables")
	fixtures.CreateLookup(ctx, lookupstore.Sectors, "Fisheries")

	req := testutil.WithChiURLParam(httptest.NewRequest("GET", "/lookups/sectors", nil), "table", "sectors")
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var got []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	// Tables come back sorted by folded name.
	if got[0].Name != "Fisheries" {
		t.Errorf("first entry: got %q, want %q", got[0].Name, "Fisheries")
	}
}
