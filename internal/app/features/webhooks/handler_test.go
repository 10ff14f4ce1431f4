package webhooks_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/seedscope/seedscope/internal/app/features/webhooks"
	userstore "github.com/seedscope/seedscope/internal/app/store/users"
	"github.com/seedscope/seedscope/internal/testutil"
)

const testSecret = "webhook-test-secret"

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func postEvent(h *webhooks.Handler, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/webhooks/users", bytes.NewReader(body))
	if signature != "" {
		req.Header.Set(webhooks.SignatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	h.UserEvent(rec, req)
	return rec
}

func TestUserEvent_RejectsBadSignature(t *testing.T) {
	// Signature checks never reach the store, so no database is needed.
	h := webhooks.NewHandler(nil, testSecret, zap.NewNop())
	body := []byte(`{"event":"user.created","data":{"id":"ext-1"}}`)

	tests := []struct {
		name      string
		signature string
	}{
		{"missing signature", ""},
		{"not hex", "zzzz"},
		{"wrong signature", sign("other-secret", body)},
		{"signature of different body", sign(testSecret, []byte("tampered"))},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := postEvent(h, body, tc.signature)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestUserEvent_EmptySecretRejectsAll(t *testing.T) {
	h := webhooks.NewHandler(nil, "", zap.NewNop())
	body := []byte(`{"event":"user.created","data":{"id":"ext-1"}}`)

	rec := postEvent(h, body, sign("", body))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestUserEvent_MalformedPayload(t *testing.T) {
	h := webhooks.NewHandler(nil, testSecret, zap.NewNop())
	body := []byte(`{not json`)

	rec := postEvent(h, body, sign(testSecret, body))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestUserEvent_UnknownEvent(t *testing.T) {
	h := webhooks.NewHandler(nil, testSecret, zap.NewNop())
	body := []byte(`{"event":"user.promoted","data":{"id":"ext-1"}}`)

	rec := postEvent(h, body, sign(testSecret, body))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestUserEvent_CreatedUpsertsUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	users := userstore.New(db)
	h := webhooks.NewHandler(users, testSecret, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	body, _ := json.Marshal(map[string]any{
		"event": "user.created",
		"data": map[string]string{
			"id":        "ext-42",
			"email":     "hooked@example.com",
			"full_name": "Hooked Person",
			"role":      "contributor",
		},
	})

	rec := postEvent(h, body, sign(testSecret, body))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	u, err := users.GetByEmail(ctx, "hooked@example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if u.ExternalID != "ext-42" {
		t.Errorf("ExternalID: got %q, want %q", u.ExternalID, "ext-42")
	}
	if u.FullName != "Hooked Person" {
		t.Errorf("FullName: got %q", u.FullName)
	}
}

func TestUserEvent_DeletedDeactivates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	users := userstore.New(db)
	h := webhooks.NewHandler(users, testSecret, zap.NewNop())
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := users.UpsertExternal(ctx, "ext-del", "del@example.com", "Del Person", "contributor"); err != nil {
		t.Fatalf("UpsertExternal failed: %v", err)
	}

	body, _ := json.Marshal(map[string]any{
		"event": "user.deleted",
		"data":  map[string]string{"id": "ext-del"},
	})

	rec := postEvent(h, body, sign(testSecret, body))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	u, err := users.GetByEmail(ctx, "del@example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if u.Status != "deleted" {
		t.Errorf("Status: got %q, want %q", u.Status, "deleted")
	}
}

func TestUserEvent_DeletedUnknownAccountAcknowledged(t *testing.T) {
	db := testutil.SetupTestDB(t)
	users := userstore.New(db)
	h := webhooks.NewHandler(users, testSecret, zap.NewNop())

	body, _ := json.Marshal(map[string]any{
		"event": "user.deleted",
		"data":  map[string]string{"id": "ext-never-seen"},
	})

	// Unknown accounts are acknowledged so the provider stops retrying.
	rec := postEvent(h, body, sign(testSecret, body))
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["status"] != "ignored" {
		t.Errorf("status field: got %q, want %q", resp["status"], "ignored")
	}
}
