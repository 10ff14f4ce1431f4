package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func newManager(t *testing.T) *SessionManager {
	t.Helper()
	sm, err := NewSessionManager("test-key-0123456789", "seedscope-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return sm
}

func TestNewSessionManager_EmptyKey(t *testing.T) {
	if _, err := NewSessionManager("", "s", "", false, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty session key")
	}
}

func TestSignInThenLoad(t *testing.T) {
	sm := newManager(t)

	// Sign in and capture the cookie.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/callback", nil)
	err := sm.SignIn(rec, req, SessionUser{ID: "u1", Name: "Ada", Email: "ada@example.com", Role: "contributor"})
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	// Replay the cookie through the middleware.
	var got *SessionUser
	handler := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = CurrentUser(r)
	}))
	req2 := httptest.NewRequest("GET", "/companies", nil)
	for _, c := range cookies {
		req2.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req2)

	if got == nil {
		t.Fatal("expected user in context after sign-in")
	}
	if got.ID != "u1" || got.Role != "contributor" {
		t.Errorf("loaded user = %+v", got)
	}
}

func TestRequireSignedIn_Anonymous(t *testing.T) {
	sm := newManager(t)
	handler := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run for anonymous request")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/companies", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
}

func TestRequireRole(t *testing.T) {
	sm := newManager(t)
	ran := false
	handler := sm.RequireRole("admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ran = true
	}))

	// Wrong role → 403.
	rec := httptest.NewRecorder()
	req := WithTestUser(httptest.NewRequest("GET", "/grants", nil), &SessionUser{ID: "u1", Role: "contributor"})
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("wrong role: status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	if ran {
		t.Error("handler ran despite wrong role")
	}

	// Matching role (case-insensitive) → pass through.
	rec = httptest.NewRecorder()
	req = WithTestUser(httptest.NewRequest("GET", "/grants", nil), &SessionUser{ID: "u2", Role: "Admin"})
	handler.ServeHTTP(rec, req)
	if !ran {
		t.Error("handler did not run for admin")
	}
}
