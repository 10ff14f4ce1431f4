package inputval

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		// Valid emails
		{"user@example.com", true},
		{"user.name@example.com", true},
		{"user+tag@example.com", true},
		{"user@subdomain.example.com", true},
		{"user123@example.co.uk", true},
		{"a@b.co", true},
		{"user@localhost", true},   // single-label domains allowed
		{"admin@mailserver", true}, // useful for dev/test environments

		// Invalid emails - empty/whitespace
		{"", false},
		{"   ", false},

		// Invalid emails - missing parts
		{"user", false},
		{"user@", false},
		{"@example.com", false},

		// Invalid emails - bad dot placement
		{".user@example.com", false},
		{"user.@example.com", false},
		{"user..name@example.com", false},
		{"user@.example.com", false},
		{"user@example..com", false},

		// Invalid emails - display name format
		{"User Name <user@example.com>", false},

		// Invalid emails - whitespace inside
		{"user @example.com", false},
		{"user@ example.com", false},
		{"user@exam ple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got := IsValidEmail(tt.email)
			if got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestResult(t *testing.T) {
	var r Result
	if r.HasErrors() {
		t.Fatal("fresh Result should have no errors")
	}

	r.Require("", "Organization name")
	r.MaxLen("abcdef", 3, "Location")
	r.Email("not-an-email", "Contact email")
	r.NonNegative(-1, "Annual revenue")

	if !r.HasErrors() {
		t.Fatal("expected errors")
	}
	if got := len(r.All()); got != 4 {
		t.Errorf("expected 4 errors, got %d: %v", got, r.All())
	}
	if r.First() != "Organization name is required" {
		t.Errorf("First() = %q", r.First())
	}
}

func TestResult_CleanInput(t *testing.T) {
	var r Result
	r.Require("Acme", "Organization name")
	r.MaxLen("Acme", 200, "Organization name")
	r.Email("founder@acme.io", "Contact email")
	r.Email("", "Contact email") // blank email is allowed
	r.NonNegative(0, "Annual revenue")

	if r.HasErrors() {
		t.Errorf("unexpected errors: %v", r.All())
	}
}
