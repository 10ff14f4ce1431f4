// internal/app/system/inputval/inputval.go

// Package inputval validates form/JSON input before it reaches the
// stores. Validation failures surface as apperr.ErrValidation so
// handlers can map them to 422 responses.
package inputval

import (
	"fmt"
	"strings"
)

// Result collects field-level validation errors.
type Result struct {
	errs []string
}

// HasErrors reports whether any check failed.
func (r *Result) HasErrors() bool { return len(r.errs) > 0 }

// First returns the first error message, or "".
func (r *Result) First() string {
	if len(r.errs) == 0 {
		return ""
	}
	return r.errs[0]
}

// All returns every error message.
func (r *Result) All() []string { return r.errs }

// Require records an error when value is blank.
func (r *Result) Require(value, label string) {
	if strings.TrimSpace(value) == "" {
		r.errs = append(r.errs, label+" is required")
	}
}

// MaxLen records an error when value exceeds n characters.
func (r *Result) MaxLen(value string, n int, label string) {
	if len(value) > n {
		r.errs = append(r.errs, fmt.Sprintf("%s must be at most %d characters", label, n))
	}
}

// Email records an error when value is present but not a valid
// address.
func (r *Result) Email(value, label string) {
	if value != "" && !IsValidEmail(value) {
		r.errs = append(r.errs, label+" is not a valid email address")
	}
}

// NonNegative records an error when v is below zero.
func (r *Result) NonNegative(v float64, label string) {
	if v < 0 {
		r.errs = append(r.errs, label+" must not be negative")
	}
}

// IsValidEmail reports whether s looks like a plain RFC 5322 addr-spec
// (local@domain, no display name). Single-label domains are accepted
// for dev/test environments.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	local, domain := s[:at], s[at+1:]
	if !validDotAtom(local) || !validDotAtom(domain) {
		return false
	}
	return true
}

// validDotAtom checks a dot-separated atom sequence: no leading,
// trailing, or consecutive dots, no spaces or angle brackets.
func validDotAtom(s string) bool {
	if s == "" || strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") {
		return false
	}
	if strings.Contains(s, "..") {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case strings.ContainsRune("!#$%&'*+-/=?^_`{|}~.", r):
		default:
			return false
		}
	}
	return true
}
