// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips dangerous markup from user-supplied
// rich-text fields (company and investor descriptions, grant
// eligibility text) before they are stored.
package htmlsanitize

import (
	"github.com/microcosm-cc/bluemonday"
)

// policy allows basic formatting (bold, italics, lists, links) and
// strips scripts, event handlers, and javascript: URLs.
var policy = bluemonday.UGCPolicy()

// Sanitize returns s with unsafe HTML removed. Plain text passes
// through unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// StrictPolicy strips all HTML, leaving text content only. Used for
// single-line fields like names and titles.
var strict = bluemonday.StrictPolicy()

// Text returns s with every HTML tag removed.
func Text(s string) string {
	if s == "" {
		return ""
	}
	return strict.Sanitize(s)
}
