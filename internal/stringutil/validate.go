// Package stringutil provides the string-format checks behind the email, url,
// uuid, date, date-time and time refinements.
package stringutil

import (
	"net/url"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// canonicalUUIDLen is the length of the 8-4-4-4-12 textual form.
const canonicalUUIDLen = 36

// IsValidEmail checks if s is a valid email address.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidURL checks if s is an absolute URL with a scheme.
func IsValidURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}

// IsValidUUID checks if s is a UUID in its canonical hyphenated form.
// uuid.Parse also accepts urn and braced forms, which are rejected here.
func IsValidUUID(s string) bool {
	if len(s) != canonicalUUIDLen {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// IsValidDate checks if s is a calendar date (YYYY-MM-DD).
func IsValidDate(s string) bool {
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// IsValidDateTime checks if s is an RFC 3339 date-time.
func IsValidDateTime(s string) bool {
	_, err := time.Parse(time.RFC3339Nano, s)
	return err == nil
}

// IsValidTime checks if s is a time of day (HH:MM:SS with optional fraction).
func IsValidTime(s string) bool {
	_, err := time.Parse(time.TimeOnly, s)
	return err == nil
}
