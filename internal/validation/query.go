// Package validation holds input validation shared by handlers.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]{2,30}$`)

// ValidateSearchQuery checks a user search term before it reaches the
// database. Queries are matched against usernames and display names, so the
// charset is looser than usernames but control characters are rejected.
func ValidateSearchQuery(query string) error {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return fmt.Errorf("search query must be at least 2 characters")
	}
	if len(query) > 50 {
		return fmt.Errorf("search query must be at most 50 characters")
	}
	for _, r := range query {
		if unicode.IsControl(r) {
			return fmt.Errorf("search query contains invalid characters")
		}
	}
	return nil
}

// ValidateUsername validates a username handle format.
func ValidateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return fmt.Errorf("username must be 2-30 characters and contain only letters, numbers, dots, hyphens, and underscores")
	}
	return nil
}
