package validation

import "testing"

func TestValidateSearchQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
		ok    bool
	}{
		{name: "valid handle", query: "alice", ok: true},
		{name: "valid with space", query: "alice smith", ok: true},
		{name: "minimum length", query: "ab", ok: true},
		{name: "too short", query: "a", ok: false},
		{name: "whitespace only", query: "   ", ok: false},
		{name: "maximum length", query: "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwx", ok: true},
		{name: "too long", query: "abcdefghijklmnopqrstuvwxyzabcdefghijklmnopqrstuvwxy", ok: false},
		{name: "control character", query: "ali\x00ce", ok: false},
		{name: "newline", query: "ali\nce", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSearchQuery(tc.query)
			if tc.ok && err != nil {
				t.Fatalf("expected valid query, got error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected invalid query, got nil error")
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		ok       bool
	}{
		{name: "valid simple", username: "alice", ok: true},
		{name: "valid with dot", username: "alice.smith", ok: true},
		{name: "valid with underscore", username: "alice_smith", ok: true},
		{name: "valid with digits", username: "alice99", ok: true},
		{name: "too short", username: "a", ok: false},
		{name: "space", username: "alice smith", ok: false},
		{name: "symbol", username: "alice!", ok: false},
		{name: "empty", username: "", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateUsername(tc.username)
			if tc.ok && err != nil {
				t.Fatalf("expected valid username, got error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("expected invalid username, got nil error")
			}
		})
	}
}
