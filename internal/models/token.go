// ABOUTME: Boolean coercion for user-supplied flag tokens.
// ABOUTME: Accepts 1, true and yes in any case; everything else is false.
package models

import "strings"

// ParseBool reports whether s is one of the accepted truthy tokens.
// Input is trimmed and lowercased first. A bare "T" is not accepted.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
