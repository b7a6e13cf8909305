package utils

import "strings"

// IsBlank reports whether s is empty or consists only of whitespace.
// Mandatory configuration fields are rejected when blank in this sense.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
