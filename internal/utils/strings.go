package utils

import "strings"

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// Canonical upper-cases and trims an identifier or password before it is
// compared or transmitted. User IDs and passwords are stored upper-case.
func Canonical(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
