package utils

import "strings"

// NormalizeEmail lowercases and trims an email; it is the sole guest identity
// key, so every lookup and every dedupe match goes through here.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
