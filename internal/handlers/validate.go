package handlers

import (
	"html"
	"net/mail"
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// sanitizeInput trims whitespace, strips markup tags and escapes HTML
// entities, mirroring what the clients historically expect to be stored.
func sanitizeInput(input string) string {
	return html.EscapeString(tagPattern.ReplaceAllString(strings.TrimSpace(input), ""))
}

// isValidEmail reports whether the string is a plausible bare email address.
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// Reject display-name forms like "Ana <ana@x.com>".
	return addr.Address == email
}
