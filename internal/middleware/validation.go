package middleware

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field length limits matching database schema constraints.
const (
	MinUsernameLen = 3
	MaxUsernameLen = 32
	MaxEmailLen    = 254
	MinPasswordLen = 6
	MaxPasswordLen = 128
	MaxCategoryLen = 50
)

var (
	// usernameRe matches usernames: alphanumeric, dash, underscore.
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	// emailRe is a pragmatic shape check, not an RFC 5322 validator.
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// categoryRe matches content categories: letters, digits, space, dash, underscore.
	categoryRe = regexp.MustCompile(`^[A-Za-z0-9 _-]+$`)
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateUsername checks that a username is well-formed.
func ValidateUsername(username string) (string, string) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", "username is required"
	}
	if len(username) < MinUsernameLen || len(username) > MaxUsernameLen {
		return "", "username must be 3-32 characters"
	}
	if !usernameRe.MatchString(username) {
		return "", "username contains invalid characters"
	}
	return username, ""
}

// ValidateEmail checks that an email address is plausibly shaped.
func ValidateEmail(email string) (string, string) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return "", "email is required"
	}
	if len(email) > MaxEmailLen {
		return "", "email must be at most 254 characters"
	}
	if !emailRe.MatchString(email) {
		return "", "email is not a valid address"
	}
	return email, ""
}

// ValidatePassword checks password length bounds. The value itself is never
// logged or echoed back.
func ValidatePassword(password string) string {
	if password == "" {
		return "password is required"
	}
	if len(password) < MinPasswordLen || len(password) > MaxPasswordLen {
		return "password must be 6-128 characters"
	}
	return ""
}

// ValidateCategory checks that a content category is well-formed.
func ValidateCategory(category string) (string, string) {
	category = strings.TrimSpace(category)
	if category == "" {
		return "", "category is required"
	}
	if len(category) > MaxCategoryLen {
		return "", "category must be at most 50 characters"
	}
	if !categoryRe.MatchString(category) {
		return "", "category contains invalid characters"
	}
	return category, ""
}

// ParseID parses a positive integer entity id from a path parameter.
func ParseID(raw string) (int, string) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, "id must be a positive integer"
	}
	return id, ""
}
