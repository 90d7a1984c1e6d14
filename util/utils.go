package util

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

func ValidEmail(email string) error {
	if email == "" {
		return fmt.Errorf("invalid email address")
	}
	_, err := mail.ParseAddress(email)
	return err
}

// NormalizeEmail lowercases and trims an email for storage.
// Lookups use the submitted value as-is.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GenerateFileKey builds the object key for an uploaded image,
// a timestamp plus the file extension.
func GenerateFileKey(extension string) string {
	return fmt.Sprintf("%d.%s", time.Now().UnixNano(), extension)
}
