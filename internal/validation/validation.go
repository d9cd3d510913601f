package validation

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"
)

const (
	// MinPasswordLength is the policy minimum for new passwords, in characters
	MinPasswordLength = 8
	// MaxPasswordLength matches the bcrypt input limit
	MaxPasswordLength = 72

	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
)

// emailRegex accepts the common mailbox@domain.tld shape; full RFC 5322
// parsing is deliberately out of scope
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// taskStatuses enumerates the allowed task status values
var taskStatuses = map[string]bool{
	"pending":     true,
	"in_progress": true,
	"completed":   true,
}

// ValidateEmail validates an email address (callers pass the normalized form)
func ValidateEmail(email string) error {
	if email == "" {
		return errors.New("email cannot be empty")
	}
	if len(email) > 254 {
		return errors.New("email must be 254 characters or less")
	}
	if !emailRegex.MatchString(email) {
		return errors.New("email format is invalid")
	}
	return nil
}

// ValidatePassword validates a password against the account policy.
// The minimum counts characters; the maximum counts bytes because bcrypt
// only hashes the first 72 bytes of its input.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Errorf("password must be %d bytes or less", MaxPasswordLength)
	}
	return nil
}

// ValidateTaskTitle validates a task title
func ValidateTaskTitle(title string) error {
	if len(title) < 1 {
		return errors.New("title cannot be empty")
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("title must be %d characters or less", MaxTitleLength)
	}
	return nil
}

// ValidateTaskDescription validates a task description
func ValidateTaskDescription(description string) error {
	if len(description) > MaxDescriptionLength {
		return fmt.Errorf("description must be %d characters or less", MaxDescriptionLength)
	}
	return nil
}

// ValidateTaskStatus validates a task status value
func ValidateTaskStatus(status string) error {
	if !taskStatuses[status] {
		return fmt.Errorf("status must be one of: pending, in_progress, completed")
	}
	return nil
}
