package domain

import (
	"errors"
	"fmt"
)

// ============================================================================
// Domain Error Types
// ============================================================================

// DomainError represents a domain-specific error with a code and message
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// ============================================================================
// Common Domain Errors
// ============================================================================

var (
	// Auth Errors
	ErrInvalidInput = &DomainError{
		Code:    "INVALID_INPUT",
		Message: "invalid input",
	}
	ErrDuplicateEmail = &DomainError{
		Code:    "DUPLICATE_EMAIL",
		Message: "email is already registered",
	}
	// Absent user and wrong password share this value so the two cases
	// are indistinguishable to the caller
	ErrInvalidCredentials = &DomainError{
		Code:    "INVALID_CREDENTIALS",
		Message: "invalid email or password",
	}
	ErrUnauthorized = &DomainError{
		Code:    "UNAUTHORIZED",
		Message: "authentication required",
	}

	// Not Found Errors
	ErrUserNotFound = &DomainError{
		Code:    "USER_NOT_FOUND",
		Message: "user not found",
	}
	ErrTaskNotFound = &DomainError{
		Code:    "TASK_NOT_FOUND",
		Message: "task not found",
	}
	ErrNotificationNotFound = &DomainError{
		Code:    "NOTIFICATION_NOT_FOUND",
		Message: "notification not found",
	}

	// Infrastructure Errors
	ErrCredentialService = &DomainError{
		Code:    "CREDENTIAL_SERVICE_FAILED",
		Message: "authentication service error",
	}
	ErrDatabaseOperation = &DomainError{
		Code:    "DATABASE_OPERATION_FAILED",
		Message: "database operation failed",
	}
)

// ============================================================================
// Error Wrapping Helpers
// ============================================================================

// WrapInvalidInput wraps an error as an invalid input error for a field
func WrapInvalidInput(field string, cause error) error {
	return &DomainError{
		Code:    ErrInvalidInput.Code,
		Message: fmt.Sprintf("invalid %s", field),
		Cause:   cause,
	}
}

// WrapDuplicateEmail wraps an error as a duplicate email error
func WrapDuplicateEmail(cause error) error {
	return &DomainError{
		Code:    ErrDuplicateEmail.Code,
		Message: ErrDuplicateEmail.Message,
		Cause:   cause,
	}
}

// WrapUnauthorized wraps an error as an unauthorized error
func WrapUnauthorized(cause error) error {
	return &DomainError{
		Code:    ErrUnauthorized.Code,
		Message: ErrUnauthorized.Message,
		Cause:   cause,
	}
}

// WrapUserNotFound wraps an error as a user not found error
func WrapUserNotFound(userID string, cause error) error {
	return &DomainError{
		Code:    ErrUserNotFound.Code,
		Message: fmt.Sprintf("user not found: %s", userID),
		Cause:   cause,
	}
}

// WrapTaskNotFound wraps an error as a task not found error
func WrapTaskNotFound(taskID string, cause error) error {
	return &DomainError{
		Code:    ErrTaskNotFound.Code,
		Message: fmt.Sprintf("task not found: %s", taskID),
		Cause:   cause,
	}
}

// WrapNotificationNotFound wraps an error as a notification not found error
func WrapNotificationNotFound(notificationID string, cause error) error {
	return &DomainError{
		Code:    ErrNotificationNotFound.Code,
		Message: fmt.Sprintf("notification not found: %s", notificationID),
		Cause:   cause,
	}
}

// WrapCredentialService wraps an error as a credential service failure
func WrapCredentialService(cause error) error {
	return &DomainError{
		Code:    ErrCredentialService.Code,
		Message: ErrCredentialService.Message,
		Cause:   cause,
	}
}

// WrapDatabaseOperation wraps an error as a database operation failure
func WrapDatabaseOperation(operation string, cause error) error {
	return &DomainError{
		Code:    ErrDatabaseOperation.Code,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Cause:   cause,
	}
}

// ============================================================================
// Error Checking Helpers
// ============================================================================

// IsInvalidInputError checks if an error is an invalid input error
func IsInvalidInputError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == ErrInvalidInput.Code
	}
	return false
}

// IsDuplicateEmailError checks if an error is a duplicate email error
func IsDuplicateEmailError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == ErrDuplicateEmail.Code
	}
	return false
}

// IsInvalidCredentialsError checks if an error is an invalid credentials error
func IsInvalidCredentialsError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == ErrInvalidCredentials.Code
	}
	return false
}

// IsUnauthorizedError checks if an error is an unauthorized error
func IsUnauthorizedError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == ErrUnauthorized.Code
	}
	return false
}

// IsNotFoundError checks if an error is a not found error
func IsNotFoundError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == ErrUserNotFound.Code ||
			domainErr.Code == ErrTaskNotFound.Code ||
			domainErr.Code == ErrNotificationNotFound.Code
	}
	return false
}

// IsCredentialServiceError checks if an error is a credential service failure
func IsCredentialServiceError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == ErrCredentialService.Code
	}
	return false
}

// IsInfrastructureError checks if an error is an infrastructure error
func IsInfrastructureError(err error) bool {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code == ErrDatabaseOperation.Code ||
			domainErr.Code == ErrCredentialService.Code
	}
	return false
}
