package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeValidation indicates a missing or malformed required field.
	// Validation failures are always local checks; no provider call is made.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeInvalidCredentials indicates the provider rejected the credentials.
	ErrCodeInvalidCredentials ErrorCode = "invalid_credentials"
	// ErrCodeDuplicateAccount indicates an account already exists for the email.
	ErrCodeDuplicateAccount ErrorCode = "duplicate_account"
	// ErrCodeInvalidRole indicates the requested role matched no provider role.
	ErrCodeInvalidRole ErrorCode = "invalid_role"
	// ErrCodeRoleAssignment indicates the provider refused the role assignment.
	ErrCodeRoleAssignment ErrorCode = "role_assignment_failed"
	// ErrCodeMFAEnrollment indicates the provider refused the MFA enrollment.
	ErrCodeMFAEnrollment ErrorCode = "mfa_enrollment_failed"
	// ErrCodeMFAVerification indicates an out-of-band challenge failed to verify.
	ErrCodeMFAVerification ErrorCode = "mfa_verification_failed"
	// ErrCodeUnauthorized indicates a missing or undecodable bearer token.
	ErrCodeUnauthorized ErrorCode = "unauthorized"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeServerError indicates an unexpected provider response or transport failure.
	ErrCodeServerError ErrorCode = "server_error"
)

// AppError represents a structured application error with a code, message, and
// optional cause. It supports error wrapping and unwrapping for use with
// errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is the user-facing error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates an AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return New(ErrCodeValidation, message)
}

// InvalidCredentials creates a new InvalidCredentials error.
func InvalidCredentials(message string) *AppError {
	return New(ErrCodeInvalidCredentials, message)
}

// DuplicateAccount creates a new DuplicateAccount error.
func DuplicateAccount(message string) *AppError {
	return New(ErrCodeDuplicateAccount, message)
}

// InvalidRole creates a new InvalidRole error.
func InvalidRole(message string) *AppError {
	return New(ErrCodeInvalidRole, message)
}

// Unauthorized creates a new Unauthorized error.
func Unauthorized(message string) *AppError {
	return New(ErrCodeUnauthorized, message)
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return New(ErrCodeNotFound, message)
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsDuplicateAccount checks if an error is a DuplicateAccount error.
func IsDuplicateAccount(err error) bool {
	return isCode(err, ErrCodeDuplicateAccount)
}

// IsInvalidRole checks if an error is an InvalidRole error.
func IsInvalidRole(err error) bool {
	return isCode(err, ErrCodeInvalidRole)
}

// IsUnauthorized checks if an error is an Unauthorized error.
func IsUnauthorized(err error) bool {
	return isCode(err, ErrCodeUnauthorized)
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	return isCode(err, ErrCodeNotFound)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}
