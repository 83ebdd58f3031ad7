package errors

import (
	"errors"
	"fmt"
)

// ProviderError is the structured error payload returned by the identity
// provider. Adapters construct it from provider responses; services translate
// it once, through Translate, so the same provider error yields the same
// user-facing message on every endpoint.
type ProviderError struct {
	// Code is the provider's machine-readable error code ("error" field).
	Code string
	// Description is the provider's human-readable description.
	Description string
	// Status is the HTTP status of the provider response.
	Status int
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("provider error %q: %s", e.Code, e.Description)
	}
	return fmt.Sprintf("provider error %q", e.Code)
}

// AsProvider extracts a ProviderError from an error chain.
func AsProvider(err error) (*ProviderError, bool) {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// Translate maps a provider error to the stable set of user-facing messages.
func Translate(err error) string {
	pe, ok := AsProvider(err)
	if !ok || pe.Code == "" && pe.Description == "" {
		return "Authentication failed"
	}
	switch pe.Code {
	case "invalid_grant":
		return "Invalid email or password"
	case "mfa_required":
		return "MFA required"
	default:
		if pe.Description != "" {
			return pe.Description
		}
		if pe.Code != "" {
			return pe.Code
		}
		return "Authentication failed"
	}
}
