package ports

// Package ports defines interfaces (hexagonal ports) for identity-provider
// behavior. Implementations live in internal/adapters; orchestration in
// internal/service.

import (
	"context"

	domainauth "github.com/alkira/auth-gateway/internal/domain/auth"
)

// CreateUserInput groups parameters for account creation.
type CreateUserInput struct {
	Email       string
	Password    string
	DisplayName string
}

// MFAExchangeInput groups parameters for completing an out-of-band challenge.
type MFAExchangeInput struct {
	MFAToken string
	OOBCode  string
	OTP      string
}

// AssignRoleInput groups parameters for assigning a role to an account.
type AssignRoleInput struct {
	RoleID          string
	UserID          string
	ManagementToken string
}

// EnrollMFAInput groups parameters for enrolling an email MFA method.
type EnrollMFAInput struct {
	UserID          string
	Email           string
	ManagementToken string
}

// PatchUserNameInput groups parameters for updating an account's display name.
type PatchUserNameInput struct {
	UserID          string
	DisplayName     string
	ManagementToken string
}

// IdentityProvider issues individual HTTP calls against the external identity
// provider. Each call is a single round trip: no retries, no shared state.
type IdentityProvider interface {
	// ExchangePassword performs the password-realm grant. A demand for MFA is
	// reported through the result, not as an error.
	ExchangePassword(ctx context.Context, email, password string) (domainauth.PasswordGrantResult, error)

	// RequestMFAChallenge creates a fresh out-of-band challenge for the token.
	RequestMFAChallenge(ctx context.Context, mfaToken string) (domainauth.MFAChallenge, error)

	// ExchangeMFAOOB completes a challenge and returns session tokens.
	ExchangeMFAOOB(ctx context.Context, in MFAExchangeInput) (domainauth.SessionTokens, error)

	// ManagementToken obtains a fresh management-API bearer token via the
	// client-credentials grant. Tokens are never cached between runs.
	ManagementToken(ctx context.Context) (string, error)

	// FindUsersByEmail lists existing accounts for the address (possibly empty).
	FindUsersByEmail(ctx context.Context, email, managementToken string) ([]domainauth.User, error)

	// CreateUser creates an account via the database connection and returns
	// the provider-prefixed user ID.
	CreateUser(ctx context.Context, in CreateUserInput) (string, error)

	// ListRoles returns the provider's role records.
	ListRoles(ctx context.Context, managementToken string) ([]domainauth.Role, error)

	// AssignRole attaches a role to an account.
	AssignRole(ctx context.Context, in AssignRoleInput) error

	// EnrollMFAEmail registers an email-based MFA method for the account.
	EnrollMFAEmail(ctx context.Context, in EnrollMFAInput) error

	// DeleteUser removes an account. Used as the compensation step.
	DeleteUser(ctx context.Context, userID, managementToken string) error

	// RequestPasswordReset triggers the provider's password-reset email.
	RequestPasswordReset(ctx context.Context, email string) error

	// PatchUserName updates an account's display name.
	PatchUserName(ctx context.Context, in PatchUserNameInput) error

	// UserInfo resolves the caller's identity from an access token.
	UserInfo(ctx context.Context, accessToken string) (domainauth.UserInfo, error)
}
