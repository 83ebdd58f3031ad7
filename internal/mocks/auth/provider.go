package auth

// Package auth contains a simple hand-written test double for the
// identity-provider port. It is lightweight and suitable for unit tests
// without codegen.

import (
	"context"

	domainauth "github.com/alkira/auth-gateway/internal/domain/auth"
	"github.com/alkira/auth-gateway/internal/ports"
)

// Ensure compile-time conformance to ports.
var _ ports.IdentityProvider = (*ProviderMock)(nil)

// ProviderMock simulates the identity provider for tests with deterministic
// defaults. Set a Func field to override a single call; unset fields answer
// from the Default* values.
type ProviderMock struct {
	ExchangePasswordFunc     func(ctx context.Context, email, password string) (domainauth.PasswordGrantResult, error)
	RequestMFAChallengeFunc  func(ctx context.Context, mfaToken string) (domainauth.MFAChallenge, error)
	ExchangeMFAOOBFunc       func(ctx context.Context, in ports.MFAExchangeInput) (domainauth.SessionTokens, error)
	ManagementTokenFunc      func(ctx context.Context) (string, error)
	FindUsersByEmailFunc     func(ctx context.Context, email, managementToken string) ([]domainauth.User, error)
	CreateUserFunc           func(ctx context.Context, in ports.CreateUserInput) (string, error)
	ListRolesFunc            func(ctx context.Context, managementToken string) ([]domainauth.Role, error)
	AssignRoleFunc           func(ctx context.Context, in ports.AssignRoleInput) error
	EnrollMFAEmailFunc       func(ctx context.Context, in ports.EnrollMFAInput) error
	DeleteUserFunc           func(ctx context.Context, userID, managementToken string) error
	RequestPasswordResetFunc func(ctx context.Context, email string) error
	PatchUserNameFunc        func(ctx context.Context, in ports.PatchUserNameInput) error
	UserInfoFunc             func(ctx context.Context, accessToken string) (domainauth.UserInfo, error)

	// Deterministic values for predictable testing
	DefaultTokens    domainauth.SessionTokens
	DefaultChallenge domainauth.MFAChallenge
	DefaultUserInfo  domainauth.UserInfo
	DefaultRoles     []domainauth.Role
	DefaultMgmtToken string
	DefaultUserID    string
}

// NewProviderMock creates a ProviderMock with sensible defaults.
func NewProviderMock() *ProviderMock {
	return &ProviderMock{
		DefaultTokens: domainauth.SessionTokens{
			IDToken:     "mock-id-token",
			AccessToken: "mock-access-token",
			ExpiresIn:   86400,
			TokenType:   "Bearer",
		},
		DefaultChallenge: domainauth.MFAChallenge{
			MFAToken:      "mock-mfa-token",
			OOBCode:       "mock-oob-code",
			ChallengeType: "oob",
			OOBChannel:    "email",
		},
		DefaultUserInfo: domainauth.UserInfo{
			Email: "mock.user@example.com",
			Name:  "Mock_User",
		},
		DefaultRoles: []domainauth.Role{
			{ID: "rol_reader", Name: "reader"},
			{ID: "rol_admin", Name: "admin"},
		},
		DefaultMgmtToken: "mock-mgmt-token",
		DefaultUserID:    "auth0|mock-user-1",
	}
}

func (m *ProviderMock) ExchangePassword(ctx context.Context, email, password string) (domainauth.PasswordGrantResult, error) {
	if m.ExchangePasswordFunc != nil {
		return m.ExchangePasswordFunc(ctx, email, password)
	}
	tokens := m.DefaultTokens
	return domainauth.PasswordGrantResult{Tokens: &tokens}, nil
}

func (m *ProviderMock) RequestMFAChallenge(ctx context.Context, mfaToken string) (domainauth.MFAChallenge, error) {
	if m.RequestMFAChallengeFunc != nil {
		return m.RequestMFAChallengeFunc(ctx, mfaToken)
	}
	challenge := m.DefaultChallenge
	challenge.MFAToken = mfaToken
	return challenge, nil
}

func (m *ProviderMock) ExchangeMFAOOB(ctx context.Context, in ports.MFAExchangeInput) (domainauth.SessionTokens, error) {
	if m.ExchangeMFAOOBFunc != nil {
		return m.ExchangeMFAOOBFunc(ctx, in)
	}
	return m.DefaultTokens, nil
}

func (m *ProviderMock) ManagementToken(ctx context.Context) (string, error) {
	if m.ManagementTokenFunc != nil {
		return m.ManagementTokenFunc(ctx)
	}
	return m.DefaultMgmtToken, nil
}

func (m *ProviderMock) FindUsersByEmail(ctx context.Context, email, managementToken string) ([]domainauth.User, error) {
	if m.FindUsersByEmailFunc != nil {
		return m.FindUsersByEmailFunc(ctx, email, managementToken)
	}
	return nil, nil
}

func (m *ProviderMock) CreateUser(ctx context.Context, in ports.CreateUserInput) (string, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, in)
	}
	return m.DefaultUserID, nil
}

func (m *ProviderMock) ListRoles(ctx context.Context, managementToken string) ([]domainauth.Role, error) {
	if m.ListRolesFunc != nil {
		return m.ListRolesFunc(ctx, managementToken)
	}
	return m.DefaultRoles, nil
}

func (m *ProviderMock) AssignRole(ctx context.Context, in ports.AssignRoleInput) error {
	if m.AssignRoleFunc != nil {
		return m.AssignRoleFunc(ctx, in)
	}
	return nil
}

func (m *ProviderMock) EnrollMFAEmail(ctx context.Context, in ports.EnrollMFAInput) error {
	if m.EnrollMFAEmailFunc != nil {
		return m.EnrollMFAEmailFunc(ctx, in)
	}
	return nil
}

func (m *ProviderMock) DeleteUser(ctx context.Context, userID, managementToken string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, userID, managementToken)
	}
	return nil
}

func (m *ProviderMock) RequestPasswordReset(ctx context.Context, email string) error {
	if m.RequestPasswordResetFunc != nil {
		return m.RequestPasswordResetFunc(ctx, email)
	}
	return nil
}

func (m *ProviderMock) PatchUserName(ctx context.Context, in ports.PatchUserNameInput) error {
	if m.PatchUserNameFunc != nil {
		return m.PatchUserNameFunc(ctx, in)
	}
	return nil
}

func (m *ProviderMock) UserInfo(ctx context.Context, accessToken string) (domainauth.UserInfo, error) {
	if m.UserInfoFunc != nil {
		return m.UserInfoFunc(ctx, accessToken)
	}
	return m.DefaultUserInfo, nil
}
