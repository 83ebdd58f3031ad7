// Package mocks provides mock implementations for testing the auth gateway.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for
// the identity-provider port. The mocks are generated using go:generate
// directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	provider := mocks.NewMockIdentityProvider(ctrl)
//	provider.EXPECT().ManagementToken(gomock.Any()).Return("token", nil)
package mocks

// Generate mock for IdentityProvider interface from internal/ports.
// This creates MockIdentityProvider with methods for all IdentityProvider
// interface methods: ExchangePassword, RequestMFAChallenge, ExchangeMFAOOB,
// ManagementToken, FindUsersByEmail, CreateUser, ListRoles, AssignRole,
// EnrollMFAEmail, DeleteUser, RequestPasswordReset, PatchUserName, UserInfo
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=identity_provider_mock.go github.com/alkira/auth-gateway/internal/ports IdentityProvider
