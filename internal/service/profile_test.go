package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/alkira/auth-gateway/internal/domain/auth"
	apperrors "github.com/alkira/auth-gateway/internal/errors"
	mockauth "github.com/alkira/auth-gateway/internal/mocks/auth"
	"github.com/alkira/auth-gateway/internal/ports"
	"github.com/alkira/auth-gateway/internal/testutil"
)

func newProfileService(provider ports.IdentityProvider) *ProfileService {
	return NewProfileService(ProfileServiceOptions{Provider: provider, Logger: quietLogger()})
}

func TestProfileService_Profile_RestoresSpaces(t *testing.T) {
	provider := mockauth.NewProviderMock()
	provider.UserInfoFunc = func(context.Context, string) (domainauth.UserInfo, error) {
		return domainauth.UserInfo{Email: "jane.doe@example.com", Name: "Jane_Doe"}, nil
	}

	profile, err := newProfileService(provider).Profile(context.Background(), "access-token")
	require.NoError(t, err)
	assert.Equal(t, domainauth.Profile{
		Email:    "jane.doe@example.com",
		FullName: "Jane Doe",
	}, profile)
}

func TestProfileService_Profile_ExpiredToken(t *testing.T) {
	provider := mockauth.NewProviderMock()
	provider.UserInfoFunc = func(context.Context, string) (domainauth.UserInfo, error) {
		return domainauth.UserInfo{}, &apperrors.ProviderError{Code: "invalid_token", Status: 401}
	}

	_, err := newProfileService(provider).Profile(context.Background(), "expired")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.EqualError(t, err, "Invalid or expired token.")
}

func TestProfileService_UpdateProfile_PatchesDisplayName(t *testing.T) {
	provider := mockauth.NewProviderMock()
	var patched ports.PatchUserNameInput
	provider.PatchUserNameFunc = func(_ context.Context, in ports.PatchUserNameInput) error {
		patched = in
		return nil
	}

	token := testutil.MakeToken(t, map[string]any{
		"sub":   "auth0|user-1",
		"email": "jane.doe@example.com",
	})

	err := newProfileService(provider).UpdateProfile(context.Background(), UpdateProfileInput{
		AccessToken: token,
		FirstName:   "Jane",
		LastName:    "Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, ports.PatchUserNameInput{
		UserID:          "auth0|user-1",
		DisplayName:     "Jane_Doe",
		ManagementToken: provider.DefaultMgmtToken,
	}, patched)
}

func TestProfileService_UpdateProfile_FirstNameOnly(t *testing.T) {
	provider := mockauth.NewProviderMock()
	var patched ports.PatchUserNameInput
	provider.PatchUserNameFunc = func(_ context.Context, in ports.PatchUserNameInput) error {
		patched = in
		return nil
	}

	token := testutil.MakeToken(t, map[string]any{"sub": "auth0|user-1"})

	err := newProfileService(provider).UpdateProfile(context.Background(), UpdateProfileInput{
		AccessToken: token,
		FirstName:   "Jane",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane", patched.DisplayName)
}

func TestProfileService_UpdateProfile_RequiresFirstName(t *testing.T) {
	provider := mockauth.NewProviderMock()

	err := newProfileService(provider).UpdateProfile(context.Background(), UpdateProfileInput{
		AccessToken: testutil.MakeToken(t, map[string]any{"sub": "auth0|user-1"}),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.EqualError(t, err, "First name is required.")
}

func TestProfileService_UpdateProfile_RejectsBadTokens(t *testing.T) {
	provider := mockauth.NewProviderMock()
	svc := newProfileService(provider)

	err := svc.UpdateProfile(context.Background(), UpdateProfileInput{FirstName: "Jane"})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))

	err = svc.UpdateProfile(context.Background(), UpdateProfileInput{
		AccessToken: "not.a.jwt",
		FirstName:   "Jane",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))

	// A decodable token without a subject is just as unusable.
	err = svc.UpdateProfile(context.Background(), UpdateProfileInput{
		AccessToken: testutil.MakeToken(t, map[string]any{"email": "jane.doe@example.com"}),
		FirstName:   "Jane",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestProfileService_Roles_ExtractsNamespacedClaim(t *testing.T) {
	provider := mockauth.NewProviderMock()

	token := testutil.MakeToken(t, map[string]any{
		"sub":                          "auth0|user-1",
		"https://api.alkira.com/roles": []string{"admin", "reader"},
	})

	roles, err := newProfileService(provider).Roles(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "reader"}, roles)
}

func TestProfileService_Roles_MissingClaimYieldsEmpty(t *testing.T) {
	provider := mockauth.NewProviderMock()

	token := testutil.MakeToken(t, map[string]any{"sub": "auth0|user-1"})

	roles, err := newProfileService(provider).Roles(context.Background(), token)
	require.NoError(t, err)
	assert.Empty(t, roles)
}

func TestProfileService_Roles_CustomClaim(t *testing.T) {
	provider := mockauth.NewProviderMock()
	svc := NewProfileService(ProfileServiceOptions{
		Provider:   provider,
		RolesClaim: "https://other.example.com/groups",
		Logger:     quietLogger(),
	})

	token := testutil.MakeToken(t, map[string]any{
		"https://other.example.com/groups": []string{"ops"},
	})

	roles, err := svc.Roles(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, []string{"ops"}, roles)
}

func TestProfileService_Roles_RejectsUndecodableToken(t *testing.T) {
	provider := mockauth.NewProviderMock()

	_, err := newProfileService(provider).Roles(context.Background(), "garbage")
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}
