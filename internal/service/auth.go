package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"

	domainauth "github.com/alkira/auth-gateway/internal/domain/auth"
	apperrors "github.com/alkira/auth-gateway/internal/errors"
	"github.com/alkira/auth-gateway/internal/ports"
)

// emailPattern is the shared shape check for email fields. Real validation is
// the provider's job; this only rejects obviously malformed input before a
// network call is made.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// LoginResult carries the outcome of a credential exchange. Exactly one of
// Tokens or Challenge is set: Tokens when the account has no MFA requirement,
// Challenge when an out-of-band verification must complete first.
type LoginResult struct {
	Tokens    *domainauth.SessionTokens
	Challenge *domainauth.MFAChallenge
}

// VerifyMFAInput groups parameters for completing a login challenge.
type VerifyMFAInput struct {
	MFAToken string
	OOBCode  string
	OTP      string
}

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Provider ports.IdentityProvider
	Logger   *slog.Logger
}

// AuthService handles credential exchange, MFA challenge completion, and
// password-reset requests.
type AuthService struct {
	provider ports.IdentityProvider
	logger   *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{provider: opts.Provider, logger: logger}
}

// Login exchanges credentials for session tokens. When the provider demands
// MFA, Login immediately requests an out-of-band challenge so the caller can
// prompt for the code without a second round trip.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if email == "" || password == "" {
		return LoginResult{}, apperrors.Validation("Email and password are required.")
	}

	grant, err := s.provider.ExchangePassword(ctx, email, password)
	if err != nil {
		// Only a provider rejection is a credential failure; a transport or
		// decode error means the exchange never happened.
		if _, ok := apperrors.AsProvider(err); !ok {
			return LoginResult{}, providerFailure(err, "exchange password")
		}
		return LoginResult{}, apperrors.Wrap(err, apperrors.ErrCodeInvalidCredentials, apperrors.Translate(err))
	}

	if !grant.MFARequired() {
		return LoginResult{Tokens: grant.Tokens}, nil
	}

	challenge, err := s.provider.RequestMFAChallenge(ctx, grant.MFAToken)
	if err != nil {
		return LoginResult{}, apperrors.Wrap(fmt.Errorf("request challenge: %w", err),
			apperrors.ErrCodeServerError, apperrors.Translate(err))
	}
	s.logger.InfoContext(ctx, "mfa challenge issued", "channel", challenge.OOBChannel)
	return LoginResult{Challenge: &challenge}, nil
}

// VerifyMFA completes an out-of-band challenge and returns session tokens.
func (s *AuthService) VerifyMFA(ctx context.Context, in VerifyMFAInput) (domainauth.SessionTokens, error) {
	if in.MFAToken == "" || in.OOBCode == "" || in.OTP == "" {
		return domainauth.SessionTokens{}, apperrors.Validation("MFA token, OTP and oob code are required.")
	}

	tokens, err := s.provider.ExchangeMFAOOB(ctx, ports.MFAExchangeInput{
		MFAToken: in.MFAToken,
		OOBCode:  in.OOBCode,
		OTP:      in.OTP,
	})
	if err != nil {
		if _, ok := apperrors.AsProvider(err); !ok {
			return domainauth.SessionTokens{}, providerFailure(err, "exchange mfa code")
		}
		return domainauth.SessionTokens{}, apperrors.Wrap(err,
			apperrors.ErrCodeMFAVerification, apperrors.Translate(err))
	}
	return tokens, nil
}

// ResendMFA requests a fresh out-of-band challenge for an in-flight login.
// Issuing a new challenge invalidates the previous oob_code on the provider
// side; the caller must use the code returned here.
func (s *AuthService) ResendMFA(ctx context.Context, mfaToken string) (domainauth.MFAChallenge, error) {
	if mfaToken == "" {
		return domainauth.MFAChallenge{}, apperrors.Validation("MFA token is required.")
	}

	challenge, err := s.provider.RequestMFAChallenge(ctx, mfaToken)
	if err != nil {
		return domainauth.MFAChallenge{}, apperrors.Wrap(err,
			apperrors.ErrCodeServerError, apperrors.Translate(err))
	}
	return challenge, nil
}

// ResetPassword triggers the provider's password-reset email for the address.
func (s *AuthService) ResetPassword(ctx context.Context, email string) error {
	if email == "" {
		return apperrors.Validation("Email is required.")
	}
	if !emailPattern.MatchString(email) {
		return apperrors.Validation("Please enter a valid email address.")
	}

	if err := s.provider.RequestPasswordReset(ctx, email); err != nil {
		if pe, ok := apperrors.AsProvider(err); ok && pe.Status == http.StatusNotFound {
			return apperrors.NotFound("No account found for this email.")
		}
		return apperrors.Wrap(err, apperrors.ErrCodeServerError, apperrors.Translate(err))
	}
	return nil
}
