// Package auth contains the transient request/response records exchanged with
// the identity provider. Nothing in this package is persisted.
package auth

import "strings"

// Credentials carries the inputs to a signup run.
type Credentials struct {
	Email     string
	Password  string
	Role      string
	FirstName string
	LastName  string
}

// DisplayName derives the user's display name: the first name alone, or
// "First Last" when a last name is present.
func (c Credentials) DisplayName() string {
	first := strings.TrimSpace(c.FirstName)
	last := strings.TrimSpace(c.LastName)
	if last == "" {
		return first
	}
	return first + " " + last
}

// ProviderUsername is the display name with spaces replaced by underscores,
// satisfying the provider's username constraint.
func (c Credentials) ProviderUsername() string {
	return strings.ReplaceAll(c.DisplayName(), " ", "_")
}

// SessionTokens are the opaque tokens returned on successful authentication.
// The gateway forwards them without interpreting or validating them.
type SessionTokens struct {
	IDToken     string `json:"id_token"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// PasswordGrantResult is the outcome of a password-realm exchange: either
// completed session tokens, or an MFA token for a challenge that must be
// completed out of band.
type PasswordGrantResult struct {
	Tokens   *SessionTokens
	MFAToken string
}

// MFARequired reports whether the provider demanded multi-factor verification.
func (r PasswordGrantResult) MFARequired() bool {
	return r.MFAToken != ""
}

// MFAChallenge describes a pending out-of-band challenge. It is held by the
// caller between login/resend and verification; the gateway never stores it.
type MFAChallenge struct {
	MFAToken      string `json:"mfa_token"`
	OOBCode       string `json:"oob_code"`
	ChallengeType string `json:"challenge_type"` // always "oob"
	OOBChannel    string `json:"oob_channel"`    // always "email"
}

// User is a provider account reference returned by lookups.
type User struct {
	ID    string `json:"user_id"`
	Email string `json:"email"`
}

// Role is a provider role record matched by name against signup requests.
type Role struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CreatedAccount identifies a fully provisioned account after a successful
// signup run.
type CreatedAccount struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

// UserInfo is the subset of the provider's userinfo response the gateway
// consumes.
type UserInfo struct {
	Email string
	Name  string
}

// Profile is the caller-facing projection of userinfo, with the username
// underscores turned back into spaces.
type Profile struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}
