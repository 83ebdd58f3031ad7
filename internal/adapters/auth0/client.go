package auth0

// Package auth0 implements the identity-provider port against the Auth0 HTTP
// API. Every method is a single round trip; failures are surfaced to the
// caller, never retried here.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	gooidc "github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	domainauth "github.com/alkira/auth-gateway/internal/domain/auth"
	apperrors "github.com/alkira/auth-gateway/internal/errors"
	"github.com/alkira/auth-gateway/internal/ports"
)

const (
	grantPasswordRealm = "http://auth0.com/oauth/grant-type/password-realm"
	grantMFAOOB        = "http://auth0.com/oauth/grant-type/mfa-oob"

	challengeTypeOOB = "oob"
	oobChannelEmail  = "email"

	mfaRequiredError = "mfa_required"

	defaultScope = "openid profile email"

	maxResponseBytes = 1 << 20 // 1MB
)

// Config holds configuration for the Auth0 client.
type Config struct {
	Domain       string
	ClientID     string
	ClientSecret string
	Audience     string
	Realm        string
	Connection   string
	Timeout      time.Duration
	IssuerURL    string       // optional override of https://<domain>/, used by tests
	HTTPClient   *http.Client // optional, defaults to a client with Timeout
}

// Client implements ports.IdentityProvider over the Auth0 authentication and
// management APIs. Endpoints are resolved once at construction via OIDC
// discovery; management tokens are fetched fresh on every call, never cached.
type Client struct {
	cfg        Config
	baseURL    string
	tokenURL   string
	httpClient *http.Client

	oidcProvider *gooidc.Provider
	mgmt         *clientcredentials.Config
}

var _ ports.IdentityProvider = (*Client)(nil)

// NewClient builds an Auth0 client, fetching the tenant's discovery document
// to resolve the token and userinfo endpoints.
func NewClient(cfg Config) (*Client, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("client ID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, errors.New("client secret is required")
	}
	if cfg.Domain == "" && cfg.IssuerURL == "" {
		return nil, errors.New("provider domain is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	issuer := cfg.IssuerURL
	if issuer == "" {
		issuer = "https://" + cfg.Domain + "/"
	}

	op, err := gooidc.NewProvider(gooidc.ClientContext(context.Background(), httpClient), issuer)
	if err != nil {
		return nil, fmt.Errorf("discover provider endpoints: %w", err)
	}

	baseURL := strings.TrimSuffix(issuer, "/")
	endpoint := op.Endpoint()

	return &Client{
		cfg:          cfg,
		baseURL:      baseURL,
		tokenURL:     endpoint.TokenURL,
		httpClient:   httpClient,
		oidcProvider: op,
		mgmt: &clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     endpoint.TokenURL,
			AuthStyle:    oauth2.AuthStyleInParams,
			EndpointParams: url.Values{
				"audience": {baseURL + "/api/v2/"},
			},
		},
	}, nil
}

// tokenResponse is the union of the token endpoint's success and error shapes.
// Auth0 reports MFA demands as an error payload carrying an mfa_token.
type tokenResponse struct {
	IDToken          string `json:"id_token"`
	AccessToken      string `json:"access_token"`
	ExpiresIn        int64  `json:"expires_in"`
	TokenType        string `json:"token_type"`
	MFAToken         string `json:"mfa_token"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (t tokenResponse) sessionTokens() *domainauth.SessionTokens {
	return &domainauth.SessionTokens{
		IDToken:     t.IDToken,
		AccessToken: t.AccessToken,
		ExpiresIn:   t.ExpiresIn,
		TokenType:   t.TokenType,
	}
}

// ExchangePassword performs the password-realm grant.
func (c *Client) ExchangePassword(ctx context.Context, email, password string) (domainauth.PasswordGrantResult, error) {
	payload := map[string]any{
		"grant_type":    grantPasswordRealm,
		"realm":         c.cfg.Realm,
		"username":      email,
		"password":      password,
		"audience":      c.cfg.Audience,
		"client_id":     c.cfg.ClientID,
		"client_secret": c.cfg.ClientSecret,
		"scope":         defaultScope,
	}

	status, body, err := c.do(ctx, providerRequest{method: http.MethodPost, url: c.tokenURL, body: payload})
	if err != nil {
		return domainauth.PasswordGrantResult{}, fmt.Errorf("exchange password: %w", err)
	}

	var out tokenResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return domainauth.PasswordGrantResult{}, fmt.Errorf("decode token response: %w", err)
	}
	if out.Error == mfaRequiredError {
		return domainauth.PasswordGrantResult{MFAToken: out.MFAToken}, nil
	}
	if out.Error != "" {
		return domainauth.PasswordGrantResult{}, &apperrors.ProviderError{
			Code:        out.Error,
			Description: out.ErrorDescription,
			Status:      status,
		}
	}
	return domainauth.PasswordGrantResult{Tokens: out.sessionTokens()}, nil
}

// RequestMFAChallenge creates a fresh out-of-band challenge. The provider
// invalidates codes issued for earlier challenges on the same token.
func (c *Client) RequestMFAChallenge(ctx context.Context, mfaToken string) (domainauth.MFAChallenge, error) {
	payload := map[string]any{
		"mfa_token":      mfaToken,
		"client_id":      c.cfg.ClientID,
		"client_secret":  c.cfg.ClientSecret,
		"challenge_type": challengeTypeOOB,
	}

	status, body, err := c.do(ctx, providerRequest{method: http.MethodPost, url: c.baseURL + "/mfa/challenge", body: payload})
	if err != nil {
		return domainauth.MFAChallenge{}, fmt.Errorf("request mfa challenge: %w", err)
	}

	var out struct {
		OOBCode          string `json:"oob_code"`
		Error            string `json:"error"`
		ErrorDescription string `json:"error_description"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return domainauth.MFAChallenge{}, fmt.Errorf("decode challenge response: %w", err)
	}
	if out.Error != "" {
		return domainauth.MFAChallenge{}, &apperrors.ProviderError{
			Code:        out.Error,
			Description: out.ErrorDescription,
			Status:      status,
		}
	}
	return domainauth.MFAChallenge{
		MFAToken:      mfaToken,
		OOBCode:       out.OOBCode,
		ChallengeType: challengeTypeOOB,
		OOBChannel:    oobChannelEmail,
	}, nil
}

// ExchangeMFAOOB completes an out-of-band challenge.
func (c *Client) ExchangeMFAOOB(ctx context.Context, in ports.MFAExchangeInput) (domainauth.SessionTokens, error) {
	payload := map[string]any{
		"grant_type":    grantMFAOOB,
		"client_id":     c.cfg.ClientID,
		"client_secret": c.cfg.ClientSecret,
		"mfa_token":     in.MFAToken,
		"oob_code":      in.OOBCode,
		"binding_code":  in.OTP,
	}

	status, body, err := c.do(ctx, providerRequest{method: http.MethodPost, url: c.tokenURL, body: payload})
	if err != nil {
		return domainauth.SessionTokens{}, fmt.Errorf("exchange mfa oob: %w", err)
	}

	var out tokenResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return domainauth.SessionTokens{}, fmt.Errorf("decode token response: %w", err)
	}
	if out.Error != "" {
		return domainauth.SessionTokens{}, &apperrors.ProviderError{
			Code:        out.Error,
			Description: out.ErrorDescription,
			Status:      status,
		}
	}
	return *out.sessionTokens(), nil
}

// ManagementToken obtains a fresh management-API token via the
// client-credentials grant.
func (c *Client) ManagementToken(ctx context.Context) (string, error) {
	tok, err := c.mgmt.Token(context.WithValue(ctx, oauth2.HTTPClient, c.httpClient))
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.Response != nil {
			return "", fmt.Errorf("management token: %w", parseProviderError(re.Response.StatusCode, re.Body))
		}
		return "", fmt.Errorf("management token: %w", err)
	}
	return tok.AccessToken, nil
}

// FindUsersByEmail lists existing accounts for the address.
func (c *Client) FindUsersByEmail(ctx context.Context, email, managementToken string) ([]domainauth.User, error) {
	var users []domainauth.User
	err := c.call(ctx, providerRequest{
		method: http.MethodGet,
		url:    c.apiURL("users-by-email") + "?email=" + url.QueryEscape(email),
		token:  managementToken,
	}, &users)
	if err != nil {
		return nil, fmt.Errorf("find users by email: %w", err)
	}
	return users, nil
}

// CreateUser creates an account via the database connection. The signup
// endpoint returns a bare ID; management calls need the provider-prefixed
// form, so that is what callers get back.
func (c *Client) CreateUser(ctx context.Context, in ports.CreateUserInput) (string, error) {
	payload := map[string]any{
		"client_id":  c.cfg.ClientID,
		"email":      in.Email,
		"password":   in.Password,
		"connection": c.cfg.Connection,
		"username":   in.DisplayName,
	}

	var out struct {
		ID string `json:"_id"`
	}
	if err := c.call(ctx, providerRequest{method: http.MethodPost, url: c.baseURL + "/dbconnections/signup", body: payload}, &out); err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	if out.ID == "" {
		return "", errors.New("create user: provider returned no user id")
	}
	return "auth0|" + out.ID, nil
}

// ListRoles returns the provider's role records.
func (c *Client) ListRoles(ctx context.Context, managementToken string) ([]domainauth.Role, error) {
	var roles []domainauth.Role
	err := c.call(ctx, providerRequest{
		method: http.MethodGet,
		url:    c.apiURL("roles"),
		token:  managementToken,
	}, &roles)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

// AssignRole attaches a role to an account.
func (c *Client) AssignRole(ctx context.Context, in ports.AssignRoleInput) error {
	err := c.call(ctx, providerRequest{
		method: http.MethodPost,
		url:    c.apiURL("roles/" + url.PathEscape(in.RoleID) + "/users"),
		token:  in.ManagementToken,
		body:   map[string]any{"users": []string{in.UserID}},
	}, nil)
	if err != nil {
		return fmt.Errorf("assign role: %w", err)
	}
	return nil
}

// EnrollMFAEmail registers an email-based MFA method for the account.
func (c *Client) EnrollMFAEmail(ctx context.Context, in ports.EnrollMFAInput) error {
	err := c.call(ctx, providerRequest{
		method: http.MethodPost,
		url:    c.apiURL("users/" + url.PathEscape(in.UserID) + "/authentication-methods"),
		token:  in.ManagementToken,
		body:   map[string]any{"type": oobChannelEmail, "email": in.Email},
	}, nil)
	if err != nil {
		return fmt.Errorf("enroll mfa method: %w", err)
	}
	return nil
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, userID, managementToken string) error {
	err := c.call(ctx, providerRequest{
		method: http.MethodDelete,
		url:    c.apiURL("users/" + url.PathEscape(userID)),
		token:  managementToken,
	}, nil)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// RequestPasswordReset triggers the provider's password-reset email. The
// endpoint answers with plain text on success, so the body is not decoded.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	payload := map[string]any{
		"client_id":  c.cfg.ClientID,
		"email":      email,
		"connection": c.cfg.Connection,
	}
	err := c.call(ctx, providerRequest{method: http.MethodPost, url: c.baseURL + "/dbconnections/change_password", body: payload}, nil)
	if err != nil {
		return fmt.Errorf("request password reset: %w", err)
	}
	return nil
}

// PatchUserName updates an account's display name.
func (c *Client) PatchUserName(ctx context.Context, in ports.PatchUserNameInput) error {
	err := c.call(ctx, providerRequest{
		method: http.MethodPatch,
		url:    c.apiURL("users/" + url.PathEscape(in.UserID)),
		token:  in.ManagementToken,
		body:   map[string]any{"name": in.DisplayName},
	}, nil)
	if err != nil {
		return fmt.Errorf("patch user name: %w", err)
	}
	return nil
}

// UserInfo resolves the caller's identity from an access token using the
// discovered userinfo endpoint.
func (c *Client) UserInfo(ctx context.Context, accessToken string) (domainauth.UserInfo, error) {
	if accessToken == "" {
		return domainauth.UserInfo{}, errors.New("access token is required")
	}

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	ui, err := c.oidcProvider.UserInfo(gooidc.ClientContext(ctx, c.httpClient), source)
	if err != nil {
		return domainauth.UserInfo{}, fmt.Errorf("userinfo: %w", err)
	}

	var claims struct {
		Name string `json:"name"`
	}
	if err := ui.Claims(&claims); err != nil {
		return domainauth.UserInfo{}, fmt.Errorf("decode userinfo claims: %w", err)
	}
	return domainauth.UserInfo{Email: ui.Email, Name: claims.Name}, nil
}

func (c *Client) apiURL(path string) string {
	return c.baseURL + "/api/v2/" + path
}

// providerRequest groups the inputs for one outbound call.
type providerRequest struct {
	method string
	url    string
	token  string // bearer token, optional
	body   any    // JSON-encoded when non-nil
}

// do performs the request and returns the raw status and body.
func (c *Client) do(ctx context.Context, req providerRequest) (int, []byte, error) {
	var reader io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, req.url, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("provider request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read provider response: %w", err)
	}
	return resp.StatusCode, body, nil
}

// call performs a request, maps non-2xx responses to a ProviderError, and
// decodes a JSON body into out when requested.
func (c *Client) call(ctx context.Context, req providerRequest, out any) error {
	status, body, err := c.do(ctx, req)
	if err != nil {
		return err
	}
	if status >= http.StatusBadRequest {
		return parseProviderError(status, body)
	}
	if out != nil && len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode provider response: %w", err)
		}
	}
	return nil
}
