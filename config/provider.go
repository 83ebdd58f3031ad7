package config

import (
	"strings"
	"time"
)

// ProviderConfig contains identity provider (Auth0 tenant) configuration.
// All variables share the AUTH0_ prefix.
type ProviderConfig struct {
	// Domain is the provider tenant domain (e.g., "acme.auth0.com").
	Domain string `env:"DOMAIN,required,notEmpty"`

	// ClientID is the application client ID registered with the provider.
	ClientID string `env:"CLIENT_ID,required,notEmpty"`

	// ClientSecret is the application client secret.
	ClientSecret string `env:"CLIENT_SECRET,required,notEmpty"`

	// Audience is the API audience requested on password-grant logins.
	Audience string `env:"AUDIENCE"`

	// Realm is the provider realm used for the password grant.
	Realm string `env:"REALM" envDefault:"alkira"`

	// Connection is the database connection users are created in.
	Connection string `env:"CONNECTION" envDefault:"alkira"`

	// RolesClaim is the custom claim holding the user's roles in issued tokens.
	RolesClaim string `env:"ROLES_CLAIM" envDefault:"https://api.alkira.com/roles"`

	// DefaultRole is assigned on signup when the caller does not request one.
	DefaultRole string `env:"DEFAULT_ROLE" envDefault:"reader"`

	// Timeout bounds each outbound call to the provider.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`

	// IssuerURL overrides the issuer derived from Domain. Mainly useful for
	// pointing the client at a local stub during tests.
	IssuerURL string `env:"ISSUER_URL"`
}

// Issuer returns the OIDC issuer URL for the tenant. The provider publishes
// its discovery document under this URL with a trailing slash.
func (p *ProviderConfig) Issuer() string {
	if p.IssuerURL != "" {
		return p.IssuerURL
	}
	return "https://" + p.Domain + "/"
}

// Sanitize applies guardrails to provider configuration values.
func (p *ProviderConfig) Sanitize() {
	p.Domain = strings.TrimSpace(p.Domain)
	p.IssuerURL = strings.TrimSpace(p.IssuerURL)

	if p.DefaultRole == "" {
		p.DefaultRole = "reader"
	}

	// Clamp timeout to something sane; a zero timeout would disable it entirely.
	if p.Timeout <= 0 {
		p.Timeout = 30 * time.Second
	}
	if p.Timeout > 2*time.Minute {
		p.Timeout = 2 * time.Minute
	}
}
