package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestProviderConfigIssuer(t *testing.T) {
	tests := []struct {
		name     string
		cfg      ProviderConfig
		expected string
	}{
		{
			name:     "derived from domain",
			cfg:      ProviderConfig{Domain: "acme.auth0.com"},
			expected: "https://acme.auth0.com/",
		},
		{
			name:     "explicit issuer override wins",
			cfg:      ProviderConfig{Domain: "acme.auth0.com", IssuerURL: "http://127.0.0.1:9999"},
			expected: "http://127.0.0.1:9999",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.Issuer(); got != tt.expected {
				t.Fatalf("Issuer() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestProviderConfigSanitize(t *testing.T) {
	p := ProviderConfig{Domain: " acme.auth0.com ", Timeout: -1}
	p.Sanitize()

	if p.Domain != "acme.auth0.com" {
		t.Fatalf("expected trimmed domain, got %q", p.Domain)
	}
	if p.DefaultRole != "reader" {
		t.Fatalf("expected default role fallback, got %q", p.DefaultRole)
	}
	if p.Timeout != 30*time.Second {
		t.Fatalf("expected timeout clamp to 30s, got %v", p.Timeout)
	}

	p.Timeout = time.Hour
	p.Sanitize()
	if p.Timeout != 2*time.Minute {
		t.Fatalf("expected timeout clamp to 2m, got %v", p.Timeout)
	}
}

func TestHTTPConfigSanitize(t *testing.T) {
	h := HTTPConfig{}
	h.Sanitize()
	if h.Addr != ":3001" {
		t.Fatalf("expected default addr :3001, got %q", h.Addr)
	}
}

func TestAppConfigParseFromEnv(t *testing.T) {
	t.Setenv("AUTH0_DOMAIN", "acme.auth0.com")
	t.Setenv("AUTH0_CLIENT_ID", "client-id")
	t.Setenv("AUTH0_CLIENT_SECRET", "client-secret")
	t.Setenv("AUTH0_AUDIENCE", "https://api.acme.example")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Provider.Domain != "acme.auth0.com" {
		t.Fatalf("unexpected domain: %q", cfg.Provider.Domain)
	}
	if cfg.Provider.Realm != "alkira" {
		t.Fatalf("expected default realm, got %q", cfg.Provider.Realm)
	}
	if cfg.Provider.DefaultRole != "reader" {
		t.Fatalf("expected default role, got %q", cfg.Provider.DefaultRole)
	}
	if cfg.HTTP.Addr != ":3001" {
		t.Fatalf("expected default addr, got %q", cfg.HTTP.Addr)
	}
}

func TestAppConfigParseMissingRequired(t *testing.T) {
	t.Setenv("AUTH0_DOMAIN", "acme.auth0.com")
	t.Setenv("AUTH0_CLIENT_ID", "")
	t.Setenv("AUTH0_CLIENT_SECRET", "")

	var cfg AppConfig
	if err := env.Parse(&cfg); err == nil {
		t.Fatal("expected error for missing required client credentials")
	}
}
