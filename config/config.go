package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - provider.go: Identity provider configuration
//   - http.go: HTTP server configuration
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging, disk-served assets).
	IsDev bool `env:"DEV" envDefault:"false"`

	// Provider is the identity provider configuration.
	Provider ProviderConfig `envPrefix:"AUTH0_"`

	// HTTP server configuration
	HTTP HTTPConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Provider.Sanitize()
	c.HTTP.Sanitize()
}
