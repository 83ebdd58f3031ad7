package config

// HTTPConfig contains HTTP server configuration.
type HTTPConfig struct {
	// Addr is the address to bind the HTTP server to.
	Addr string `env:"HTTP_ADDR" envDefault:":3001"`

	// BaseURL is the base URL the browser client uses to reach the API.
	// Injected into the embedded client page at serve time.
	BaseURL string `env:"APP_BASE_URL" envDefault:"http://localhost:3001"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.Addr == "" {
		h.Addr = ":3001"
	}
}
