package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/alkira/auth-gateway/config"
	"github.com/alkira/auth-gateway/internal/adapters/auth0"
	"github.com/alkira/auth-gateway/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Auth    *service.AuthService
	Signup  *service.SignupService
	Profile *service.ProfileService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config *config.AppConfig
	Logger *slog.Logger
}

// NewServices builds the identity-provider adapter and wires the application
// services on top of it. Construction reaches the provider once, to resolve
// its endpoints from the discovery document.
func NewServices(deps *ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	provider := deps.Config.Provider

	client, err := auth0.NewClient(auth0.Config{
		Domain:       provider.Domain,
		ClientID:     provider.ClientID,
		ClientSecret: provider.ClientSecret,
		Audience:     provider.Audience,
		Realm:        provider.Realm,
		Connection:   provider.Connection,
		Timeout:      provider.Timeout,
		IssuerURL:    provider.IssuerURL,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build identity provider client: %w", err)
	}

	return ServiceContainer{
		Auth: service.NewAuthService(service.AuthServiceOptions{
			Provider: client,
			Logger:   logger,
		}),
		Signup: service.NewSignupService(service.SignupServiceOptions{
			Provider:    client,
			DefaultRole: provider.DefaultRole,
			Logger:      logger,
		}),
		Profile: service.NewProfileService(service.ProfileServiceOptions{
			Provider:   client,
			RolesClaim: provider.RolesClaim,
			Logger:     logger,
		}),
	}, nil
}
