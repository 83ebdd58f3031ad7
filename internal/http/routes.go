package httpx

import (
	"io/fs"
	"net/http"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth    AuthServiceInterface
	Signup  SignupServiceInterface
	Profile ProfileServiceInterface
	// WebFS serves the embedded web client at the root. Optional; nil
	// disables the static routes (API-only deployments, tests).
	WebFS fs.FS
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authHandlers := &AuthHandlers{Svc: services.Auth}
	signupHandlers := &SignupHandlers{Svc: services.Signup}
	profileHandlers := &ProfileHandlers{Svc: services.Profile}

	mux.HandleFunc("POST /api/login", authHandlers.Login)
	mux.HandleFunc("POST /api/mfa-verify", authHandlers.VerifyMFA)
	mux.HandleFunc("POST /api/resend-mfa", authHandlers.ResendMFA)
	mux.HandleFunc("POST /api/reset-password", authHandlers.ResetPassword)
	mux.HandleFunc("POST /api/signup", signupHandlers.Signup)
	mux.HandleFunc("GET /api/profile", profileHandlers.Get)
	mux.HandleFunc("PATCH /api/profile", profileHandlers.Update)
	mux.HandleFunc("GET /api/roles", profileHandlers.Roles)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	if services.WebFS != nil {
		mux.Handle("GET /", http.FileServerFS(services.WebFS))
	}

	return mux
}
