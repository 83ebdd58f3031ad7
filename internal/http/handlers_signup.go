package httpx

import (
	"context"
	"net/http"

	domainauth "github.com/alkira/auth-gateway/internal/domain/auth"
)

// SignupServiceInterface abstracts the signup service for handler tests.
type SignupServiceInterface interface {
	Signup(ctx context.Context, creds domainauth.Credentials) (domainauth.CreatedAccount, error)
}

// SignupHandlers provides the HTTP handler for account registration.
type SignupHandlers struct {
	Svc SignupServiceInterface
}

type signupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Signup handles HTTP requests to register a new account.
func (h *SignupHandlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	account, err := h.Svc.Signup(r.Context(), domainauth.Credentials{
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"message": "User registered successfully",
		"data":    account,
	})
}
