package httpx

import (
	"context"
	"net/http"

	domainauth "github.com/alkira/auth-gateway/internal/domain/auth"
	apperrors "github.com/alkira/auth-gateway/internal/errors"
	"github.com/alkira/auth-gateway/internal/service"
)

// ProfileServiceInterface abstracts the profile service for handler tests.
type ProfileServiceInterface interface {
	Profile(ctx context.Context, accessToken string) (domainauth.Profile, error)
	UpdateProfile(ctx context.Context, in service.UpdateProfileInput) error
	Roles(ctx context.Context, accessToken string) ([]string, error)
}

// ProfileHandlers provides HTTP handlers for profile and role operations.
// All routes require a bearer token.
type ProfileHandlers struct {
	Svc ProfileServiceInterface
}

// requireBearer extracts the bearer token or writes a 401.
func requireBearer(w http.ResponseWriter, r *http.Request) (string, bool) {
	token, ok := BearerToken(r)
	if !ok {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: string(apperrors.ErrCodeUnauthorized),
			Message: "Authorization header is missing.",
		})
		return "", false
	}
	return token, true
}

// Get handles HTTP requests for the caller's profile.
func (h *ProfileHandlers) Get(w http.ResponseWriter, r *http.Request) {
	token, ok := requireBearer(w, r)
	if !ok {
		return
	}

	profile, err := h.Svc.Profile(r.Context(), token)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, profile)
}

type updateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Update handles HTTP requests to change the caller's display name.
func (h *ProfileHandlers) Update(w http.ResponseWriter, r *http.Request) {
	token, ok := requireBearer(w, r)
	if !ok {
		return
	}

	var req updateProfileRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	err := h.Svc.UpdateProfile(r.Context(), service.UpdateProfileInput{
		AccessToken: token,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"first_name": req.FirstName,
		"last_name":  req.LastName,
	})
}

// Roles handles HTTP requests for the caller's roles.
func (h *ProfileHandlers) Roles(w http.ResponseWriter, r *http.Request) {
	token, ok := requireBearer(w, r)
	if !ok {
		return
	}

	roles, err := h.Svc.Roles(r.Context(), token)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"roles": roles})
}
