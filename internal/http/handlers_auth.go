// Package httpx provides HTTP handlers and utilities for the auth gateway API.
package httpx

import (
	"context"
	"net/http"

	domainauth "github.com/alkira/auth-gateway/internal/domain/auth"
	"github.com/alkira/auth-gateway/internal/service"
)

// AuthServiceInterface abstracts the auth service for handler tests.
type AuthServiceInterface interface {
	Login(ctx context.Context, email, password string) (service.LoginResult, error)
	VerifyMFA(ctx context.Context, in service.VerifyMFAInput) (domainauth.SessionTokens, error)
	ResendMFA(ctx context.Context, mfaToken string) (domainauth.MFAChallenge, error)
	ResetPassword(ctx context.Context, email string) error
}

// AuthHandlers provides HTTP handlers for login, MFA, and password reset.
type AuthHandlers struct {
	Svc AuthServiceInterface
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Status string `json:"status"`
	domainauth.SessionTokens
}

type challengeResponse struct {
	Status string `json:"status"`
	domainauth.MFAChallenge
}

// Login handles HTTP requests to exchange credentials for session tokens.
// When the account requires MFA, the response carries the challenge instead.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	if result.Challenge != nil {
		WriteJSON(w, http.StatusOK, challengeResponse{
			Status:       "mfa_required",
			MFAChallenge: *result.Challenge,
		})
		return
	}
	WriteJSON(w, http.StatusOK, sessionResponse{
		Status:        "ok",
		SessionTokens: *result.Tokens,
	})
}

type verifyMFARequest struct {
	MFAToken string `json:"mfa_token"`
	OOBCode  string `json:"oob_code"`
	OTP      string `json:"otp"`
}

// VerifyMFA handles HTTP requests to complete an out-of-band challenge.
func (h *AuthHandlers) VerifyMFA(w http.ResponseWriter, r *http.Request) {
	var req verifyMFARequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	tokens, err := h.Svc.VerifyMFA(r.Context(), service.VerifyMFAInput{
		MFAToken: req.MFAToken,
		OOBCode:  req.OOBCode,
		OTP:      req.OTP,
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, sessionResponse{Status: "ok", SessionTokens: tokens})
}

type resendMFARequest struct {
	MFAToken string `json:"mfa_token"`
}

// ResendMFA handles HTTP requests for a fresh out-of-band challenge.
func (h *AuthHandlers) ResendMFA(w http.ResponseWriter, r *http.Request) {
	var req resendMFARequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	challenge, err := h.Svc.ResendMFA(r.Context(), req.MFAToken)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	// Still mid-login: the caller holds a fresh challenge, not a session.
	WriteJSON(w, http.StatusOK, challengeResponse{Status: "mfa_required", MFAChallenge: challenge})
}

type resetPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPassword handles HTTP requests to trigger a password-reset email.
func (h *AuthHandlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.ResetPassword(r.Context(), req.Email); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "Password reset email sent",
	})
}
