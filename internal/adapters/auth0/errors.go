package auth0

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/alkira/auth-gateway/internal/errors"
)

// parseProviderError builds a ProviderError from a non-2xx response body.
// Auth0 error shapes vary by API surface: the token endpoints use
// error/error_description, the management API uses error/message, and the
// database-connection endpoints use code/description (where description may
// itself be an object for password-policy failures).
func parseProviderError(status int, body []byte) *apperrors.ProviderError {
	var payload struct {
		Error            string          `json:"error"`
		ErrorDescription string          `json:"error_description"`
		Code             string          `json:"code"`
		Message          string          `json:"message"`
		Description      json.RawMessage `json:"description"`
	}
	// A non-JSON body leaves the payload zero-valued; fall through to the
	// status-derived defaults below.
	_ = json.Unmarshal(body, &payload)

	code := payload.Error
	if code == "" {
		code = payload.Code
	}

	desc := payload.ErrorDescription
	if desc == "" {
		desc = payload.Message
	}
	if desc == "" && len(payload.Description) > 0 {
		var s string
		if err := json.Unmarshal(payload.Description, &s); err == nil {
			desc = s
		}
	}

	if code == "" && desc == "" {
		code = http.StatusText(status)
	}
	return &apperrors.ProviderError{Code: code, Description: desc, Status: status}
}
