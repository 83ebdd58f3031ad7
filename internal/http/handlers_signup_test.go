package httpx

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/alkira/auth-gateway/internal/domain/auth"
	apperrors "github.com/alkira/auth-gateway/internal/errors"
)

type fakeSignupService struct {
	signupFunc func(ctx context.Context, creds domainauth.Credentials) (domainauth.CreatedAccount, error)
}

func (f *fakeSignupService) Signup(ctx context.Context, creds domainauth.Credentials) (domainauth.CreatedAccount, error) {
	return f.signupFunc(ctx, creds)
}

func TestSignupHandler_RegistersAccount(t *testing.T) {
	svc := &fakeSignupService{
		signupFunc: func(_ context.Context, creds domainauth.Credentials) (domainauth.CreatedAccount, error) {
			assert.Equal(t, domainauth.Credentials{
				Email:     "jane.doe@example.com",
				Password:  "Str0ng!Passw0rd",
				Role:      "reader",
				FirstName: "Jane",
				LastName:  "Doe",
			}, creds)
			return domainauth.CreatedAccount{
				UserID:      "auth0|new-user-1",
				Email:       creds.Email,
				DisplayName: "Jane Doe",
				Role:        "reader",
			}, nil
		},
	}
	router := NewRouter(RouterServices{Signup: svc})

	rec := doJSON(t, router, http.MethodPost, "/api/signup",
		`{"email":"jane.doe@example.com","password":"Str0ng!Passw0rd","role":"reader","first_name":"Jane","last_name":"Doe"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "User registered successfully", body["message"])
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "auth0|new-user-1", data["user_id"])
	assert.Equal(t, "Jane Doe", data["display_name"])
}

func TestSignupHandler_DuplicateEmail(t *testing.T) {
	svc := &fakeSignupService{
		signupFunc: func(context.Context, domainauth.Credentials) (domainauth.CreatedAccount, error) {
			return domainauth.CreatedAccount{}, apperrors.DuplicateAccount("User with this email already exists.")
		},
	}
	router := NewRouter(RouterServices{Signup: svc})

	rec := doJSON(t, router, http.MethodPost, "/api/signup",
		`{"email":"jane.doe@example.com","password":"Str0ng!Passw0rd","first_name":"Jane"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "duplicate_account", body["error"])
	assert.Equal(t, "User with this email already exists.", body["message"])
}

func TestSignupHandler_InvalidRole(t *testing.T) {
	svc := &fakeSignupService{
		signupFunc: func(context.Context, domainauth.Credentials) (domainauth.CreatedAccount, error) {
			return domainauth.CreatedAccount{}, apperrors.InvalidRole("Invalid role specified.")
		},
	}
	router := NewRouter(RouterServices{Signup: svc})

	rec := doJSON(t, router, http.MethodPost, "/api/signup",
		`{"email":"jane.doe@example.com","password":"Str0ng!Passw0rd","first_name":"Jane","role":"superuser"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_role", decodeBody(t, rec)["error"])
}

func TestSignupHandler_EnrollmentFailure(t *testing.T) {
	svc := &fakeSignupService{
		signupFunc: func(context.Context, domainauth.Credentials) (domainauth.CreatedAccount, error) {
			return domainauth.CreatedAccount{}, apperrors.New(apperrors.ErrCodeMFAEnrollment, "MFA enrollment failed")
		},
	}
	router := NewRouter(RouterServices{Signup: svc})

	rec := doJSON(t, router, http.MethodPost, "/api/signup",
		`{"email":"jane.doe@example.com","password":"Str0ng!Passw0rd","first_name":"Jane"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "mfa_enrollment_failed", decodeBody(t, rec)["error"])
}
