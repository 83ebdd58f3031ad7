package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/alkira/auth-gateway/internal/domain/auth"
	apperrors "github.com/alkira/auth-gateway/internal/errors"
	"github.com/alkira/auth-gateway/internal/service"
)

type fakeProfileService struct {
	profileFunc func(ctx context.Context, accessToken string) (domainauth.Profile, error)
	updateFunc  func(ctx context.Context, in service.UpdateProfileInput) error
	rolesFunc   func(ctx context.Context, accessToken string) ([]string, error)
}

func (f *fakeProfileService) Profile(ctx context.Context, accessToken string) (domainauth.Profile, error) {
	return f.profileFunc(ctx, accessToken)
}

func (f *fakeProfileService) UpdateProfile(ctx context.Context, in service.UpdateProfileInput) error {
	return f.updateFunc(ctx, in)
}

func (f *fakeProfileService) Roles(ctx context.Context, accessToken string) ([]string, error) {
	return f.rolesFunc(ctx, accessToken)
}

func doBearer(t *testing.T, handler http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestProfileHandler_Get(t *testing.T) {
	svc := &fakeProfileService{
		profileFunc: func(_ context.Context, accessToken string) (domainauth.Profile, error) {
			assert.Equal(t, "access-token", accessToken)
			return domainauth.Profile{Email: "jane.doe@example.com", FullName: "Jane Doe"}, nil
		},
	}
	router := NewRouter(RouterServices{Profile: svc})

	rec := doBearer(t, router, http.MethodGet, "/api/profile", "access-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "jane.doe@example.com", body["email"])
	assert.Equal(t, "Jane Doe", body["full_name"])
}

func TestProfileHandler_MissingAuthorization(t *testing.T) {
	router := NewRouter(RouterServices{Profile: &fakeProfileService{}})

	for _, path := range []string{"/api/profile", "/api/roles"} {
		rec := doBearer(t, router, http.MethodGet, path, "", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code, path)
		body := decodeBody(t, rec)
		assert.Equal(t, "unauthorized", body["error"])
		assert.Equal(t, "Authorization header is missing.", body["message"])
	}
}

func TestProfileHandler_RejectsNonBearerScheme(t *testing.T) {
	router := NewRouter(RouterServices{Profile: &fakeProfileService{}})

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileHandler_Update(t *testing.T) {
	svc := &fakeProfileService{
		updateFunc: func(_ context.Context, in service.UpdateProfileInput) error {
			assert.Equal(t, service.UpdateProfileInput{
				AccessToken: "access-token",
				FirstName:   "Jane",
				LastName:    "Smith",
			}, in)
			return nil
		},
	}
	router := NewRouter(RouterServices{Profile: svc})

	rec := doBearer(t, router, http.MethodPatch, "/api/profile", "access-token",
		`{"first_name":"Jane","last_name":"Smith"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "Jane", body["first_name"])
	assert.Equal(t, "Smith", body["last_name"])
}

func TestProfileHandler_UpdateExpiredToken(t *testing.T) {
	svc := &fakeProfileService{
		updateFunc: func(context.Context, service.UpdateProfileInput) error {
			return apperrors.Unauthorized("Invalid or expired token.")
		},
	}
	router := NewRouter(RouterServices{Profile: svc})

	rec := doBearer(t, router, http.MethodPatch, "/api/profile", "expired", `{"first_name":"Jane"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired token.", decodeBody(t, rec)["message"])
}

func TestProfileHandler_Roles(t *testing.T) {
	svc := &fakeProfileService{
		rolesFunc: func(_ context.Context, accessToken string) ([]string, error) {
			assert.Equal(t, "access-token", accessToken)
			return []string{"admin", "reader"}, nil
		},
	}
	router := NewRouter(RouterServices{Profile: svc})

	rec := doBearer(t, router, http.MethodGet, "/api/roles", "access-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, []any{"admin", "reader"}, body["roles"])
}

func TestProfileHandler_RolesEmpty(t *testing.T) {
	svc := &fakeProfileService{
		rolesFunc: func(context.Context, string) ([]string, error) {
			return []string{}, nil
		},
	}
	router := NewRouter(RouterServices{Profile: svc})

	rec := doBearer(t, router, http.MethodGet, "/api/roles", "access-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []any{}, decodeBody(t, rec)["roles"])
}
