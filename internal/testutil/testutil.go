// Package testutil provides testing utilities and helpers for the auth gateway.
package testutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// testSigningKey signs throwaway tokens. The gateway never verifies
// signatures, so the key only needs to produce structurally valid JWTs.
var testSigningKey = []byte("test-signing-key")

// MakeToken builds a signed HS256 token carrying the given claims, for tests
// that exercise claim extraction from bearer tokens.
func MakeToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	mapClaims := jwt.MapClaims{
		"iss": "https://test.example.com/",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	for k, v := range claims {
		mapClaims[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	signed, err := token.SignedString(testSigningKey)
	require.NoError(t, err)
	return signed
}
