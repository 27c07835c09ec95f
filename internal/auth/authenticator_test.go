package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticAuthenticatorLogin(t *testing.T) {
	a := NewStaticAuthenticator("admin", "password123", "fake-admin-token")

	token, err := a.Login("admin", "password123")
	require.NoError(t, err)
	assert.Equal(t, "fake-admin-token", token)
}

func TestStaticAuthenticatorRejectsBadCredentials(t *testing.T) {
	a := NewStaticAuthenticator("admin", "password123", "fake-admin-token")

	cases := []struct{ username, password string }{
		{"admin", "wrong"},
		{"someone", "password123"},
		{"", ""},
	}
	for _, tc := range cases {
		_, err := a.Login(tc.username, tc.password)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestJWTAuthenticatorIssuesValidToken(t *testing.T) {
	a := NewJWTAuthenticator("admin", "password123", "test-secret")

	token, err := a.Login("admin", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := a.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTAuthenticatorRejectsBadCredentials(t *testing.T) {
	a := NewJWTAuthenticator("admin", "password123", "test-secret")

	_, err := a.Login("admin", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestJWTAuthenticatorRejectsForeignToken(t *testing.T) {
	a := NewJWTAuthenticator("admin", "password123", "test-secret")
	b := NewJWTAuthenticator("admin", "password123", "other-secret")

	token, err := b.Login("admin", "password123")
	require.NoError(t, err)

	_, err = a.ValidateToken(token)
	assert.Error(t, err)
}
