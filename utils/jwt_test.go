package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(42, "ada@example.com")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.WithinDuration(t, claims.IssuedAt.Add(time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestTokenService_Verify(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	valid, err := svc.Issue(1, "a@example.com")
	require.NoError(t, err)

	expiredSvc := NewTokenService("test-secret", time.Hour)
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, err := expiredSvc.Issue(1, "a@example.com")
	require.NoError(t, err)

	otherSecret, err := NewTokenService("other-secret", time.Hour).Issue(1, "a@example.com")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: 1}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"valid token", valid, false},
		{"empty token", "", true},
		{"malformed token", "not.a.jwt", true},
		{"expired token", expired, true},
		{"wrong secret", otherSecret, true},
		{"alg none", noneToken, true},
		{"missing exp", noExpiry, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.Verify(tt.token)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidToken))
				assert.Nil(t, claims)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 1, claims.UserID)
		})
	}
}
