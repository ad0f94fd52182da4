package security

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "a-very-long-test-secret"

func TestSessionTokens_RoundTrip(t *testing.T) {
	m, err := NewSessionTokens(secret)
	require.NoError(t, err)

	token, err := m.Generate("sid-1", "admin-1", time.Now().Add(time.Hour))
	require.NoError(t, err)

	sid, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", sid)
}

func TestSessionTokens_Rejects(t *testing.T) {
	m, err := NewSessionTokens(secret)
	require.NoError(t, err)
	other, err := NewSessionTokens("another-long-test-secret")
	require.NoError(t, err)

	valid, err := m.Generate("sid", "admin", time.Now().Add(time.Hour))
	require.NoError(t, err)
	expired, err := m.Generate("sid", "admin", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	foreign, err := other.Generate("sid", "admin", time.Now().Add(time.Hour))
	require.NoError(t, err)

	// подпись ключом из hkdf, а не сырым секретом
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": "sid", "iss": issuer, "type": "session", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sid": "sid", "iss": issuer, "type": "session", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "tampered", token: valid[:strings.LastIndex(valid, ".")+1] + strings.Repeat("A", 43)},
		{name: "expired", token: expired},
		{name: "other secret", token: foreign},
		{name: "raw secret", token: raw},
		{name: "alg none", token: noneAlg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Validate(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestNewSessionTokens_ShortSecret(t *testing.T) {
	_, err := NewSessionTokens("short")
	assert.Error(t, err)
}
