package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "plms"
	testSignKey = "secret-key"
)

// ── GenerateJWTToken ─────────────────────────────────────────────────────────

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 123, time.Hour, testSignKey)

	require.NoError(t, err)
	assert.NotEmpty(t, token.String())
	assert.Equal(t, int64(123), token.UserID)

	claims, ok := token.Token.Claims.(*jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, testIssuer, claims.Issuer)
	assert.Equal(t, "123", claims.Subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

// ── ValidateAndParseJWTToken ─────────────────────────────────────────────────

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, 456, 5*time.Minute, testSignKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)

	require.NoError(t, err)
	assert.Equal(t, int64(456), parsed.UserID)
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, _ := GenerateJWTToken(testIssuer, 1, time.Hour, testSignKey)
	expired, _ := GenerateJWTToken(testIssuer, 1, -time.Second, testSignKey)
	foreign, _ := GenerateJWTToken("someone-else", 1, time.Hour, testSignKey)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: testIssuer})
	noSubjectStr, err := noSubject.SignedString([]byte(testSignKey))
	require.NoError(t, err)

	textSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: testIssuer, Subject: "alice"})
	textSubjectStr, err := textSubject.SignedString([]byte(testSignKey))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		key   string
	}{
		{"wrong key", valid.SignedString, "wrong-key"},
		{"expired", expired.SignedString, testSignKey},
		{"wrong issuer", foreign.SignedString, testSignKey},
		{"malformed", "not.a.token", testSignKey},
		{"empty subject", noSubjectStr, testSignKey},
		{"non numeric subject", textSubjectStr, testSignKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, testIssuer)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Expired_WrapsJWTError(t *testing.T) {
	expired, _ := GenerateJWTToken(testIssuer, 1, -time.Second, testSignKey)

	_, err := ValidateAndParseJWTToken(expired.SignedString, testSignKey, testIssuer)

	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

// ── ParseBearerToken ─────────────────────────────────────────────────────────

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", false},
		{"bearer abc", "abc", false},
		{"  Bearer   abc  ", "abc", false},
		{"Basic abc", "", true},
		{"Bearer", "", true},
		{"Bearer ", "", true},
		{"abc", "", true},
		{"Bearer a b", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
