package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/config"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/utils"
)

func newTestAuthSvc() AuthService {
	return NewAuthService(config.App{TokenSignKey: "sign-key", TokenIssuer: "plms"}, logger.Nop())
}

func TestAuthService_ParseToken_Valid(t *testing.T) {
	token, err := utils.GenerateJWTToken("plms", 17, time.Hour, "sign-key")
	require.NoError(t, err)

	parsed, err := newTestAuthSvc().ParseToken(context.Background(), token.String())

	require.NoError(t, err)
	assert.Equal(t, int64(17), parsed.UserID)
}

func TestAuthService_ParseToken_Rejected(t *testing.T) {
	wrongKey, _ := utils.GenerateJWTToken("plms", 17, time.Hour, "other-key")
	wrongIssuer, _ := utils.GenerateJWTToken("intruder", 17, time.Hour, "sign-key")
	expired, _ := utils.GenerateJWTToken("plms", 17, -time.Minute, "sign-key")

	tests := map[string]string{
		"wrong key":    wrongKey.String(),
		"wrong issuer": wrongIssuer.String(),
		"expired":      expired.String(),
		"garbage":      "garbage",
	}

	svc := newTestAuthSvc()
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
