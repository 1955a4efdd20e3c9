package service

import (
	"context"
	"fmt"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/config"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/utils"
	"github.com/yusufaslanargun/Personal-Library-Management-System/models"
)

// authService verifies the bearer tokens presented on the local sync
// endpoints. Tokens are issued by the catalog application; this service only
// checks the signature, the issuer and the expiry.
type authService struct {
	// tokenSignKey is the HMAC secret used to verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the expected "iss" claim. Tokens from any other issuer
	// are rejected.
	tokenIssuer string

	logger *logger.Logger
}

func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.TokenSignKey,
		tokenIssuer:  cfg.TokenIssuer,
		logger:       logger,
	}
}

// ParseToken validates tokenString and returns the parsed token with its
// UserID populated from the "sub" claim.
//
// Returns ErrTokenIsExpiredOrInvalid (wrapped) when the signature, issuer,
// expiry or subject check fails.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}
