package services

import (
	"context"
	"time"

	"gin-shoplist/apperrors"
	"gin-shoplist/constants"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the single answer for every verification failure.
var ErrInvalidToken = apperrors.NewAuthentication(constants.ErrInvalidToken)

type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

type TokenIdentity struct {
	UserID string
	Role   string
}

type ITokenService interface {
	Issue(ctx context.Context, email string, password string) (*string, error)
	Verify(tokenString string) (*TokenIdentity, error)
}

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type TokenService struct {
	authService IAuthenticationService
	config      TokenConfig
	now         func() time.Time
}

func NewTokenService(authService IAuthenticationService, config TokenConfig) ITokenService {
	return &TokenService{authService: authService, config: config, now: time.Now}
}

// Issue は認証に失敗した場合 (nil, nil) を返す
func (s *TokenService) Issue(ctx context.Context, email string, password string) (*string, error) {
	result, err := s.authService.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, nil
	}

	if s.config.Secret == "" {
		return nil, apperrors.NewConfiguration("JWT_SECRET not set")
	}
	if s.config.TTL <= 0 {
		return nil, apperrors.NewConfiguration("JWT_TTL not set")
	}

	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Role: result.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   result.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
		},
	})

	tokenString, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return nil, err
	}
	return &tokenString, nil
}

func (s *TokenService) Verify(tokenString string) (*TokenIdentity, error) {
	if tokenString == "" {
		return nil, ErrInvalidToken
	}
	if s.config.Secret == "" {
		return nil, apperrors.NewConfiguration("JWT_SECRET not set")
	}

	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.config.Secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	if claims.Role != constants.RoleAdmin && claims.Role != constants.RoleUser {
		return nil, ErrInvalidToken
	}
	return &TokenIdentity{UserID: claims.Subject, Role: claims.Role}, nil
}
