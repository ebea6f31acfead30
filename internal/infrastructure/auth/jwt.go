package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"codergrounds/internal/domain/user"
	apperrors "codergrounds/internal/shared/errors"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the payload carried by both access and refresh tokens.
// TokenVersion is compared against the user's current version on refresh,
// which invalidates all outstanding refresh tokens when the version bumps.
type Claims struct {
	UserID       string `json:"userId"`
	Username     string `json:"username"`
	UserEmail    string `json:"userEmail"`
	TokenVersion int    `json:"tokenVersion"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenService signs and verifies JWT pairs. Access and refresh tokens use
// separate secrets, so a token can never be accepted for the wrong purpose.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// GeneratePair issues a fresh access/refresh token pair for the user,
// snapshotting the user's current token version into both tokens.
func (s *TokenService) GeneratePair(u *user.User) (*TokenPair, error) {
	now := time.Now().UTC()

	accessToken, err := s.sign(u, now, s.accessTTL, s.accessSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshToken, err := s.sign(u, now, s.refreshTTL, s.refreshSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

func (s *TokenService) sign(u *user.User, now time.Time, ttl time.Duration, secret []byte) (string, error) {
	claims := &Claims{
		UserID:       u.ID,
		Username:     u.Username,
		UserEmail:    u.Email,
		TokenVersion: u.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// VerifyAccess validates an access token and returns its claims.
func (s *TokenService) VerifyAccess(tokenString string) (*Claims, error) {
	return s.verify(tokenString, s.accessSecret, TokenTypeAccess)
}

// VerifyRefresh validates a refresh token and returns its claims.
func (s *TokenService) VerifyRefresh(tokenString string) (*Claims, error) {
	return s.verify(tokenString, s.refreshSecret, TokenTypeRefresh)
}

func (s *TokenService) verify(tokenString string, secret []byte, tokenType TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.NewTokenExpiredError(string(tokenType))
		}
		return nil, apperrors.NewTokenInvalidError(string(tokenType))
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.NewTokenInvalidError(string(tokenType))
	}

	return claims, nil
}

// RemainingTTL reports how long until the claims expire. Used to scope the
// revocation entry of a rotated refresh token to its natural lifetime.
func (s *TokenService) RemainingTTL(claims *Claims) time.Duration {
	if claims == nil || claims.ExpiresAt == nil {
		return 0
	}
	return time.Until(claims.ExpiresAt.Time)
}
