package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/userdir/user-directory-api/internal/core/domain"
	"github.com/userdir/user-directory-api/internal/core/ports"
)

const defaultTokenTTL = time.Hour

// tokenClaims is the wire shape of an issued token: the subject id and
// display name plus the registered issued-at/expiry claims.
type tokenClaims struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-bounded identity tokens.
// Tokens are stateless: nothing is persisted, and a token stays valid until
// its natural expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting the given subject id and display name.
func (s *TokenService) Issue(userID, name string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID: userID,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify validates signature and expiry and returns the asserted claims.
// Expired tokens fail with domain.ErrExpiredToken; anything else malformed,
// unsigned, or signed with the wrong key fails with domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrExpiredToken
		}
		return nil, domain.ErrInvalidToken
	}
	if !parsed.Valid || claims.UserID == "" {
		return nil, domain.ErrInvalidToken
	}
	return &ports.TokenClaims{UserID: claims.UserID, Name: claims.Name}, nil
}
