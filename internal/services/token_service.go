package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hikaru-dev/calc-forest-api/internal/models"
)

// ErrInvalidToken is returned for tokens that fail signature, structure, or
// expiry checks.
var ErrInvalidToken = errors.New("invalid token")

// TokenClaims is the identity a bearer token carries.
type TokenClaims struct {
	UserID   uint64 `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256-signed bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService. A ttl of 0 issues non-expiring
// tokens.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token for the given user.
func (s *TokenService) Issue(user *models.User) (string, error) {
	claims := &TokenClaims{
		UserID:   user.ID,
		Username: user.Username,
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies a token string and returns its claims. It rejects tokens
// signed with anything other than HMAC.
func (s *TokenService) Parse(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
