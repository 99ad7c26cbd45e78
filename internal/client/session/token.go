// Package session signs and verifies the token kept in the session marker.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/finboard/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the session owner. Username is the subject; UserID is the
// stable roster ID, which lets a reader notice a marker that outlived a rename.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

func (c *Claims) Username() string {
	return c.Subject
}

// GenerateToken signs an HS256 token for the user. A non-positive ttl means
// the token never expires.
func GenerateToken(userID, username string, secretKey []byte, ttl time.Duration, now time.Time) (string, error) {
	rc := jwt.RegisteredClaims{
		Subject:  username,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if ttl > 0 {
		rc.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{RegisteredClaims: rc, UserID: userID})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return tokenString, nil
}

// ParseToken verifies tokenString at the instant now and returns its claims.
// Expired tokens yield common.ErrTokenExpired; anything else unverifiable
// yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte, now time.Time) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if errors.Is(err, jwt.ErrTokenExpired) {
		return nil, common.ErrTokenExpired
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
