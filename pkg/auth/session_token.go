package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims binds a browser cookie to a server-side session id.
// The cookie proves nothing about the customer; the customer token
// from the booking API is the only real credential and is validated
// server-side by the API, never here.
type SessionClaims struct {
	SID string `json:"sid"`
	jwt.RegisteredClaims
}

func NewSessionToken(sid, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		SID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Audience:  []string{"retinue-web"},
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseSessionToken(tokenString, secret string) (string, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if claims, ok := tok.Claims.(*SessionClaims); ok && tok.Valid && claims.SID != "" {
		return claims.SID, nil
	}
	return "", errors.New("invalid session token")
}
