package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalid covers every way a session token can be unusable:
// bad signature, wrong algorithm, malformed, missing claims or expired.
// Callers only ever need to know "treat as not authenticated"
var ErrTokenInvalid = errors.New("token invalid")

const sessionTTL = time.Hour * 24 * 30

// TokenIssuer mints and verifies stateless session tokens. The signing
// secret is injected at construction and read-only afterwards
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    sessionTTL,
	}
}

// Mint creates a signed session token bound to userID. Expiry is not
// encoded in the token, it's enforced from iat at verify time
func (t *TokenIssuer) Mint(userID string) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     time.Now().Unix(),
	})

	return tok.SignedString(t.secret)
}

// Verify checks the signature and the 30 day validity window and
// returns the user ID the token is bound to. Any failure maps to
// ErrTokenInvalid
func (t *TokenIssuer) Verify(tokenStr string) (string, error) {
	tok, err := jwt.Parse(tokenStr, func(tk *jwt.Token) (interface{}, error) {
		if tk.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", tk.Method.Alg())
		}

		return t.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrTokenInvalid
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", ErrTokenInvalid
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return "", ErrTokenInvalid
	}

	if time.Now().After(time.Unix(int64(iat), 0).Add(t.ttl)) {
		return "", ErrTokenInvalid
	}

	return userID, nil
}
