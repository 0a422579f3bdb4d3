package utils // package utils provides helper functions for password hashing and token issuing

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// SessionTokenTTL is the fixed lifetime of an issued session token. There
// is no refresh or revocation flow: a token stays valid until this expiry
// regardless of later account changes.
const SessionTokenTTL = time.Hour

// ErrInvalidToken is returned by ParseSessionToken for tokens whose
// signature, signing method or expiry does not check out.
var ErrInvalidToken = errors.New("invalid session token")

// SessionToken represents a signed JWT session token along with its
// expiry. The Token field contains the serialized JWT string; Exp stores
// the UTC expiration time. Tokens are never persisted server-side.
type SessionToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewSessionToken builds and signs an HS256 JWT for a user. The payload
// carries the user identity as the subject claim plus the standard
// expiration (exp, one hour out) and issued-at (iat) claims. The secret
// must match the one consumers use for verification.
func NewSessionToken(secret string, userID uint64) (SessionToken, error) {
	now := time.Now().UTC()
	exp := now.Add(SessionTokenTTL)
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return SessionToken{}, err
	}
	return SessionToken{Token: signed, Exp: exp}, nil
}

// ParseSessionToken verifies a session token's signature and expiry and
// returns the embedded user identity. Consumers must reject anything this
// function rejects: a foreign signing method, a bad signature or a token
// past its expiry.
func ParseSessionToken(secret, raw string) (uint64, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return 0, ErrInvalidToken
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return id, nil
}
