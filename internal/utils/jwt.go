package utils // package utils provides helpers for password hashing and session tokens

import (
    "errors" // sentinel errors for token verification failures
    "time"   // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// ErrInvalidToken is returned by ParseAccessToken for any token that
// fails verification: bad signature, malformed structure, unexpected
// signing method, or expiry.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the statements embedded in every session token.  The id
// and username identify the account; the registered claims carry the
// issued-at and expiry timestamps.  Tokens are stateless: the server
// keeps no record of them, so validity is purely signature + expiry.
type Claims struct {
    UserID   uint64 `json:"id"`       // account identifier
    Username string `json:"username"` // account display name
    jwt.RegisteredClaims
}

// AccessToken represents a signed JWT session token along with its
// expiry.  The Token field contains the serialized JWT string; Exp
// stores the UTC expiration time.  Clients send the token in the
// Authorization header when calling protected endpoints.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a user.  It takes
// the signing secret, the user ID, the username, and a TTL in minutes.
// The token embeds id, username, exp and iat.
func NewAccessToken(secret string, userID uint64, username string, ttlMin int) (AccessToken, error) {
    now := time.Now().UTC()
    exp := now.Add(time.Duration(ttlMin) * time.Minute)
    claims := Claims{
        UserID:   userID,
        Username: username,
        RegisteredClaims: jwt.RegisteredClaims{
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(exp),
        },
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies a raw token string against the secret and
// returns its claims.  Tokens signed with anything but HMAC are
// rejected, as are expired or tampered tokens.  All failure modes
// collapse into ErrInvalidToken so callers cannot leak the reason.
func ParseAccessToken(secret, raw string) (*Claims, error) {
    claims := &Claims{}
    tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return nil, ErrInvalidToken
    }
    return claims, nil
}
