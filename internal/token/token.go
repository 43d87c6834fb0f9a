// Package token extracts the display payload from a session token issued by
// the remote session service. The token is a compact three-segment record
// (payload in the middle, signature-like tail); the client never verifies
// the signature — it only trusts the backend-issued payload enough to show
// a name. Verification is the server's job.
package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken reports a token whose payload segment cannot be decoded.
// Callers treat it as "no session" rather than surfacing it to the user.
var ErrInvalidToken = errors.New("invalid token")

// Payload is the decoded, non-authoritative identity carried in the token.
type Payload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Decode parses the token without verifying its signature and returns the
// identity payload. Any structural or encoding problem yields
// ErrInvalidToken with the parser detail wrapped for diagnostics.
func Decode(raw string) (*Payload, error) {
	var p Payload
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &p); err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	return &p, nil
}
