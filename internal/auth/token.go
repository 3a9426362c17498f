package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrNoSecret = errors.New("auth: admin token is not configured")

// Verifier checks bearer tokens against the configured admin secret, held
// either in plain text or as a bcrypt hash.
type Verifier struct {
	token []byte
	hash  []byte
}

// NewVerifier prefers the bcrypt hash when both are set.
func NewVerifier(token, bcryptHash string) (*Verifier, error) {
	switch {
	case bcryptHash != "":
		if _, err := bcrypt.Cost([]byte(bcryptHash)); err != nil {
			return nil, err
		}
		return &Verifier{hash: []byte(bcryptHash)}, nil
	case token != "":
		return &Verifier{token: []byte(token)}, nil
	default:
		return nil, ErrNoSecret
	}
}

func (v *Verifier) Verify(candidate string) bool {
	if candidate == "" {
		return false
	}
	if v.hash != nil {
		return bcrypt.CompareHashAndPassword(v.hash, []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare(v.token, []byte(candidate)) == 1
}

// HashToken produces the value to put in ADMIN_TOKEN_BCRYPT.
func HashToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
