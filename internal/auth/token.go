package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rajit909/portfolio-api/internal/model"
	"go.uber.org/zap"
)

// ErrNoSecret indicates the signing secret is missing from the
// configuration. This is a startup-class condition: token issuance is
// impossible and the gate locks protected routes closed.
var ErrNoSecret = errors.New("auth: signing secret is not configured")

const DefaultTokenTTL = 24 * time.Hour

// identityClaims is the only token payload shape in the system: the
// registered claims plus name and email. Subject carries the user id.
type identityClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Issuer produces signed identity tokens with a fixed expiry.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret []byte, ttl time.Duration) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Issuer{secret: secret, ttl: ttl, now: time.Now}, nil
}

// Issue signs a token asserting the given identity, valid from now
// until now+ttl.
func (i *Issuer) Issue(id, name, email string) (string, error) {
	now := i.now()
	claims := identityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Name:  name,
		Email: email,
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("token signing failed: %w", err)
	}
	return tokenString, nil
}

// Verifier validates presented tokens. All failure modes — malformed
// token, bad signature, expiry, missing claims, unconfigured secret —
// collapse to ok=false so callers cannot distinguish them.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

func NewVerifier(secret []byte) *Verifier {
	return &Verifier{secret: secret, now: time.Now}
}

// Configured reports whether a signing secret is present. An
// unconfigured verifier rejects everything.
func (v *Verifier) Configured() bool {
	return len(v.secret) > 0
}

// Verify validates signature and expiry and extracts the identity.
// The cause of a failure is logged at debug level only; the caller
// sees a uniform "unauthenticated".
func (v *Verifier) Verify(raw string) (*model.Identity, bool) {
	if !v.Configured() || raw == "" {
		return nil, false
	}

	claims := &identityClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithTimeFunc(v.now))
	if err != nil || !token.Valid {
		zap.L().Debug("Token verification failed", zap.Error(err))
		return nil, false
	}

	// A valid signature is not enough: all three identity claims must
	// be present.
	if claims.Subject == "" || claims.Name == "" || claims.Email == "" {
		zap.L().Debug("Token missing required identity claims")
		return nil, false
	}

	return &model.Identity{
		ID:    claims.Subject,
		Name:  claims.Name,
		Email: claims.Email,
	}, true
}
