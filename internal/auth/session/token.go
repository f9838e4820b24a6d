// Package session issues and verifies the signed tokens carried by the
// browser session cookie. Tokens are Ed25519 JWTs whose jti names the
// durable session record and whose sub names the user.
package session

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/louisbranch/dronline.health/internal/platform/errors"
)

// ErrTokenInvalid covers every unusable token: bad signature, wrong alg,
// wrong issuer or audience, expired, or malformed.
var ErrTokenInvalid = apperrors.New(apperrors.CodeAuthSessionTokenInvalid, "session token is invalid")

// signerEnv holds raw env values before post-parse validation.
type signerEnv struct {
	Issuer     string        `env:"DRONLINE_SESSION_ISSUER"      envDefault:"dronline.health"`
	Audience   string        `env:"DRONLINE_SESSION_AUDIENCE"    envDefault:"dronline.health/web"`
	PrivateKey string        `env:"DRONLINE_SESSION_PRIVATE_KEY"`
	TTL        time.Duration `env:"DRONLINE_SESSION_TTL"         envDefault:"168h"`
}

// Signer signs and verifies session tokens with one Ed25519 key pair.
type Signer struct {
	issuer   string
	audience string
	key      ed25519.PrivateKey
	ttl      time.Duration
	now      func() time.Time
}

// Claims carries the validated contents of a session token.
type Claims struct {
	SessionID string
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// LoadSignerFromEnv builds a Signer from environment configuration.
//
// When DRONLINE_SESSION_PRIVATE_KEY is unset a fresh key is generated, so
// sessions issued before a restart stop verifying. Set the key in any
// deployment that should survive restarts.
func LoadSignerFromEnv(now func() time.Time) (*Signer, error) {
	var raw signerEnv
	if err := env.Parse(&raw); err != nil {
		return nil, fmt.Errorf("parse session signer env: %w", err)
	}
	issuer := strings.TrimSpace(raw.Issuer)
	audience := strings.TrimSpace(raw.Audience)
	if issuer == "" {
		return nil, fmt.Errorf("DRONLINE_SESSION_ISSUER is required")
	}
	if audience == "" {
		return nil, fmt.Errorf("DRONLINE_SESSION_AUDIENCE is required")
	}
	if raw.TTL <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}

	var key ed25519.PrivateKey
	if privateKey := strings.TrimSpace(raw.PrivateKey); privateKey != "" {
		keyBytes, err := decodeBase64(privateKey)
		if err != nil {
			return nil, fmt.Errorf("decode session private key: %w", err)
		}
		if len(keyBytes) != ed25519.PrivateKeySize {
			return nil, fmt.Errorf("session private key must be %d bytes", ed25519.PrivateKeySize)
		}
		key = ed25519.PrivateKey(keyBytes)
	} else {
		_, generated, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("generate session key: %w", err)
		}
		key = generated
	}

	return NewSigner(issuer, audience, key, raw.TTL, now)
}

// NewSigner builds a Signer from explicit parts.
func NewSigner(issuer, audience string, key ed25519.PrivateKey, ttl time.Duration, now func() time.Time) (*Signer, error) {
	if strings.TrimSpace(issuer) == "" || strings.TrimSpace(audience) == "" {
		return nil, errors.New("session signer issuer and audience are required")
	}
	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("session private key must be %d bytes", ed25519.PrivateKeySize)
	}
	if ttl <= 0 {
		return nil, errors.New("session ttl must be positive")
	}
	if now == nil {
		now = time.Now
	}
	return &Signer{
		issuer:   issuer,
		audience: audience,
		key:      key,
		ttl:      ttl,
		now:      now,
	}, nil
}

// TTL returns the lifetime applied to issued tokens.
func (s *Signer) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token binding a session record to a user.
func (s *Signer) Issue(sessionID, userID string) (string, time.Time, error) {
	if s == nil || len(s.key) != ed25519.PrivateKeySize {
		return "", time.Time{}, errors.New("session signer is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	userID = strings.TrimSpace(userID)
	if sessionID == "" || userID == "" {
		return "", time.Time{}, errors.New("session id and user id are required")
	}

	issuedAt := s.now().UTC()
	expiresAt := issuedAt.Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, jwt.RegisteredClaims{
		Issuer:    s.issuer,
		Audience:  jwt.ClaimStrings{s.audience},
		Subject:   userID,
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString(s.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks a token's signature and claims against this signer.
func (s *Signer) Verify(token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, ErrTokenInvalid
	}
	if s == nil || len(s.key) != ed25519.PrivateKeySize {
		return Claims{}, errors.New("session signer is not configured")
	}

	var parsed jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(token *jwt.Token) (any, error) {
		return s.key.Public(), nil
	},
		jwt.WithValidMethods([]string{"EdDSA"}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return Claims{}, ErrTokenInvalid
	}

	if parsed.Issuer != s.issuer {
		return Claims{}, ErrTokenInvalid
	}
	if !audienceContains(parsed.Audience, s.audience) {
		return Claims{}, ErrTokenInvalid
	}
	if parsed.ID == "" || parsed.Subject == "" {
		return Claims{}, ErrTokenInvalid
	}
	if parsed.ExpiresAt == nil {
		return Claims{}, ErrTokenInvalid
	}

	now := s.now().UTC()
	exp := parsed.ExpiresAt.Time.UTC()
	if !exp.After(now) {
		return Claims{}, ErrTokenInvalid
	}

	claims := Claims{
		SessionID: parsed.ID,
		UserID:    parsed.Subject,
		ExpiresAt: exp,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time.UTC()
	}
	return claims, nil
}

// audienceContains reports whether the audience list contains the given value.
func audienceContains(aud jwt.ClaimStrings, value string) bool {
	for _, item := range aud {
		if item == value {
			return true
		}
	}
	return false
}

func decodeBase64(value string) ([]byte, error) {
	if value == "" {
		return nil, errors.New("empty base64 value")
	}
	decoded, err := base64.RawStdEncoding.DecodeString(value)
	if err == nil {
		return decoded, nil
	}
	return base64.StdEncoding.DecodeString(value)
}
