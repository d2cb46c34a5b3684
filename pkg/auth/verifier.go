package auth

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/locallibrary/catalog/pkg/config"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the cost factor used by HashKey.
const BcryptCost = 12

var errInvalidCredential = errors.New("invalid credential")

// Verifier decides whether a credential presented by a caller grants write
// access. Implementations must not distinguish between kinds of failure in
// the error they return.
type Verifier interface {
	Verify(ctx context.Context, credential string) error
}

// StaticKeyVerifier accepts exactly one pre-shared key.
type StaticKeyVerifier struct {
	key []byte
}

func NewStaticKeyVerifier(key string) *StaticKeyVerifier {
	return &StaticKeyVerifier{key: []byte(key)}
}

func (v *StaticKeyVerifier) Verify(_ context.Context, credential string) error {
	if len(v.key) == 0 || subtle.ConstantTimeCompare(v.key, []byte(credential)) != 1 {
		return errInvalidCredential
	}
	return nil
}

// HashedKeyVerifier accepts the key whose bcrypt hash it holds.
type HashedKeyVerifier struct {
	hash []byte
}

func NewHashedKeyVerifier(hash string) *HashedKeyVerifier {
	return &HashedKeyVerifier{hash: []byte(hash)}
}

func (v *HashedKeyVerifier) Verify(_ context.Context, credential string) error {
	if credential == "" {
		return errInvalidCredential
	}
	if err := bcrypt.CompareHashAndPassword(v.hash, []byte(credential)); err != nil {
		return errInvalidCredential
	}
	return nil
}

// JWTVerifier accepts HS256 tokens signed with its secret. Expiry and
// not-before claims are honored when present.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(_ context.Context, credential string) error {
	token, err := jwt.ParseWithClaims(credential, &jwt.RegisteredClaims{}, func(_ *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return errInvalidCredential
	}
	return nil
}

// IssueToken signs a token that JWTVerifier with the same secret accepts. A
// zero ttl produces a token without expiry.
func IssueToken(secret, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", errors.WithStack(err)
	}
	return signed, nil
}

// HashKey hashes a key for use as the api_key_hash config value.
func HashKey(key string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(key), BcryptCost)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(hashed), nil
}

// NewVerifier builds the verifier selected by cfg.AuthMode.
func NewVerifier(cfg *config.Config) (Verifier, error) {
	switch cfg.AuthMode {
	case config.AuthModeStatic:
		return NewStaticKeyVerifier(cfg.APIKey), nil
	case config.AuthModeHashed:
		return NewHashedKeyVerifier(cfg.APIKeyHash), nil
	case config.AuthModeJWT:
		return NewJWTVerifier(cfg.JWTSecret), nil
	default:
		return nil, errors.Errorf("unknown auth mode %q", cfg.AuthMode)
	}
}
