// Package access выдаёт и проверяет админский capability-токен.
// Ключ администратора хранится только в виде bcrypt-хеша в конфигурации.
package access

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	scopeAdmin = "admin"
	issuer     = "tracker"
)

type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

type Session struct {
	Token     string
	ExpiresAt time.Time
}

type Service struct {
	keyHash []byte
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
}

func New(keyHash, secret string, ttl time.Duration) *Service {
	return &Service{
		keyHash: []byte(keyHash),
		secret:  []byte(secret),
		ttl:     ttl,
		now:     time.Now,
	}
}

// HashKey bcrypt-хеш ключа для переменной ADMIN_KEY_HASH.
func HashKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", ErrMissingRequiredFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash admin key: %w", err)
	}
	return string(hash), nil
}

// OpenSession проверяет ключ и выдаёт токен, привязанный к пользователю.
func (s *Service) OpenSession(actor, key string) (Session, error) {
	if strings.TrimSpace(actor) == "" || key == "" {
		return Session{}, ErrMissingRequiredFields
	}
	if len(s.keyHash) == 0 || len(s.secret) == 0 {
		return Session{}, ErrNotConfigured
	}

	if err := bcrypt.CompareHashAndPassword(s.keyHash, []byte(key)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return Session{}, ErrInvalidKey
		}
		return Session{}, fmt.Errorf("compare admin key: %w", err)
	}

	now := s.now()
	expires := now.Add(s.ttl)
	claims := &Claims{
		Scope: scopeAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   actor,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return Session{}, fmt.Errorf("sign admin token: %w", err)
	}
	return Session{Token: token, ExpiresAt: expires}, nil
}

// Authorize проверяет, что токен выдан этому же пользователю и не истёк.
func (s *Service) Authorize(actor, token string) error {
	if token == "" || len(s.secret) == 0 {
		return ErrInvalidToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithSubject(actor),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return ErrInvalidToken
	}
	if claims.Scope != scopeAdmin {
		return ErrInvalidToken
	}
	return nil
}
