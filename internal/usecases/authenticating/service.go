// Package authenticating valida as credenciais opcionais das rotas de escrita:
// token JWT (HS256) ou chave de API conferida contra um hash bcrypt.
package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/analytics-forge-api/internal/config"
	"github.com/vfg2006/analytics-forge-api/internal/domain"
	"github.com/vfg2006/analytics-forge-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const DefaultTokenTTL = 24 * time.Hour

type Authenticator interface {
	Enabled() bool
	GenerateToken(client string, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
	CheckAPIKey(key string) error
}

type Service struct {
	cfg config.Auth
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		cfg: cfg.Auth,
	}
}

func (s *Service) Enabled() bool {
	return s.cfg.Enabled
}

// GenerateToken emite um token para o cliente; ttl <= 0 usa 24h
func (s *Service) GenerateToken(client string, ttl time.Duration) (string, error) {
	if s.cfg.Secret == "" {
		return "", ErrAuthNotConfigured
	}

	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	now := time.Now()
	claims := domain.Claims{
		Client: client,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   client,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
}

// CheckAPIKey compara a chave com AUTH_API_KEY_HASH
func (s *Service) CheckAPIKey(key string) error {
	if s.cfg.APIKeyHash == "" {
		return NewAuthError(ErrAuthNotConfigured, apiErrors.ErrInvalidCredentials, "AUTH_API_KEY_HASH não configurado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.APIKeyHash), []byte(strings.TrimSpace(key))); err != nil {
		return NewAuthError(ErrInvalidAPIKey, apiErrors.ErrInvalidCredentials, "")
	}

	return nil
}

// HashAPIKey gera o hash bcrypt a ser colocado em AUTH_API_KEY_HASH
func HashAPIKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrMissingCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar hash da chave: %w", err)
	}

	return string(hashed), nil
}
