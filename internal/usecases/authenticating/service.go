// Package authenticating controla o acesso ao dashboard: valida a
// chave de acesso compartilhada e emite os tokens de sessão.
package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kipmadden/car-sales-dashboard-api/internal/config"
	"github.com/kipmadden/car-sales-dashboard-api/internal/domain"
	"github.com/kipmadden/car-sales-dashboard-api/internal/usecases/session"
	"github.com/kipmadden/car-sales-dashboard-api/pkg/apiErrors"
)

type Authenticator interface {
	CreateSession(accessKey string) (string, *domain.SessionSnapshot, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg      *config.Config
	sessions session.Service
}

func NewService(cfg *config.Config, sessions session.Service) Authenticator {
	return &Service{
		cfg:      cfg,
		sessions: sessions,
	}
}

// CreateSession valida a chave de acesso e cria uma sessão nova do
// dashboard, retornando o token e o snapshot inicial. Sem hash
// configurado o acesso fica liberado para desenvolvimento local.
func (s *Service) CreateSession(accessKey string) (string, *domain.SessionSnapshot, error) {
	hash := s.cfg.Auth.AccessKeyHash
	if hash != "" {
		if accessKey == "" {
			return "", nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "A chave de acesso é obrigatória")
		}

		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(accessKey)); err != nil {
			return "", nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Chave de acesso incorreta")
		}
	}

	snapshot, err := s.sessions.Create()
	if err != nil {
		return "", nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao criar a sessão do dashboard")
	}

	token, err := generateJWT(snapshot.ID, s.cfg.Auth)
	if err != nil {
		return "", nil, NewSessionAuthError(err, apiErrors.ErrInternalServer, snapshot.ID, "Erro ao gerar o token de sessão")
	}

	return token, snapshot, nil
}

func generateJWT(sessionID string, cfg config.Auth) (string, error) {
	claims := domain.Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.TokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken verifica a assinatura e a validade do token de sessão
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "O token de sessão expirou")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	} else {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "token inválido")
	}
}
