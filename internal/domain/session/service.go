package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/exp/slog"
)

// Identity — атрибуты аутентифицированного пациента, привязанные к токену.
// Ничего секретного здесь храниться не должно: токен уходит клиенту в cookie.
type Identity struct {
	AccountID   string
	PatientName string
}

type Servicer interface {
	Create(ctx context.Context, id Identity) (string, error)
	Validate(ctx context.Context, token string) (Identity, error)
	Clear(ctx context.Context, token string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

func (s *Service) Create(ctx context.Context, id Identity) (string, error) {
	// Генерация токена
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}

	token := base64.URLEncoding.EncodeToString(tokenBytes)
	if err := s.repo.Save(ctx, hashToken(token), id); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	return token, nil
}

func (s *Service) Validate(ctx context.Context, token string) (Identity, error) {
	return s.repo.Find(ctx, hashToken(token))
}

func (s *Service) Clear(ctx context.Context, token string) error {
	return s.repo.Delete(ctx, hashToken(token))
}

// В хранилище попадает только sha256 от токена, сам токен живет в cookie.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
