package patient

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// maxIDAttempts ограничивает число перегенераций UserID в strict-режиме.
const maxIDAttempts = 5

type Servicer interface {
	Register(ctx context.Context, req RegisterRequest) (Credentials, error)
	Authenticate(ctx context.Context, userID, password string) (Account, error)
}

type Service struct {
	repo   Repository
	strict bool
	log    *slog.Logger
}

func NewService(repo Repository, strict bool, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		strict: strict,
		log:    log,
	}
}

// Register генерирует учетные данные, сохраняет аккаунт и возвращает
// открытый пароль — единственный момент, когда он виден.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (Credentials, error) {
	if err := validateRegister(req); err != nil {
		s.log.Debug("validation failed", "name", req.Name, "error", err)
		return Credentials{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	userID, err := s.newAccountID(ctx)
	if err != nil {
		return Credentials{}, err
	}

	password, err := GeneratePassword()
	if err != nil {
		return Credentials{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Credentials{}, fmt.Errorf("hash password: %w", err)
	}

	acc := Account{
		Name:     req.Name,
		Age:      req.Age,
		Address:  req.Address,
		Mobile:   req.Mobile,
		Problem:  req.Problem,
		UserID:   userID,
		Password: string(hash),
	}

	if err := s.repo.Append(ctx, acc); err != nil {
		return Credentials{}, fmt.Errorf("save registration: %w", err)
	}

	return Credentials{UserID: userID, Password: password}, nil
}

// Authenticate ищет аккаунт линейным проходом по всем строкам таблицы.
// Пустая таблица — отдельная ошибка ErrNoAccounts, несовпадение логина и
// несовпадение пароля неразличимы для вызывающего.
func (s *Service) Authenticate(ctx context.Context, userID, password string) (Account, error) {
	accounts, err := s.repo.All(ctx)
	if err != nil {
		return Account{}, fmt.Errorf("load registrations: %w", err)
	}

	if len(accounts) == 0 {
		return Account{}, ErrNoAccounts
	}

	for _, acc := range accounts {
		if acc.UserID != userID {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(acc.Password), []byte(password)) == nil {
			return acc, nil
		}
	}

	return Account{}, ErrInvalidCredentials
}

// Exists сообщает, есть ли аккаунт с таким UserID в таблице регистраций.
func (s *Service) Exists(ctx context.Context, userID string) (bool, error) {
	accounts, err := s.repo.All(ctx)
	if err != nil {
		return false, fmt.Errorf("load registrations: %w", err)
	}

	for _, acc := range accounts {
		if acc.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *Service) newAccountID(ctx context.Context) (string, error) {
	if !s.strict {
		return GenerateAccountID()
	}

	accounts, err := s.repo.All(ctx)
	if err != nil {
		return "", fmt.Errorf("load registrations: %w", err)
	}

	taken := make(map[string]struct{}, len(accounts))
	for _, acc := range accounts {
		taken[acc.UserID] = struct{}{}
	}

	for range maxIDAttempts {
		userID, err := GenerateAccountID()
		if err != nil {
			return "", err
		}
		if _, ok := taken[userID]; !ok {
			return userID, nil
		}
	}

	return "", ErrDuplicateID
}

func validateRegister(req RegisterRequest) error {
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if req.Age <= 0 {
		return fmt.Errorf("age is required")
	}
	if req.Address == "" {
		return fmt.Errorf("address is required")
	}
	if req.Mobile == "" {
		return fmt.Errorf("mobile is required")
	}
	if req.Problem == "" {
		return fmt.Errorf("problem is required")
	}
	return nil
}
