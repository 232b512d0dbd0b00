package prediction

import (
	"context"
	"fmt"

	"diascreen/internal/domain/session"
	"diascreen/internal/inference"

	"golang.org/x/exp/slog"
)

// Predictor — то, что умеют пре-фит артефакты: вектор признаков → исход.
type Predictor interface {
	Predict(f inference.Features) inference.Outcome
}

// AccountChecker нужен только в strict-режиме для проверки, что UserID из
// сессии все еще существует в таблице регистраций.
type AccountChecker interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

type Servicer interface {
	Predict(ctx context.Context, id session.Identity, f inference.Features) (inference.Outcome, error)
}

type Service struct {
	repo      Repository
	predictor Predictor
	accounts  AccountChecker
	strict    bool
	log       *slog.Logger
}

func NewService(repo Repository, predictor Predictor, accounts AccountChecker, strict bool, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		predictor: predictor,
		accounts:  accounts,
		strict:    strict,
		log:       log,
	}
}

// Predict прогоняет признаки через классификатор и дописывает строку в
// таблицу предсказаний. Сам вызов инференса чисто вычислительный, вся
// ошибка может прийти только из хранилища.
func (s *Service) Predict(ctx context.Context, id session.Identity, f inference.Features) (inference.Outcome, error) {
	if s.strict {
		ok, err := s.accounts.Exists(ctx, id.AccountID)
		if err != nil {
			return "", fmt.Errorf("check account: %w", err)
		}
		if !ok {
			return "", ErrUnknownAccount
		}
	}

	outcome := s.predictor.Predict(f)

	rec := Record{
		UserID:      id.AccountID,
		PatientName: id.PatientName,
		Glucose:     f.Glucose,
		BMI:         f.BMI,
		Age:         f.Age,
		Result:      string(outcome),
	}

	if err := s.repo.Append(ctx, rec); err != nil {
		return "", fmt.Errorf("save prediction: %w", err)
	}

	s.log.Debug("prediction saved", "user_id", id.AccountID, "result", outcome)

	return outcome, nil
}
