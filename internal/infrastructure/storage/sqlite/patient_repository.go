package sqlite

import (
	"context"
	"fmt"

	"diascreen/internal/domain/patient"

	"golang.org/x/exp/slog"
)

type PatientRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewPatientRepository(storage *Storage, log *slog.Logger) *PatientRepository {
	return &PatientRepository{
		storage: storage,
		log:     log,
	}
}

func (r *PatientRepository) Append(ctx context.Context, acc patient.Account) error {
	_, err := r.storage.DB().ExecContext(ctx,
		`INSERT INTO patients_register (patient_name, age, address, mobile, problem, user_id, password)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		acc.Name, acc.Age, acc.Address, acc.Mobile, acc.Problem, acc.UserID, acc.Password)
	if err != nil {
		return fmt.Errorf("insert registration: %w", err)
	}
	return nil
}

func (r *PatientRepository) All(ctx context.Context) ([]patient.Account, error) {
	rows, err := r.storage.DB().QueryContext(ctx,
		`SELECT patient_name, age, address, mobile, problem, user_id, password
		 FROM patients_register ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select registrations: %w", err)
	}
	defer rows.Close()

	var accounts []patient.Account
	for rows.Next() {
		var acc patient.Account
		if err := rows.Scan(&acc.Name, &acc.Age, &acc.Address, &acc.Mobile, &acc.Problem, &acc.UserID, &acc.Password); err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate registrations: %w", err)
	}
	return accounts, nil
}
