package sheet

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"diascreen/internal/domain/patient"

	"golang.org/x/exp/slog"
)

const registerFile = "patients_register.csv"

// Колонки исходной регистрационной книги.
var registerHeader = []string{"PatientName", "Age", "Address", "Mobile", "Problem", "UserID", "Password"}

type PatientRepository struct {
	table *table
	log   *slog.Logger
}

func NewPatientRepository(dataDir string, log *slog.Logger) *PatientRepository {
	return &PatientRepository{
		table: newTable(filepath.Join(dataDir, registerFile), registerHeader),
		log:   log,
	}
}

func (r *PatientRepository) Append(_ context.Context, acc patient.Account) error {
	return r.table.append([]string{
		acc.Name,
		strconv.Itoa(acc.Age),
		acc.Address,
		acc.Mobile,
		acc.Problem,
		acc.UserID,
		acc.Password,
	})
}

func (r *PatientRepository) All(_ context.Context) ([]patient.Account, error) {
	rows, err := r.table.load()
	if err != nil {
		return nil, err
	}

	accounts := make([]patient.Account, 0, len(rows))
	for i, row := range rows {
		age, err := strconv.Atoi(row[1])
		if err != nil {
			return nil, fmt.Errorf("parse age in row %d: %w", i+1, err)
		}
		accounts = append(accounts, patient.Account{
			Name:     row[0],
			Age:      age,
			Address:  row[2],
			Mobile:   row[3],
			Problem:  row[4],
			UserID:   row[5],
			Password: row[6],
		})
	}
	return accounts, nil
}
