package sqlite

import (
	"context"
	"fmt"

	"diascreen/internal/domain/prediction"

	"golang.org/x/exp/slog"
)

type PredictionRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewPredictionRepository(storage *Storage, log *slog.Logger) *PredictionRepository {
	return &PredictionRepository{
		storage: storage,
		log:     log,
	}
}

func (r *PredictionRepository) Append(ctx context.Context, rec prediction.Record) error {
	_, err := r.storage.DB().ExecContext(ctx,
		`INSERT INTO patients_data (user_id, patient_name, glucose, bmi, age, prediction)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.UserID, rec.PatientName, rec.Glucose, rec.BMI, rec.Age, rec.Result)
	if err != nil {
		return fmt.Errorf("insert prediction: %w", err)
	}
	return nil
}

func (r *PredictionRepository) All(ctx context.Context) ([]prediction.Record, error) {
	rows, err := r.storage.DB().QueryContext(ctx,
		`SELECT user_id, patient_name, glucose, bmi, age, prediction
		 FROM patients_data ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select predictions: %w", err)
	}
	defer rows.Close()

	var records []prediction.Record
	for rows.Next() {
		var rec prediction.Record
		if err := rows.Scan(&rec.UserID, &rec.PatientName, &rec.Glucose, &rec.BMI, &rec.Age, &rec.Result); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate predictions: %w", err)
	}
	return records, nil
}
