package sheet

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"diascreen/internal/domain/prediction"

	"golang.org/x/exp/slog"
)

const dataFile = "patients_data.csv"

var dataHeader = []string{"UserID", "PatientName", "Glucose", "BMI", "Age", "Prediction"}

type PredictionRepository struct {
	table *table
	log   *slog.Logger
}

func NewPredictionRepository(dataDir string, log *slog.Logger) *PredictionRepository {
	return &PredictionRepository{
		table: newTable(filepath.Join(dataDir, dataFile), dataHeader),
		log:   log,
	}
}

func (r *PredictionRepository) Append(_ context.Context, rec prediction.Record) error {
	return r.table.append([]string{
		rec.UserID,
		rec.PatientName,
		formatFloat(rec.Glucose),
		formatFloat(rec.BMI),
		formatFloat(rec.Age),
		rec.Result,
	})
}

func (r *PredictionRepository) All(_ context.Context) ([]prediction.Record, error) {
	rows, err := r.table.load()
	if err != nil {
		return nil, err
	}

	records := make([]prediction.Record, 0, len(rows))
	for i, row := range rows {
		rec := prediction.Record{
			UserID:      row[0],
			PatientName: row[1],
			Result:      row[5],
		}
		for _, field := range []struct {
			dst *float64
			val string
		}{
			{&rec.Glucose, row[2]},
			{&rec.BMI, row[3]},
			{&rec.Age, row[4]},
		} {
			v, err := strconv.ParseFloat(field.val, 64)
			if err != nil {
				return nil, fmt.Errorf("parse number in row %d: %w", i+1, err)
			}
			*field.dst = v
		}
		records = append(records, rec)
	}
	return records, nil
}

// formatFloat печатает число в кратчайшем виде, который парсится обратно
// без потерь — round-trip свойство таблицы держится на этом.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
