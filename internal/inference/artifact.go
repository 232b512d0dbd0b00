package inference

import (
	"encoding/json"
	"fmt"
	"os"
)

// Scaler — параметры стандартизации, подобранные офлайн (mean/scale на
// каждый из восьми признаков). Загружается один раз на старте и дальше
// неизменяем.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// Model — бинарный логистический классификатор, также обученный офлайн.
// Решение по знаку линейной функции: coef·x + intercept >= 0 → класс 1.
type Model struct {
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}

func LoadScaler(path string) (*Scaler, error) {
	var scaler Scaler
	if err := loadJSON(path, &scaler); err != nil {
		return nil, fmt.Errorf("load scaler: %w", err)
	}

	if len(scaler.Mean) != FeatureCount || len(scaler.Scale) != FeatureCount {
		return nil, fmt.Errorf("load scaler: expected %d mean/scale values, got %d/%d",
			FeatureCount, len(scaler.Mean), len(scaler.Scale))
	}
	for i, v := range scaler.Scale {
		if v == 0 {
			return nil, fmt.Errorf("load scaler: zero scale for feature %d", i)
		}
	}

	return &scaler, nil
}

func LoadModel(path string) (*Model, error) {
	var model Model
	if err := loadJSON(path, &model); err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	if len(model.Coef) != FeatureCount {
		return nil, fmt.Errorf("load model: expected %d coefficients, got %d",
			FeatureCount, len(model.Coef))
	}

	return &model, nil
}

func loadJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
