package prediction

import "context"

// Repository — append-only таблица предсказаний.
type Repository interface {
	Append(ctx context.Context, rec Record) error
	All(ctx context.Context) ([]Record, error)
}
