package patient

import (
	"context"
)

// Repository — контракт табличного хранилища регистраций: загрузить все
// строки или дописать одну в конец. Строки никогда не изменяются и не
// удаляются.
type Repository interface {
	Append(ctx context.Context, acc Account) error
	All(ctx context.Context) ([]Account, error)
}
