package predict

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) homeOp() huma.Operation {
	return huma.Operation{
		OperationID: "patient-home",
		Method:      http.MethodGet,
		Path:        "/home",
		Summary:     "Домашняя страница пациента",
		Description: "Доступна только аутентифицированным пациентам, иначе редирект на вход.",
		Tags:        []string{"predict"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) predictOp() huma.Operation {
	return huma.Operation{
		OperationID: "patient-predict",
		Method:      http.MethodPost,
		Path:        "/predictdata",
		Summary:     "Классификация по восьми измерениям",
		Description: "Прогоняет измерения через пре-фит scaler и классификатор, сохраняет результат в историю.",
		Tags:        []string{"predict"},
		Middlewares: h.middleware,
	}
}
