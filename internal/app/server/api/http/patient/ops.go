package patient

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID: "patient-register",
		Method:      http.MethodPost,
		Path:        "/save_registration",
		Summary:     "Регистрация пациента",
		Description: "Создает аккаунт и возвращает сгенерированные UserID и пароль. Пароль показывается только в этом ответе.",
		Tags:        []string{"patient"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) registerPageOp() huma.Operation {
	return huma.Operation{
		OperationID: "patient-register-page",
		Method:      http.MethodGet,
		Path:        "/register",
		Summary:     "Страница регистрации",
		Description: "Анонимная страница: подсказывает, какие поля отправить в POST /save_registration.",
		Tags:        []string{"patient"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "patient-login",
		Method:      http.MethodPost,
		Path:        "/login_user",
		Summary:     "Вход пациента",
		Description: "Проверяет UserID и пароль, ставит cookie сессии и перенаправляет на /home.",
		Tags:        []string{"patient"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID: "patient-logout",
		Method:      http.MethodGet,
		Path:        "/logout",
		Summary:     "Выход",
		Description: "Сбрасывает сессию и перенаправляет на вход.",
		Tags:        []string{"patient"},
		Middlewares: h.middleware,
	}
}
