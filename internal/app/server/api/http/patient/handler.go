package patient

import (
	"context"
	"errors"
	"net/http"

	"diascreen/internal/app/server/api/http/middleware/auth"
	"diascreen/internal/domain/patient"
	"diascreen/internal/domain/session"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    patient.Servicer
	session    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service patient.Servicer, session session.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		session:    session,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.registerPageOp(), h.registerPage)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.logoutOp(), h.logout)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*registerOutput, error) {
	creds, err := h.service.Register(ctx, patient.RegisterRequest{
		Name:    input.Body.Name,
		Age:     input.Body.Age,
		Address: input.Body.Address,
		Mobile:  input.Body.Mobile,
		Problem: input.Body.Problem,
	})
	if err != nil {
		if errors.Is(err, patient.ErrInvalidInput) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		h.log.Error("registration failed", "error", err)
		return nil, huma.Error500InternalServerError("could not save registration")
	}

	return &registerOutput{
		Body: RegisterResponse{
			UserID:   creds.UserID,
			Password: creds.Password,
			Status:   "Ok",
			Message:  "Registration Successful! Use the given User ID & Password to Login.",
		},
	}, nil
}

// registerPage — анонимная страница регистрации.
func (h *Handler) registerPage(_ context.Context, _ *struct{}) (*registerPageOutput, error) {
	return &registerPageOutput{
		Body: RegisterPageResponse{
			Status:  "Ok",
			Message: "Send name, age, address, mobile and problem to POST /save_registration",
		},
	}, nil
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*loginOutput, error) {
	acc, err := h.service.Authenticate(ctx, input.Body.UserID, input.Body.Password)
	if err != nil {
		switch {
		case errors.Is(err, patient.ErrNoAccounts):
			return &loginOutput{
				Status: http.StatusUnauthorized,
				Body:   LoginResponse{Status: "Error", Error: "No registered patients found."},
			}, nil
		case errors.Is(err, patient.ErrInvalidCredentials):
			// Не раскрываем, что именно не совпало
			return &loginOutput{
				Status: http.StatusUnauthorized,
				Body:   LoginResponse{Status: "Error", Error: "Invalid User ID or Password"},
			}, nil
		default:
			h.log.Error("login failed", "error", err)
			return nil, huma.Error500InternalServerError("could not load registrations")
		}
	}

	token, err := h.session.Create(ctx, session.Identity{
		AccountID:   acc.UserID,
		PatientName: acc.Name,
	})
	if err != nil {
		h.log.Error("create session", "error", err)
		return nil, huma.Error500InternalServerError("could not create session")
	}

	return &loginOutput{
		Status:   http.StatusSeeOther,
		Location: "/home",
		SetCookie: http.Cookie{
			Name:     auth.CookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
		Body: LoginResponse{Status: "Ok", PatientName: acc.Name},
	}, nil
}

func (h *Handler) logout(ctx context.Context, input *logoutInput) (*logoutOutput, error) {
	if input.Token != "" {
		if err := h.session.Clear(ctx, input.Token); err != nil {
			h.log.Debug("clear session", "error", err)
		}
	}

	return &logoutOutput{
		Status:   http.StatusSeeOther,
		Location: "/",
		SetCookie: http.Cookie{
			Name:     auth.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
		},
		Body: LogoutResponse{Status: "Ok"},
	}, nil
}
