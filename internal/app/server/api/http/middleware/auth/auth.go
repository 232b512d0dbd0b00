package auth

import (
	"context"
	"net/http"

	"diascreen/internal/domain/session"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// CookieName — cookie с токеном сессии пациента.
const CookieName = "dia_session"

type Auth struct {
	session session.Servicer
	log     *slog.Logger
}

func New(session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With(slog.String("component", "auth_middleware")),
	}
}

type contextKey string

const identityKey contextKey = "identity"

// Middleware проверяет cookie сессии. Анонимный запрос к защищенному
// маршруту — не ошибка, а редирект на вход, как в исходном приложении.
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		cookie, err := huma.ReadCookie(ctx, CookieName)
		if err != nil || cookie.Value == "" {
			redirectToLogin(ctx)
			return
		}

		identity, err := a.session.Validate(ctx.Context(), cookie.Value)
		if err != nil {
			a.log.Debug("session rejected", "error", err)
			redirectToLogin(ctx)
			return
		}

		newCtx := WithIdentity(ctx.Context(), identity)
		next(huma.WithContext(ctx, newCtx))
	}
}

func redirectToLogin(ctx huma.Context) {
	ctx.SetHeader("Location", "/")
	ctx.SetStatus(http.StatusSeeOther)
}

// WithIdentity кладет атрибуты сессии в контекст запроса.
func WithIdentity(ctx context.Context, id session.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// GetIdentity достает атрибуты сессии, положенные мидлварью.
func GetIdentity(ctx context.Context) (session.Identity, bool) {
	id, ok := ctx.Value(identityKey).(session.Identity)
	return id, ok
}
