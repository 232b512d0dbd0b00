package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
	huma.Register(api, h.indexOp(), h.index)
}

func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	return &Output{
		Body: Response{
			Status: "OK",
		},
	}, nil
}

// index — анонимная стартовая страница, сюда же ведут редиректы с
// защищенных маршрутов.
func (h *Handler) index(_ context.Context, _ *Input) (*indexOutput, error) {
	return &indexOutput{
		Body: IndexResponse{
			Service: "diascreen",
			Status:  "OK",
			Message: "Login via POST /login_user or register via POST /save_registration",
		},
	}, nil
}
