package predict

import (
	"context"
	"errors"

	"diascreen/internal/app/server/api/http/middleware/auth"
	"diascreen/internal/domain/prediction"
	"diascreen/internal/inference"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    prediction.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service prediction.Servicer, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.homeOp(), h.home)
	huma.Register(api, h.predictOp(), h.predict)
}

func (h *Handler) home(ctx context.Context, _ *struct{}) (*homeOutput, error) {
	identity, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	return &homeOutput{
		Body: HomeResponse{
			PatientName: identity.PatientName,
			Status:      "Ok",
		},
	}, nil
}

func (h *Handler) predict(ctx context.Context, input *predictInput) (*predictOutput, error) {
	identity, ok := auth.GetIdentity(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	features := inference.Features{
		Pregnancies:              input.Body.Pregnancies,
		Glucose:                  input.Body.Glucose,
		BloodPressure:            input.Body.BloodPressure,
		SkinThickness:            input.Body.SkinThickness,
		Insulin:                  input.Body.Insulin,
		BMI:                      input.Body.BMI,
		DiabetesPedigreeFunction: input.Body.DiabetesPedigreeFunction,
		Age:                      input.Body.Age,
	}

	outcome, err := h.service.Predict(ctx, identity, features)
	if err != nil {
		if errors.Is(err, prediction.ErrUnknownAccount) {
			return nil, huma.Error422UnprocessableEntity("account no longer registered")
		}
		h.log.Error("prediction failed", "error", err)
		return nil, huma.Error500InternalServerError("could not save prediction")
	}

	return &predictOutput{
		Body: PredictResponse{
			Result:      string(outcome),
			PatientName: identity.PatientName,
			Status:      "Ok",
		},
	}, nil
}
