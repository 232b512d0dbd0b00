//регистрация пациента с выдачей сгенерированных UserID и пароля;
//вход по этим учетным данным с cookie-сессией;
//классификация по восьми измерениям через пре-фит scaler + классификатор;
//append-only история предсказаний в табличном хранилище.

//POST /save_registration  # Регистрация (публичный)
//POST /login_user         # Логин, ставит cookie (публичный)
//GET  /home               # Домашняя страница (auth, иначе редирект на /)
//POST /predictdata        # Классификация + запись в историю (auth)
//GET  /logout             # Сброс сессии, редирект на /
//GET  /                   # Стартовая страница (публичный)
//GET  /api/v1/health      # Health check

package api

import (
	healthAPI "diascreen/internal/app/server/api/http/health"
	"diascreen/internal/app/server/api/http/middleware"
	"diascreen/internal/app/server/api/http/middleware/auth"
	"diascreen/internal/app/server/api/http/middleware/logger"
	patientAPI "diascreen/internal/app/server/api/http/patient"
	predictAPI "diascreen/internal/app/server/api/http/predict"
	"diascreen/internal/config"
	"diascreen/internal/domain/patient"
	"diascreen/internal/domain/prediction"
	"diascreen/internal/domain/session"
	"diascreen/internal/inference"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health  *healthAPI.Handler
	Patient *patientAPI.Handler
	Predict *predictAPI.Handler
}

// Repositories — табличные хранилища, выбранные в main по STORAGE_DRIVER.
type Repositories struct {
	Patients    patient.Repository
	Predictions prediction.Repository
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(cfg *config.Config, repos Repositories, predictor *inference.Predictor, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	humaConfig := huma.DefaultConfig("DiaScreen API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookie": {Type: "apiKey", In: "cookie", Name: auth.CookieName},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(cfg, repos, predictor, log)
	h.Health.SetupRoutes(API)
	h.Patient.SetupRoutes(API)
	h.Predict.SetupRoutes(API)

	return mux
}

func handlers(cfg *config.Config, repos Repositories, predictor *inference.Predictor, log *slog.Logger) *Handlers {
	sessionRepo := session.NewMemoryRepository()
	sessionService := session.NewService(sessionRepo, log)
	authMW := auth.New(sessionService, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	patientService := patient.NewService(repos.Patients, cfg.Storage.StrictIdentity, log)
	middlewares.Add(loggerMW.Middleware())
	patientHandler := patientAPI.NewHandler(patientService, sessionService, log, middlewares.GetAllAndClear())

	predictionService := prediction.NewService(
		repos.Predictions,
		predictor,
		patientService,
		cfg.Storage.StrictIdentity,
		log,
	)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	predictHandler := predictAPI.NewHandler(predictionService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:  healthHandler,
		Patient: patientHandler,
		Predict: predictHandler,
	}
}
