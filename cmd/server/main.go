package main

import (
	"net/http"
	"os"

	"diascreen/internal/app/server/api"
	"diascreen/internal/config"
	"diascreen/internal/inference"
	"diascreen/internal/infrastructure/storage/sheet"
	"diascreen/internal/infrastructure/storage/sqlite"
	"diascreen/internal/utils/logger"

	"golang.org/x/exp/slog"
)

func main() {
	conf := config.NewConfig()
	log := logger.New(conf.Env)

	// Артефакты модели загружаются один раз и дальше только читаются
	scaler, err := inference.LoadScaler(conf.Model.ScalerPath)
	if err != nil {
		log.Error("load scaler", "error", err)
		os.Exit(1)
	}
	model, err := inference.LoadModel(conf.Model.ModelPath)
	if err != nil {
		log.Error("load model", "error", err)
		os.Exit(1)
	}
	predictor := inference.NewPredictor(scaler, model)

	repos, cleanup, err := buildRepositories(conf, log)
	if err != nil {
		log.Error("init storage", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	mux := api.New(conf, repos, predictor, log)

	log.Info("starting server",
		slog.String("address", conf.Server.RunAddress),
		slog.String("storage", conf.Storage.Driver),
		slog.Bool("strict_identity", conf.Storage.StrictIdentity),
	)

	if err := http.ListenAndServe(conf.Server.RunAddress, mux); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func buildRepositories(conf *config.Config, log *slog.Logger) (api.Repositories, func(), error) {
	switch conf.Storage.Driver {
	case "sqlite":
		storage, err := sqlite.New(conf.Storage.SQLitePath)
		if err != nil {
			return api.Repositories{}, nil, err
		}
		return api.Repositories{
			Patients:    sqlite.NewPatientRepository(storage, log),
			Predictions: sqlite.NewPredictionRepository(storage, log),
		}, func() { storage.Close() }, nil
	default:
		return api.Repositories{
			Patients:    sheet.NewPatientRepository(conf.Storage.DataDir, log),
			Predictions: sheet.NewPredictionRepository(conf.Storage.DataDir, log),
		}, func() {}, nil
	}
}
