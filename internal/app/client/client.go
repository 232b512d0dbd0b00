package client

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/exp/slog"

	"diascreen/internal/app/client/config"
)

type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
	storage    *SQLiteStorage
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	storage, err := NewSQLiteStorage(cfg.HistoryPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации локального хранилища: %w", err)
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
		storage:    storage,
	}

	// Загружаем токен если он есть
	if token, err := app.GetToken(); err == nil && token != "" {
		httpCl.SetToken(token)
		log.Debug("Сессионный токен загружен из файла")
	}

	return app, nil
}

// CheckConnection проверяет соединение с сервером
func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

// GetToken возвращает сохраненный сессионный токен
func (a *App) GetToken() (string, error) {
	tokenBytes, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("сессия не найдена. Выполните вход: diascreen login")
		}
		return "", fmt.Errorf("ошибка чтения токена: %w", err)
	}
	return string(tokenBytes), nil
}

// SaveToken сохраняет сессионный токен
func (a *App) SaveToken(token string) error {
	if err := os.WriteFile(a.config.TokenPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("ошибка сохранения токена: %w", err)
	}

	a.httpClient.SetToken(token)
	return nil
}

// ClearToken удаляет сессионный токен
func (a *App) ClearToken() error {
	if err := os.Remove(a.config.TokenPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("ошибка удаления токена: %w", err)
	}

	a.httpClient.SetToken("")
	return nil
}

// Register регистрирует пациента на сервере
func (a *App) Register(ctx context.Context, form RegisterForm) (*Credentials, error) {
	creds, err := a.httpClient.Register(ctx, form)
	if err != nil {
		return nil, err
	}

	a.log.Info("Пациент успешно зарегистрирован", "user_id", creds.UserID)
	return creds, nil
}

// Login выполняет вход и сохраняет сессионный токен
func (a *App) Login(ctx context.Context, userID, password string) error {
	token, err := a.httpClient.Login(ctx, userID, password)
	if err != nil {
		return err
	}

	if err := a.SaveToken(token); err != nil {
		return fmt.Errorf("ошибка сохранения токена: %w", err)
	}

	a.log.Info("Вход выполнен успешно", "user_id", userID)
	return nil
}

// Home возвращает имя пациента текущей сессии
func (a *App) Home(ctx context.Context) (string, error) {
	return a.httpClient.Home(ctx)
}

// Predict отправляет измерения на сервер и кэширует результат локально
func (a *App) Predict(ctx context.Context, m Measurements) (string, error) {
	result, err := a.httpClient.Predict(ctx, m)
	if err != nil {
		return "", err
	}

	if err := a.storage.SaveResult(m, result); err != nil {
		a.log.Warn("Не удалось сохранить результат локально", "error", err)
	}

	return result, nil
}

// History возвращает локальную историю скринингов
func (a *App) History() ([]HistoryEntry, error) {
	return a.storage.ListResults()
}

// Logout завершает сессию на сервере и удаляет локальный токен
func (a *App) Logout(ctx context.Context) error {
	if err := a.httpClient.Logout(ctx); err != nil {
		a.log.Warn("Не удалось завершить сессию на сервере", "error", err)
	}

	return a.ClearToken()
}

// Close закрывает локальное хранилище
func (a *App) Close() error {
	return a.storage.Close()
}
