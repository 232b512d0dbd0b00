package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/exp/slog"

	"diascreen/internal/app/client/config"
)

const sessionCookie = "dia_session"

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
		// Сервер отвечает редиректами (login → /home, logout → /);
		// клиенту нужен сам ответ с Set-Cookie, а не страница назначения.
		CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}
	baseURL := scheme + cfg.ServerAddress

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   baseURL,
		userAgent: "DiaScreen-Client/1.0",
	}, nil
}

// SetToken устанавливает сессионный токен
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck проверяет доступность сервера
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", h.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("сервер недоступен: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("сервер вернул статус: %d", resp.StatusCode)
	}

	return nil
}

// Register регистрирует пациента и возвращает выданные учетные данные
func (h *httpClient) Register(ctx context.Context, form RegisterForm) (*Credentials, error) {
	resp, err := h.doRequest(ctx, "POST", "/save_registration", form)
	if err != nil {
		return nil, err
	}

	var regResp registerResponse
	if err := h.parseResponse(resp, &regResp); err != nil {
		return nil, err
	}

	return &Credentials{
		UserID:   regResp.UserID,
		Password: regResp.Password,
		Message:  regResp.Message,
	}, nil
}

// Login выполняет вход и возвращает сессионный токен из Set-Cookie
func (h *httpClient) Login(ctx context.Context, userID, password string) (string, error) {
	resp, err := h.doRequest(ctx, "POST", "/login_user", loginRequest{
		UserID:   userID,
		Password: password,
	})
	if err != nil {
		return "", err
	}

	var token string
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookie {
			token = c.Value
		}
	}

	if err := h.parseResponse(resp, nil); err != nil {
		return "", err
	}

	if token == "" {
		return "", fmt.Errorf("сервер не выдал сессионную куку")
	}

	h.token = token
	return token, nil
}

// Home возвращает имя пациента текущей сессии
func (h *httpClient) Home(ctx context.Context) (string, error) {
	resp, err := h.doRequest(ctx, "GET", "/home", nil)
	if err != nil {
		return "", err
	}

	var homeResp homeResponse
	if err := h.parseResponse(resp, &homeResp); err != nil {
		return "", err
	}

	return homeResp.PatientName, nil
}

// Predict отправляет измерения на сервер и возвращает результат скрининга
func (h *httpClient) Predict(ctx context.Context, m Measurements) (string, error) {
	resp, err := h.doRequest(ctx, "POST", "/predictdata", m)
	if err != nil {
		return "", err
	}

	var predResp predictResponse
	if err := h.parseResponse(resp, &predResp); err != nil {
		return "", err
	}

	return predResp.Result, nil
}

// Logout завершает сессию на сервере
func (h *httpClient) Logout(ctx context.Context) error {
	resp, err := h.doRequest(ctx, "GET", "/logout", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	// Выход всегда отвечает редиректом на корень
	if resp.StatusCode >= 400 {
		return fmt.Errorf("ошибка сервера: статус %d", resp.StatusCode)
	}

	h.token = ""
	return nil
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: h.token})
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"body", string(body),
	)

	// 303 на анонимный запрос — сессия истекла или не было входа
	if resp.StatusCode == http.StatusSeeOther && resp.Header.Get("Location") == "/" {
		return fmt.Errorf("требуется вход: diascreen login")
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error  string `json:"error"`
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			if errResp.Error != "" {
				return fmt.Errorf("ошибка сервера: %s", errResp.Error)
			}
			if errResp.Detail != "" {
				return fmt.Errorf("ошибка сервера: %s", errResp.Detail)
			}
		}
		return fmt.Errorf("ошибка сервера: статус %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}
