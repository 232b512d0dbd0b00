package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"diascreen/internal/config"
	"diascreen/internal/inference"
	"diascreen/internal/infrastructure/storage/sheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

// testServer поднимает полный mux с CSV-хранилищем во временной директории.
func testServer(t *testing.T) *httptest.Server {
	t.Helper()

	dataDir := t.TempDir()
	log := slog.Default()

	repos := Repositories{
		Patients:    sheet.NewPatientRepository(dataDir, log),
		Predictions: sheet.NewPredictionRepository(dataDir, log),
	}

	// Модель с решением только по глюкозе: >= 100 → Diabetic
	predictor := inference.NewPredictor(
		&inference.Scaler{
			Mean:  []float64{0, 0, 0, 0, 0, 0, 0, 0},
			Scale: []float64{1, 1, 1, 1, 1, 1, 1, 1},
		},
		&inference.Model{
			Coef:      []float64{0, 1, 0, 0, 0, 0, 0, 0},
			Intercept: -100,
		},
	)

	srv := httptest.NewServer(New(&config.Config{}, repos, predictor, log))
	t.Cleanup(srv.Close)

	return srv
}

// noRedirectClient возвращает сам ответ с редиректом, не переходя по нему.
func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func postJSON(t *testing.T, client *http.Client, url string, body any, cookie *http.Cookie) *http.Response {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	resp, err := client.Do(req)
	require.NoError(t, err)

	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}

func fullMeasurements(glucose float64) map[string]any {
	return map[string]any{
		"Pregnancies":              2.0,
		"Glucose":                  glucose,
		"BloodPressure":            70.0,
		"SkinThickness":            20.0,
		"Insulin":                  85.0,
		"BMI":                      30.1,
		"DiabetesPedigreeFunction": 0.5,
		"Age":                      45.0,
	}
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == "dia_session" {
			return c
		}
	}
	return nil
}

func registerAndLogin(t *testing.T, client *http.Client, baseURL string) *http.Cookie {
	t.Helper()

	resp := postJSON(t, client, baseURL+"/save_registration", map[string]any{
		"name":    "Jane",
		"age":     45,
		"address": "Elm Street 5",
		"mobile":  "5550000001",
		"problem": "fatigue",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reg struct {
		UserID   string `json:"user_id"`
		Password string `json:"password"`
	}
	decodeBody(t, resp, &reg)
	require.NotEmpty(t, reg.UserID)
	require.NotEmpty(t, reg.Password)

	resp = postJSON(t, client, baseURL+"/login_user", map[string]any{
		"user_id":  reg.UserID,
		"password": reg.Password,
	}, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	require.Equal(t, "/home", resp.Header.Get("Location"))

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)

	return cookie
}

func TestAPI_PredictRequiresSession(t *testing.T) {
	srv := testServer(t)
	client := noRedirectClient()

	// Аноним не видит предсказание — его уводят на вход
	resp := postJSON(t, client, srv.URL+"/predictdata", fullMeasurements(130), nil)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestAPI_PredictWithSession(t *testing.T) {
	srv := testServer(t)
	client := noRedirectClient()

	cookie := registerAndLogin(t, client, srv.URL)

	resp := postJSON(t, client, srv.URL+"/predictdata", fullMeasurements(130), cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pred struct {
		Result      string `json:"result"`
		PatientName string `json:"patient_name"`
	}
	decodeBody(t, resp, &pred)

	// Идентичность пришла из сессии, не из тела запроса
	assert.Equal(t, "Jane", pred.PatientName)
	assert.Equal(t, "Diabetic", pred.Result)
}

func TestAPI_PredictAcceptsAnyNumber(t *testing.T) {
	srv := testServer(t)
	client := noRedirectClient()

	cookie := registerAndLogin(t, client, srv.URL)

	// Отрицательные измерения не отклоняются схемой
	body := fullMeasurements(-5)
	body["BMI"] = -1.0
	resp := postJSON(t, client, srv.URL+"/predictdata", body, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pred struct {
		Result string `json:"result"`
	}
	decodeBody(t, resp, &pred)
	assert.Equal(t, "Non-Diabetic", pred.Result)
}

func TestAPI_LogoutInvalidatesSession(t *testing.T) {
	srv := testServer(t)
	client := noRedirectClient()

	cookie := registerAndLogin(t, client, srv.URL)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/logout", nil)
	require.NoError(t, err)
	req.AddCookie(cookie)

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	// Старая кука больше не пускает
	resp = postJSON(t, client, srv.URL+"/predictdata", fullMeasurements(130), cookie)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestAPI_RegisterPage(t *testing.T) {
	srv := testServer(t)

	resp, err := http.Get(srv.URL + "/register")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	decodeBody(t, resp, &page)
	assert.Equal(t, "Ok", page.Status)
	assert.Contains(t, page.Message, "/save_registration")
}
