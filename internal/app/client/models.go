package client

import "time"

// RegisterForm — анкета пациента, отправляемая на сервер.
type RegisterForm struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Address string `json:"address"`
	Mobile  string `json:"mobile"`
	Problem string `json:"problem"`
}

type registerResponse struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
	Status   string `json:"status"`
	Message  string `json:"message"`
	Error    string `json:"error"`
}

// Credentials — идентификатор и пароль, выданные при регистрации.
type Credentials struct {
	UserID   string
	Password string
	Message  string
}

type loginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

// Measurements — восемь клинических показателей для скрининга.
type Measurements struct {
	Pregnancies              float64 `json:"Pregnancies"`
	Glucose                  float64 `json:"Glucose"`
	BloodPressure            float64 `json:"BloodPressure"`
	SkinThickness            float64 `json:"SkinThickness"`
	Insulin                  float64 `json:"Insulin"`
	BMI                      float64 `json:"BMI"`
	DiabetesPedigreeFunction float64 `json:"DiabetesPedigreeFunction"`
	Age                      float64 `json:"Age"`
}

type predictResponse struct {
	Result      string `json:"result"`
	PatientName string `json:"patient_name"`
	Status      string `json:"status"`
	Error       string `json:"error"`
}

type homeResponse struct {
	PatientName string `json:"patient_name"`
	Status      string `json:"status"`
}

// HistoryEntry — локально сохраненный результат скрининга.
type HistoryEntry struct {
	ID        int
	Glucose   float64
	BMI       float64
	Age       float64
	Result    string
	CreatedAt time.Time
}
