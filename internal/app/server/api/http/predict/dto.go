package predict

type homeOutput struct {
	Body HomeResponse
}

type HomeResponse struct {
	PatientName string `json:"patient_name"`
	Status      string `json:"status"`
}

type predictInput struct {
	Body PredictRequest
}

// Имена полей повторяют поля исходной формы. Диапазоны не ограничиваем:
// принимается любое число, интерпретация остается за моделью.
type PredictRequest struct {
	Pregnancies              float64 `json:"Pregnancies" doc:"Число беременностей"`
	Glucose                  float64 `json:"Glucose" doc:"Глюкоза плазмы"`
	BloodPressure            float64 `json:"BloodPressure" doc:"Диастолическое давление"`
	SkinThickness            float64 `json:"SkinThickness" doc:"Толщина кожной складки"`
	Insulin                  float64 `json:"Insulin" doc:"Инсулин сыворотки"`
	BMI                      float64 `json:"BMI" doc:"Индекс массы тела"`
	DiabetesPedigreeFunction float64 `json:"DiabetesPedigreeFunction" doc:"Наследственная функция"`
	Age                      float64 `json:"Age" doc:"Возраст"`
}

type predictOutput struct {
	Body PredictResponse
}

type PredictResponse struct {
	Result      string `json:"result"`
	PatientName string `json:"patient_name"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
}
