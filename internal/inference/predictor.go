package inference

// FeatureCount — размер вектора признаков, фиксированный порядком обучения.
const FeatureCount = 8

// Features — восемь клинических измерений в том порядке, в котором их
// видели scaler и классификатор при обучении.
type Features struct {
	Pregnancies              float64
	Glucose                  float64
	BloodPressure            float64
	SkinThickness            float64
	Insulin                  float64
	BMI                      float64
	DiabetesPedigreeFunction float64
	Age                      float64
}

func (f Features) vector() [FeatureCount]float64 {
	return [FeatureCount]float64{
		f.Pregnancies,
		f.Glucose,
		f.BloodPressure,
		f.SkinThickness,
		f.Insulin,
		f.BMI,
		f.DiabetesPedigreeFunction,
		f.Age,
	}
}

type Outcome string

const (
	OutcomeDiabetic    Outcome = "Diabetic"
	OutcomeNonDiabetic Outcome = "Non-Diabetic"
)

// Predictor связывает пре-фит scaler и классификатор. Оба артефакта
// неизменяемы, Predict детерминирован и безопасен для конкурентных вызовов.
type Predictor struct {
	scaler *Scaler
	model  *Model
}

func NewPredictor(scaler *Scaler, model *Model) *Predictor {
	return &Predictor{
		scaler: scaler,
		model:  model,
	}
}

func (p *Predictor) Predict(f Features) Outcome {
	x := f.vector()

	z := p.model.Intercept
	for i := range x {
		z += p.model.Coef[i] * (x[i] - p.scaler.Mean[i]) / p.scaler.Scale[i]
	}

	if z >= 0 {
		return OutcomeDiabetic
	}
	return OutcomeNonDiabetic
}
