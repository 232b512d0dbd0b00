package prediction

// Record — одна строка таблицы предсказаний. Имя пациента денормализовано
// рядом с UserID, как в исходной таблице; глюкоза, BMI и возраст дублируют
// часть вектора признаков для последующего просмотра истории.
type Record struct {
	UserID      string
	PatientName string
	Glucose     float64
	BMI         float64
	Age         float64
	Result      string
}
