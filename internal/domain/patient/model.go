package patient

// Account — учетная запись пациента, одна строка в таблице регистраций.
// Password хранится как bcrypt-хэш; открытый пароль показывается
// пациенту один раз в ответе на регистрацию.
type Account struct {
	Name     string
	Age      int
	Address  string
	Mobile   string
	Problem  string
	UserID   string
	Password string
}

// Credentials возвращаются вызывающему после успешной регистрации.
type Credentials struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name    string
	Age     int
	Address string
	Mobile  string
	Problem string
}
