package patient

import "net/http"

type registerInput struct {
	Body RegisterRequest
}

type RegisterRequest struct {
	Name    string `json:"name" doc:"Имя пациента" minLength:"1"`
	Age     int    `json:"age" doc:"Возраст" minimum:"1"`
	Address string `json:"address" doc:"Адрес" minLength:"1"`
	Mobile  string `json:"mobile" doc:"Номер телефона" minLength:"1"`
	Problem string `json:"problem" doc:"Жалоба" minLength:"1"`
}

type registerOutput struct {
	Body RegisterResponse
}

type RegisterResponse struct {
	UserID   string `json:"user_id,omitempty"`
	Password string `json:"password,omitempty"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

type registerPageOutput struct {
	Body RegisterPageResponse
}

type RegisterPageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type loginInput struct {
	Body LoginRequest
}

type LoginRequest struct {
	UserID   string `json:"user_id" doc:"Идентификатор, выданный при регистрации" minLength:"1"`
	Password string `json:"password" doc:"Пароль, выданный при регистрации" minLength:"1"`
}

type loginOutput struct {
	Status    int
	Location  string      `header:"Location"`
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      LoginResponse
}

type LoginResponse struct {
	PatientName string `json:"patient_name,omitempty"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
}

type logoutInput struct {
	Token string `cookie:"dia_session" required:"false"`
}

type logoutOutput struct {
	Status    int
	Location  string      `header:"Location"`
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      LogoutResponse
}

type LogoutResponse struct {
	Status string `json:"status"`
}
