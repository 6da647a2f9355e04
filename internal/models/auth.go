package models

// SigninRequest представляет структуру запроса для входа в систему.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse представляет ответ на успешный вход: токен, пользователь и роль.
type AuthResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
	Role  string      `json:"role"`
}
