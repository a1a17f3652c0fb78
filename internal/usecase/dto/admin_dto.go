package dto

// LoginRequest - токен администратора
type LoginRequest struct {
	Token string `json:"token" form:"token" validate:"required"`
}
