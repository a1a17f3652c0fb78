package domain

import (
	"errors"
	"fmt"
)

var (
	ErrVenueNotFound = errors.New("venue not found")
	ErrInvalidQuery  = errors.New("invalid search query")
)

// ValidationError - ошибка проверки данных до сетевого вызова
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// GatewayError - ответ бэкенда с неуспешным статусом.
// Message заполняется из поля "message" тела ответа, если оно есть.
type GatewayError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: backend status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: backend status %d", e.Op, e.StatusCode)
}

// ServerMessage возвращает сообщение сервера из цепочки ошибок
func ServerMessage(err error) string {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge.Message
	}
	return ""
}
