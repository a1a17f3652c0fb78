package usecase

import (
	"crypto/subtle"

	"github.com/lovelyplace-web/internal/pkg/errors"
	"github.com/lovelyplace-web/internal/state"
	"go.uber.org/zap"
)

// AdminUseCase - вход и выход администратора в рамках сессии
type AdminUseCase struct {
	token  string
	logger *zap.Logger
}

func NewAdminUseCase(token string, logger *zap.Logger) *AdminUseCase {
	return &AdminUseCase{
		token:  token,
		logger: logger,
	}
}

// Login включает режим администратора. Пустой ADMIN_TOKEN отключает вход.
func (uc *AdminUseCase) Login(store *state.Store, token string) error {
	if uc.token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(uc.token)) != 1 {
		uc.logger.Warn("Admin login rejected")
		return errors.ErrUnauthorized.WithMessage("Invalid admin token")
	}

	store.SetAdminLogin(true)
	uc.logger.Info("Admin logged in")
	return nil
}

func (uc *AdminUseCase) Logout(store *state.Store) {
	store.SetAdminLogin(false)
}
