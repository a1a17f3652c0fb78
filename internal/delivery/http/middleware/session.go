package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/google/uuid"
	"github.com/lovelyplace-web/internal/config"
	"github.com/lovelyplace-web/internal/state"
	"go.uber.org/zap"
)

const (
	stateKey   = "session_state"
	sessionKey = "session"

	flashKindKey    = "flash_kind"
	flashMessageKey = "flash_message"

	// SessionCookie - имя cookie сессии
	SessionCookie = "lovelyplace_session"
)

// Flash kinds
const (
	FlashError   = "error"
	FlashSuccess = "success"
)

// Flash - одноразовое сообщение, показываемое на следующей странице
type Flash struct {
	Kind    string
	Message string
}

// sessionless - пути, которым состояние сессии не нужно
var sessionless = []string{"/static", "/metrics", "/swagger", "/api/v1/health"}

// NewSessionStore создает хранилище cookie сессий fiber; id сессии - uuid
func NewSessionStore(cfg *config.SessionConfig, secure bool) *session.Store {
	return session.New(session.Config{
		Expiration:     cfg.TTL,
		KeyLookup:      "cookie:" + SessionCookie,
		CookieHTTPOnly: true,
		CookieSecure:   secure,
		CookieSameSite: "Lax",
		KeyGenerator:   uuid.NewString,
	})
}

// Session связывает cookie сессии с ее состоянием в реестре и кладет
// *state.Store в c.Locals. Сессия сохраняется после обработчика.
func Session(store *session.Store, registry *state.Registry, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		for _, prefix := range sessionless {
			if strings.HasPrefix(c.Path(), prefix) {
				return c.Next()
			}
		}

		sess, err := store.Get(c)
		if err != nil {
			logger.Error("Failed to load session", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
		}

		st := registry.Get(sess.ID())
		st.Touch()
		if sess.Fresh() {
			logger.Debug("New session", zap.String("session_id", sess.ID()))
		}

		c.Locals(stateKey, st)
		c.Locals(sessionKey, sess)

		chainErr := c.Next()

		if err := sess.Save(); err != nil {
			logger.Error("Failed to save session", zap.Error(err))
		}
		return chainErr
	}
}

// StateFrom возвращает состояние сессии запроса. Без middleware
// возвращается новое состояние, не привязанное к сессии.
func StateFrom(c *fiber.Ctx) *state.Store {
	if st, ok := c.Locals(stateKey).(*state.Store); ok {
		return st
	}
	return state.NewStore()
}

func sessionFrom(c *fiber.Ctx) *session.Session {
	sess, _ := c.Locals(sessionKey).(*session.Session)
	return sess
}

// SetFlash сохраняет сообщение для следующей страницы
func SetFlash(c *fiber.Ctx, kind, message string) {
	if sess := sessionFrom(c); sess != nil {
		sess.Set(flashKindKey, kind)
		sess.Set(flashMessageKey, message)
	}
}

// PopFlash возвращает и удаляет сообщение сессии
func PopFlash(c *fiber.Ctx) *Flash {
	sess := sessionFrom(c)
	if sess == nil {
		return nil
	}
	message, _ := sess.Get(flashMessageKey).(string)
	if message == "" {
		return nil
	}
	kind, _ := sess.Get(flashKindKey).(string)
	sess.Delete(flashKindKey)
	sess.Delete(flashMessageKey)
	return &Flash{Kind: kind, Message: message}
}
