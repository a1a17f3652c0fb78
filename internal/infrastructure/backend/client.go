package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lovelyplace-web/internal/config"
	"github.com/lovelyplace-web/internal/domain"
	"github.com/lovelyplace-web/internal/domain/repository"
	"github.com/lovelyplace-web/internal/pkg/metrics"
	"go.uber.org/zap"
)

// maxErrorBody ограничивает чтение тела неуспешного ответа
const maxErrorBody = 64 << 10

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient создает клиент внешнего API мест
func NewClient(cfg *config.BackendConfig, logger *zap.Logger) repository.VenueGateway {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		logger:  logger,
	}
}

// request - описание одного вызова бэкенда
type request struct {
	op          string
	method      string
	path        string
	rawQuery    string
	body        io.Reader
	contentType string
}

// jsonBody кодирует тело запроса
func jsonBody(v interface{}) (io.Reader, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}
	return bytes.NewReader(data), nil
}

// do выполняет запрос и декодирует JSON ответа в out (если out не nil).
// Неуспешный статус возвращается как *domain.GatewayError.
func (c *client) do(ctx context.Context, r request, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		metrics.BackendRequestsTotal.WithLabelValues(r.op, outcome).Inc()
		metrics.BackendDurationMs.WithLabelValues(r.op).Observe(float64(time.Since(start).Milliseconds()))
	}()

	reqURL := c.baseURL + r.path
	if r.rawQuery != "" {
		reqURL += "?" + r.rawQuery
	}

	c.logger.Debug("Calling backend API",
		zap.String("op", r.op),
		zap.String("method", r.method),
		zap.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, r.method, reqURL, r.body)
	if err != nil {
		c.logger.Error("Failed to create request", zap.String("op", r.op), zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("op", r.op), zap.Error(err))
		return fmt.Errorf("%s: failed to execute request: %w", r.op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		gwErr := &domain.GatewayError{
			Op:         r.op,
			StatusCode: resp.StatusCode,
			Message:    serverMessage(body),
		}
		c.logger.Error("Backend API returned error",
			zap.String("op", r.op),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return gwErr
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.String("op", r.op), zap.Error(err))
		return fmt.Errorf("%s: failed to decode response: %w", r.op, err)
	}

	c.logger.Debug("Backend API call successful", zap.String("op", r.op))
	return nil
}

// serverMessage достает поле "message" из тела ошибки
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Message
}

// statusOf возвращает HTTP статус ошибки бэкенда или 0
func statusOf(err error) int {
	var gwErr *domain.GatewayError
	if errors.As(err, &gwErr) {
		return gwErr.StatusCode
	}
	return 0
}

func itemPath(id string) string {
	return "/items/" + url.PathEscape(id)
}

func locationPath(id, field string) string {
	return "/location/" + url.PathEscape(id) + "/" + field
}

func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return &domain.ValidationError{Field: "id", Message: "location id is required"}
	}
	return nil
}
