// Package gateway содержит реализации шлюзов push-доставки.
package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shenikar/crash_alert_system/internal/models"
)

const signatureHeader = "X-Signature"

// pushRequest - тело запроса к HTTP push-шлюзу
type pushRequest struct {
	Address string              `json:"address"`
	Alert   models.AlertPayload `json:"alert"`
}

// HTTPGateway отправляет алерт POST-запросом на внешний push-шлюз
type HTTPGateway struct {
	url        string
	secret     string
	httpClient *http.Client
}

// NewHTTPGateway создает HTTPGateway. Таймаут одного вызова задает вызывающий через ctx,
// timeout клиента - верхняя граница на случай, если ctx без дедлайна.
func NewHTTPGateway(url, secret string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		url:    url,
		secret: secret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send выполняет ровно один вызов шлюза. 4xx (кроме 408 и 429) считаются постоянной ошибкой.
func (g *HTTPGateway) Send(ctx context.Context, address string, payload models.AlertPayload) error {
	body, err := json.Marshal(pushRequest{Address: address, Alert: payload})
	if err != nil {
		return fmt.Errorf("failed to marshal push request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Подписываем тело, если секрет задан
	if g.secret != "" {
		req.Header.Set(signatureHeader, generateHMACSHA256(body, g.secret))
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push gateway unreachable: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusRequestTimeout || resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("push gateway throttled: status %d", resp.StatusCode)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("push gateway rejected alert with status %d: %w", resp.StatusCode, models.ErrPermanentDelivery)
	default:
		return fmt.Errorf("push gateway failed with status %d", resp.StatusCode)
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
