package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Policy - ограниченный экспоненциальный retry
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Permanent оборачивает ошибку, которую не нужно повторять
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Do выполняет fn не более MaxAttempts раз с экспоненциальной задержкой.
// Возвращает число фактических вызовов и последнюю ошибку.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) (int, error) {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}

	eb := backoff.NewExponentialBackOff()
	if p.BaseDelay > 0 {
		eb.InitialInterval = p.BaseDelay
	}
	if p.MaxDelay > 0 {
		eb.MaxInterval = p.MaxDelay
	} else {
		eb.MaxInterval = eb.InitialInterval * 8
	}
	eb.MaxElapsedTime = 0

	b := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(p.MaxAttempts-1)), ctx)

	attempts := 0
	err := backoff.Retry(func() error {
		attempts++
		return fn(ctx)
	}, b)
	return attempts, err
}
