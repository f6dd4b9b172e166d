package gateway

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/shenikar/crash_alert_system/internal/models"
	"golang.org/x/time/rate"
)

// TelegramScheme - префикс адреса доставки для чатов Telegram: "tg:<chat_id>"
const TelegramScheme = "tg:"

// TelegramGateway доставляет алерты сообщением бота Telegram
type TelegramGateway struct {
	bot     *bot.Bot
	limiter *rate.Limiter
}

// NewTelegramGateway создает шлюз. ratePerSecond ограничивает исходящие сообщения бота.
func NewTelegramGateway(token string, ratePerSecond int, opts ...bot.Option) (*TelegramGateway, error) {
	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Telegram bot: %w", err)
	}
	if ratePerSecond < 1 {
		ratePerSecond = 1
	}
	return &TelegramGateway{
		bot:     b,
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), ratePerSecond),
	}, nil
}

func (g *TelegramGateway) Send(ctx context.Context, address string, payload models.AlertPayload) error {
	chatID, err := strconv.ParseInt(strings.TrimPrefix(address, TelegramScheme), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid telegram address %q: %w", address, models.ErrPermanentDelivery)
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("telegram rate limit exceeded: %w", err)
	}

	_, err = g.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   payload.Title + "\n" + payload.Body,
	})
	if err != nil {
		// Бот заблокирован или чат не существует - повтор не поможет
		if errors.Is(err, bot.ErrorForbidden) || errors.Is(err, bot.ErrorBadRequest) {
			return fmt.Errorf("telegram rejected message to chat_id %d: %v: %w", chatID, err, models.ErrPermanentDelivery)
		}
		return fmt.Errorf("failed to send Telegram message to chat_id %d: %w", chatID, err)
	}
	return nil
}
