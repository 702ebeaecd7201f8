package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/0thman3698/on-demand-backend/internal/domain"
)

// TelegramAlerter raises settlement alerts in an operator chat.
type TelegramAlerter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramAlerter(token string, chatID int64, logger logger.Logger) (*TelegramAlerter, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, ops alerts disabled")
		return &TelegramAlerter{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramAlerter{bot: bot, chatID: chatID, logger: logger}, nil
}

func (a *TelegramAlerter) AlertPaymentFailed(ctx context.Context, p *domain.Payment, reason string) {
	text := fmt.Sprintf(
		"*Payment failed*\n\nPayment: %s\nBooking: %s\nAmount: %.2f\nReason: %s",
		p.ID, p.BookingID, p.Amount, reason,
	)
	a.send(ctx, text)
}

func (a *TelegramAlerter) AlertSettlementError(ctx context.Context, intentID string, err error) {
	text := fmt.Sprintf(
		"*Settlement error*\n\nIntent: %s\nError: %s\nThe gateway will retry this delivery.",
		intentID, err.Error(),
	)
	a.send(ctx, text)
}

func (a *TelegramAlerter) send(ctx context.Context, text string) {
	if a.bot == nil || a.chatID == 0 {
		a.logger.Debug("ops alert skipped (alerter disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		a.logger.Debug("ops alert skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(a.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := a.bot.Send(msg); err != nil {
		a.logger.Error("failed to send ops alert",
			logger.String("error", err.Error()),
		)
	}
}
