package notify

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func NewTelegramNotifier(token string, chatID int64) (*TelegramNotifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("could not create telegram client: %w", err)
	}

	return &TelegramNotifier{
		api:    api,
		chatID: chatID,
		logger: log.With().Str("component", "TelegramNotifier").Logger(),
	}, nil
}

// TelegramNotifier sends the alert as a Telegram message when the reminder comes
// due. Send failures are logged; the reminder is not retried.
type TelegramNotifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger zerolog.Logger
}

func (n *TelegramNotifier) Notify(title string, body string, fireAt time.Time) error {
	n.logger.Debug().Time("fire-at", fireAt).Str("title", title).Msg("scheduling notification")
	time.AfterFunc(time.Until(fireAt), func() {
		msg := tgbotapi.NewMessage(n.chatID, fmt.Sprintf("⏰ %s\n%s", title, body))
		if _, err := n.api.Send(msg); err != nil {
			n.logger.Error().Err(err).Str("title", title).Msg("could not send telegram notification")
		}
	})
	return nil
}
