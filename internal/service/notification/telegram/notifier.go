package telegram

import (
	"context"
	"fmt"

	"github.com/KNICEX/price-watch/internal/service/monitor"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

type Notifier struct {
	bot      *bot.Bot
	chatID   string
	threadID int
	tradeURL string
}

type Option func(n *Notifier)

// WithThreadID posts into a forum topic of the chat. Zero means the main chat.
func WithThreadID(threadID int) Option {
	return func(n *Notifier) {
		n.threadID = threadID
	}
}

func WithTradeURL(tradeURL string) Option {
	return func(n *Notifier) {
		n.tradeURL = tradeURL
	}
}

func NewNotifier(b *bot.Bot, chatID string, opts ...Option) *Notifier {
	n := &Notifier{
		bot:      b,
		chatID:   chatID,
		tradeURL: DefaultTradeURL,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func (n *Notifier) Notify(ctx context.Context, signal monitor.Signal) error {
	params := &bot.SendMessageParams{
		ChatID:    n.chatID,
		Text:      FormatMessage(signal, n.tradeURL),
		ParseMode: models.ParseModeMarkdownV1,
		LinkPreviewOptions: &models.LinkPreviewOptions{
			IsDisabled: bot.True(),
		},
	}
	if n.threadID != 0 {
		params.MessageThreadID = n.threadID
	}

	if _, err := n.bot.SendMessage(ctx, params); err != nil {
		return fmt.Errorf("send telegram message to %s: %w", n.chatID, err)
	}
	return nil
}
