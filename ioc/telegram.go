package ioc

import (
	"log/slog"
	"time"

	"github.com/KNICEX/price-watch/internal/service/monitor"
	"github.com/KNICEX/price-watch/internal/service/notification/telegram"
	"github.com/go-telegram/bot"
)

type TelegramConfig struct {
	Token           string        `mapstructure:"token"`
	ChatID          string        `mapstructure:"chat_id"`
	MessageThreadID int           `mapstructure:"message_thread_id" validate:"gte=0"`
	Timeout         time.Duration `mapstructure:"timeout" default:"10s" validate:"gt=0"`
}

func InitTelegramConfig() TelegramConfig {
	var cfg TelegramConfig
	mustUnmarshalKey("telegram", &cfg)
	return cfg
}

// InitNotifier returns nil when the bot is not configured, alerts are then only logged.
func InitNotifier(cfg TelegramConfig) monitor.Notifier {
	if cfg.Token == "" || cfg.ChatID == "" {
		slog.Warn("telegram token or chat id not set, alerts will only be logged")
		return nil
	}

	b, err := bot.New(cfg.Token, bot.WithSkipGetMe())
	if err != nil {
		panic(err)
	}
	return telegram.NewNotifier(b, cfg.ChatID,
		telegram.WithThreadID(cfg.MessageThreadID),
		telegram.WithTradeURL(InitWallexConfig().TradeURL),
	)
}
