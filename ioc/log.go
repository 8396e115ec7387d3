package ioc

import (
	"context"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// LevelCritical 主循环异常退出时使用
const LevelCritical = slog.LevelError + 4

type LogConfig struct {
	Level  string `mapstructure:"level" default:"info" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" default:"json" validate:"oneof=json console"`
}

// InitLogger installs a zap backed slog default logger.
func InitLogger() *slog.Logger {
	var cfg LogConfig
	mustUnmarshalKey("log", &cfg)

	logger, err := NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	slog.SetDefault(logger)
	return logger
}

func NewLogger(cfg LogConfig) (*slog.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.EncoderConfig.TimeKey = "ts"
	zapCfg.EncoderConfig.MessageKey = "msg"
	zapCfg.Level.SetLevel(parseLevel(cfg.Level))

	zl, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}
	return slog.New(zapslog.NewHandler(zl.Core(), zapslog.WithCaller(true))), nil
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Critical logs at LevelCritical on the default logger.
func Critical(msg string, args ...any) {
	slog.Log(context.Background(), LevelCritical, msg, args...)
}
