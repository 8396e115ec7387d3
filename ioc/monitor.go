package ioc

import (
	"time"

	"github.com/KNICEX/price-watch/internal/service/llm/gemini"
	"github.com/KNICEX/price-watch/internal/service/monitor"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

type AppConfig struct {
	CycleInterval time.Duration `mapstructure:"cycle_interval" default:"300s" validate:"gt=0"`
	AssetPause    time.Duration `mapstructure:"asset_pause" default:"100ms" validate:"gte=0"`
}

func InitAppConfig() AppConfig {
	var cfg AppConfig
	mustUnmarshalKey("app", &cfg)
	return cfg
}

type DivergenceConfig struct {
	AlertThreshold       float64 `mapstructure:"alert_threshold" default:"1.0" validate:"gt=0"`
	MinGlobalVolume      float64 `mapstructure:"min_global_volume" default:"50000000" validate:"gte=0"`
	MaxAllowedPercentage float64 `mapstructure:"max_allowed_percentage" default:"100.0" validate:"gtfield=AlertThreshold"`
	SettlementCurrency   string  `mapstructure:"settlement_currency" default:"USDT" validate:"required,uppercase"`
}

func InitDivergenceConfig() DivergenceConfig {
	var cfg DivergenceConfig
	mustUnmarshalKey("divergence", &cfg)
	return cfg
}

func (cfg DivergenceConfig) Thresholds() monitor.Thresholds {
	return monitor.Thresholds{
		AlertThreshold:       decimal.NewFromFloat(cfg.AlertThreshold),
		MaxAllowedPercentage: decimal.NewFromFloat(cfg.MaxAllowedPercentage),
		MinGlobalVolume:      decimal.NewFromFloat(cfg.MinGlobalVolume),
	}
}

// InitPacer 资产之间的固定间隔
func InitPacer(cfg AppConfig) *rate.Limiter {
	return rate.NewLimiter(rate.Every(cfg.AssetPause), 1)
}

// InitGrader returns nil when grading is disabled.
func InitGrader() monitor.Grader {
	type Config struct {
		Provider string  `mapstructure:"provider" validate:"omitempty,oneof=rule gemini"`
		GradeA   float64 `mapstructure:"grade_a" default:"5" validate:"gt=0"`
		GradeB   float64 `mapstructure:"grade_b" default:"2" validate:"gt=0,ltfield=GradeA"`
		Model    string  `mapstructure:"model"`
	}

	var cfg Config
	mustUnmarshalKey("grade", &cfg)

	switch cfg.Provider {
	case "rule":
		return monitor.NewRuleGrader(cfg.GradeA, cfg.GradeB)
	case "gemini":
		var opts []gemini.Option
		if cfg.Model != "" {
			opts = append(opts, gemini.WithModel(cfg.Model))
		}
		return monitor.NewLLMGrader(gemini.NewService(InitGeminiCli(), opts...))
	default:
		return nil
	}
}

func InitMonitorOptions(cfg AppConfig, metrics monitor.Metrics) []monitor.Option {
	tgCfg := InitTelegramConfig()
	opts := []monitor.Option{
		monitor.WithPacer(InitPacer(cfg)),
		monitor.WithMetrics(metrics),
		monitor.WithNotifier(InitNotifier(tgCfg)),
		monitor.WithNotifyTimeout(tgCfg.Timeout),
	}
	if grader := InitGrader(); grader != nil {
		opts = append(opts, monitor.WithGrader(grader))
	}
	return opts
}
