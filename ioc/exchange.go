package ioc

import (
	"fmt"
	"time"

	"github.com/KNICEX/price-watch/internal/service/exchange"
	bnc "github.com/KNICEX/price-watch/internal/service/exchange/binance"
	"github.com/KNICEX/price-watch/internal/service/exchange/wallex"
	"github.com/adshao/go-binance/v2"
)

type WallexConfig struct {
	BaseURL  string        `mapstructure:"base_url" default:"https://api.wallex.ir/v1/" validate:"required,url"`
	TradeURL string        `mapstructure:"trade_url" default:"https://wallex.ir/app/trade/" validate:"required,url"`
	Timeout  time.Duration `mapstructure:"timeout" default:"10s" validate:"gt=0"`
}

func InitWallexConfig() WallexConfig {
	var cfg WallexConfig
	mustUnmarshalKey("wallex", &cfg)
	return cfg
}

func InitWallexCli(cfg WallexConfig) *wallex.Client {
	return wallex.NewClient(cfg.BaseURL, wallex.WithTimeout(cfg.Timeout))
}

func InitBinanceCli() *binance.Client {
	type Config struct {
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	}

	var cfg Config
	mustUnmarshalKey("cex.binance", &cfg)

	return binance.NewClient(cfg.ApiKey, cfg.ApiSecret)
}

// InitReferenceService picks the global price source by reference.provider.
func InitReferenceService(wallexCli *wallex.Client, quote string) exchange.ReferenceService {
	type Config struct {
		Provider string `mapstructure:"provider" default:"wallex" validate:"oneof=wallex binance"`
	}

	var cfg Config
	mustUnmarshalKey("reference", &cfg)

	switch cfg.Provider {
	case "binance":
		return bnc.NewReferenceService(InitBinanceCli(), quote)
	case "wallex":
		return wallex.NewReferenceService(wallexCli)
	default:
		panic(fmt.Sprintf("unknown reference provider %q", cfg.Provider))
	}
}
