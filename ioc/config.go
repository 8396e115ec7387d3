package ioc

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "PRICEWATCH"

// 环境变量需要显式绑定才会出现在 AllSettings 里
var envKeys = []string{
	"app.cycle_interval",
	"app.asset_pause",
	"divergence.alert_threshold",
	"divergence.min_global_volume",
	"divergence.max_allowed_percentage",
	"divergence.settlement_currency",
	"wallex.base_url",
	"wallex.trade_url",
	"wallex.timeout",
	"reference.provider",
	"cex.binance.api_key",
	"cex.binance.api_secret",
	"db.dsn",
	"telegram.token",
	"telegram.chat_id",
	"telegram.message_thread_id",
	"telegram.timeout",
	"grade.provider",
	"grade.model",
	"llm.gemini.api_key",
	"metrics.addr",
	"log.level",
	"log.format",
}

var validate = validator.New()

// InitViper loads .env, then the optional --config file, then PRICEWATCH_* env vars.
func InitViper(args []string) error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	fs := pflag.NewFlagSet("price-watch", pflag.ContinueOnError)
	// --config=./config/xxx.yaml
	file := fs.String("config", "", "specify config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	for _, key := range envKeys {
		if err := viper.BindEnv(key); err != nil {
			return err
		}
	}

	if *file == "" {
		return nil
	}
	viper.SetConfigFile(*file)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

// unmarshalKey fills cfg from struct defaults, overlays the viper section, then validates.
func unmarshalKey(key string, cfg any) error {
	if err := defaults.Set(cfg); err != nil {
		return fmt.Errorf("set defaults for %s: %w", key, err)
	}
	// UnmarshalKey 读不到只绑定了环境变量的嵌套 key, 先从 AllSettings 取出整段
	sub := viper.New()
	if err := sub.MergeConfigMap(settingsAt(viper.AllSettings(), key)); err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := sub.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshal %s: %w", key, err)
	}
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid %s config: %w", key, err)
	}
	return nil
}

func settingsAt(settings map[string]any, key string) map[string]any {
	node := settings
	for _, part := range strings.Split(key, ".") {
		next, ok := node[part].(map[string]any)
		if !ok {
			return map[string]any{}
		}
		node = next
	}
	return node
}

func mustUnmarshalKey(key string, cfg any) {
	if err := unmarshalKey(key, cfg); err != nil {
		panic(err)
	}
}
