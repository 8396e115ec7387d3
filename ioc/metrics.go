package ioc

import (
	"github.com/KNICEX/price-watch/internal/service/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

func InitMetrics() *metrics.Recorder {
	return metrics.NewRecorder(prometheus.DefaultRegisterer)
}

// InitMetricsServer returns nil when metrics.addr is empty.
func InitMetricsServer() *metrics.Server {
	type Config struct {
		Addr string `mapstructure:"addr" validate:"omitempty,hostname_port"`
	}

	var cfg Config
	mustUnmarshalKey("metrics", &cfg)
	if cfg.Addr == "" {
		return nil
	}
	return metrics.NewServer(cfg.Addr, prometheus.DefaultGatherer)
}
