package monitor

import (
	"context"
	"log/slog"

	"github.com/KNICEX/price-watch/internal/schedule"
	"github.com/KNICEX/price-watch/internal/service/exchange"
)

type DivergenceMonitorTask struct {
	referenceSvc  exchange.ReferenceService
	marketSvc     exchange.MarketService
	divergenceSvc DivergenceService
	metrics       Metrics
}

func NewDivergenceMonitorTask(divergenceSvc DivergenceService, referenceSvc exchange.ReferenceService,
	marketSvc exchange.MarketService, metrics ...Metrics) schedule.Task {
	task := &DivergenceMonitorTask{
		referenceSvc:  referenceSvc,
		marketSvc:     marketSvc,
		divergenceSvc: divergenceSvc,
		metrics:       NopMetrics{},
	}

	if len(metrics) > 0 {
		task.metrics = metrics[0]
	}
	return task
}

// Run performs one analysis cycle. Fetch failures are logged and treated as empty data.
func (t *DivergenceMonitorTask) Run(ctx context.Context) error {
	slog.Info("starting analysis cycle", "reference", t.referenceSvc.Name())
	t.metrics.IncCycle()

	quotes, err := t.referenceSvc.GetStats(ctx)
	if err != nil {
		slog.Error("error fetching global currency stats", "reference", t.referenceSvc.Name(), "error", err)
		t.metrics.IncFailure(StageReference)
		quotes = nil
	}

	markets, err := t.marketSvc.GetMarkets(ctx)
	if err != nil {
		slog.Error("error fetching local markets", "error", err)
		t.metrics.IncFailure(StageMarkets)
		markets = map[string]exchange.LocalMarket{}
	}

	if len(quotes) == 0 {
		slog.Warn("no reference data, skip cycle")
		return nil
	}

	return t.divergenceSvc.Scan(ctx, quotes, markets)
}

func (t *DivergenceMonitorTask) Name() string {
	return "divergence monitor task"
}
