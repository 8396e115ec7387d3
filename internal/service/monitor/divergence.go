package monitor

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/KNICEX/price-watch/internal/entity"
	"github.com/KNICEX/price-watch/internal/repo"
	"github.com/KNICEX/price-watch/internal/service/exchange"
	"github.com/KNICEX/price-watch/pkg/decimalx"
	"github.com/samber/lo"
)

type DivergenceMonitor struct {
	marketSvc exchange.MarketService
	repo      repo.SignalRepo

	notifier Notifier
	grader   Grader
	pacer    Pacer
	metrics  Metrics

	thresholds    Thresholds
	quote         string
	notifyTimeout time.Duration
	now           func() time.Time
}

type logNotifier struct {
}

func (logNotifier) Notify(ctx context.Context, signal Signal) error {
	slog.Info("find divergence signal",
		"asset", signal.Asset,
		"type", signal.Type,
		"price", signal.ReferencePrice,
		"target", signal.TargetPrice,
		"profit", signal.Profit.StringFixed(2))
	return nil
}

type noPacer struct{}

func (noPacer) Wait(ctx context.Context) error {
	return ctx.Err()
}

type Option func(m *DivergenceMonitor)

// WithNotifier replaces the log-only notifier. A nil notifier keeps the default.
func WithNotifier(notifier Notifier) Option {
	return func(m *DivergenceMonitor) {
		if notifier != nil {
			m.notifier = notifier
		}
	}
}

func WithGrader(grader Grader) Option {
	return func(m *DivergenceMonitor) {
		m.grader = grader
	}
}

func WithPacer(pacer Pacer) Option {
	return func(m *DivergenceMonitor) {
		m.pacer = pacer
	}
}

func WithMetrics(metrics Metrics) Option {
	return func(m *DivergenceMonitor) {
		m.metrics = metrics
	}
}

func WithNotifyTimeout(timeout time.Duration) Option {
	return func(m *DivergenceMonitor) {
		m.notifyTimeout = timeout
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *DivergenceMonitor) {
		m.now = now
	}
}

// NewDivergenceMonitor compares every reference asset against the local market
// quoted in quote (the settlement currency).
func NewDivergenceMonitor(marketSvc exchange.MarketService, repo repo.SignalRepo, thresholds Thresholds, quote string, opts ...Option) *DivergenceMonitor {
	m := &DivergenceMonitor{
		marketSvc:     marketSvc,
		repo:          repo,
		thresholds:    thresholds,
		quote:         quote,
		notifier:      logNotifier{},
		pacer:         noPacer{},
		metrics:       NopMetrics{},
		notifyTimeout: 10 * time.Second,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Scan evaluates quotes sequentially in snapshot order. Only context cancellation
// is returned; every other failure skips the asset.
func (m *DivergenceMonitor) Scan(ctx context.Context, quotes []exchange.AssetQuote, markets map[string]exchange.LocalMarket) error {
	// 同一个 key 只按第一次出现的数据比较
	quotes = lo.UniqBy(quotes, func(item exchange.AssetQuote) string {
		return item.Key
	})

	for _, quote := range quotes {
		if quote.Key == "" {
			continue
		}
		if err := m.scanOne(ctx, quote, markets); err != nil {
			return err
		}
	}
	return nil
}

func (m *DivergenceMonitor) scanOne(ctx context.Context, quote exchange.AssetQuote, markets map[string]exchange.LocalMarket) error {
	if !m.thresholds.Liquid(quote.Volume) {
		return nil
	}

	pair := exchange.NewTradingPair(quote.Key, m.quote)
	symbol := pair.ToString()
	if _, ok := markets[symbol]; !ok {
		return nil
	}

	if err := m.pacer.Wait(ctx); err != nil {
		return err
	}

	mid, err := m.marketSvc.GetMidPrice(ctx, symbol)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		slog.Warn("could not fetch order book", "symbol", symbol, "error", err)
		m.metrics.IncFailure(StageDepth)
		return nil
	}
	if !mid.Valid {
		slog.Debug("skip asset without usable order book", "symbol", symbol)
		return nil
	}

	decision, ok := Evaluate(quote.Price, quote.Volume, mid, m.thresholds)
	if decimalx.Positive(quote.Price) {
		m.metrics.ObserveDivergence(strings.ToUpper(quote.Key), decimalx.PercentChange(quote.Price.Decimal, mid.Decimal).InexactFloat64())
	}
	if !ok {
		return nil
	}

	m.emit(ctx, Signal{
		Timestamp:            m.now(),
		Asset:                strings.ToUpper(quote.Key),
		Pair:                 pair,
		Type:                 decision.Type,
		ReferencePrice:       mid.Decimal,
		TargetPrice:          quote.Price.Decimal,
		PercentageDifference: decision.PercentageDifference,
		Profit:               decision.Profit,
	})
	return nil
}

// emit grades, persists, then notifies. A failure in one step never blocks the next.
func (m *DivergenceMonitor) emit(ctx context.Context, signal Signal) {
	if m.grader != nil {
		grade, err := m.grader.Grade(ctx, signal)
		if err != nil {
			slog.Warn("failed to grade signal", "asset", signal.Asset, "error", err)
			m.metrics.IncFailure(StageGrade)
		} else if grade != "" {
			signal.Grade = &grade
		}
	}

	// 保存信号
	_, err := m.repo.Create(ctx, toEntity(signal))
	if err != nil {
		slog.Error("failed to save signal", "asset", signal.Asset, "type", signal.Type, "error", err)
		m.metrics.IncFailure(StagePersist)
	} else {
		slog.Info("signal saved", "asset", signal.Asset, "type", signal.Type)
	}
	m.metrics.IncSignal(string(signal.Type))

	// 发送通知
	notifyCtx, cancel := context.WithTimeout(ctx, m.notifyTimeout)
	defer cancel()
	if err := m.notifier.Notify(notifyCtx, signal); err != nil {
		slog.Error("divergence monitor notify signal err", "asset", signal.Asset, "error", err)
		m.metrics.IncFailure(StageNotify)
	}
}

func toEntity(signal Signal) entity.Signal {
	return entity.Signal{
		Timestamp:            signal.Timestamp,
		Asset:                signal.Asset,
		SignalType:           string(signal.Type),
		EntryOrSellPrice:     signal.ReferencePrice.InexactFloat64(),
		TargetPrice:          signal.TargetPrice.InexactFloat64(),
		PercentageDifference: signal.PercentageDifference.InexactFloat64(),
		Grade:                signal.Grade,
	}
}

// NopMetrics discards every observation.
type NopMetrics struct{}

func (NopMetrics) IncCycle() {}

func (NopMetrics) IncSignal(string) {}

func (NopMetrics) IncFailure(string) {}

func (NopMetrics) ObserveDivergence(string, float64) {}
