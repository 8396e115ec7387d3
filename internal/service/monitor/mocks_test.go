package monitor

import (
	"context"

	"github.com/KNICEX/price-watch/internal/entity"
	"github.com/KNICEX/price-watch/internal/service/exchange"
	"github.com/KNICEX/price-watch/internal/service/llm"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// ============ Mock 定义 ============

type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) GetMarkets(ctx context.Context) (map[string]exchange.LocalMarket, error) {
	args := m.Called(ctx)
	markets, _ := args.Get(0).(map[string]exchange.LocalMarket)
	return markets, args.Error(1)
}

func (m *MockMarketService) GetMidPrice(ctx context.Context, symbol string) (decimal.NullDecimal, error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(decimal.NullDecimal), args.Error(1)
}

type MockReferenceService struct {
	mock.Mock
}

func (m *MockReferenceService) GetStats(ctx context.Context) ([]exchange.AssetQuote, error) {
	args := m.Called(ctx)
	quotes, _ := args.Get(0).([]exchange.AssetQuote)
	return quotes, args.Error(1)
}

func (m *MockReferenceService) Name() string {
	return "mock"
}

type MockSignalRepo struct {
	mock.Mock
}

func (m *MockSignalRepo) Create(ctx context.Context, signal entity.Signal) (int64, error) {
	args := m.Called(ctx, signal)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSignalRepo) FindByAsset(ctx context.Context, asset string, limit int) ([]entity.Signal, error) {
	args := m.Called(ctx, asset, limit)
	return args.Get(0).([]entity.Signal), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, signal Signal) error {
	args := m.Called(ctx, signal)
	return args.Error(0)
}

type MockDivergenceService struct {
	mock.Mock
}

func (m *MockDivergenceService) Scan(ctx context.Context, quotes []exchange.AssetQuote, markets map[string]exchange.LocalMarket) error {
	args := m.Called(ctx, quotes, markets)
	return args.Error(0)
}

type MockLLMService struct {
	mock.Mock
}

func (m *MockLLMService) AskOnce(ctx context.Context, q llm.Question) (llm.Answer, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(llm.Answer), args.Error(1)
}

type countingPacer struct {
	waits int
}

func (p *countingPacer) Wait(ctx context.Context) error {
	p.waits++
	return ctx.Err()
}

type recordingMetrics struct {
	cycles   int
	signals  map[string]int
	failures map[string]int
	observed map[string]float64
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		signals:  map[string]int{},
		failures: map[string]int{},
		observed: map[string]float64{},
	}
}

func (r *recordingMetrics) IncCycle() { r.cycles++ }

func (r *recordingMetrics) IncSignal(signalType string) { r.signals[signalType]++ }

func (r *recordingMetrics) IncFailure(stage string) { r.failures[stage]++ }

func (r *recordingMetrics) ObserveDivergence(asset string, pct float64) { r.observed[asset] = pct }
