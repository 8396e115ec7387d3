package monitor

import (
	"context"
	"time"

	"github.com/KNICEX/price-watch/internal/service/exchange"
	"github.com/shopspring/decimal"
)

type SignalType string

const (
	Buy  SignalType = "BUY"
	Sell SignalType = "SELL"
)

// Signal 一次合格的价差事件, 创建后不再修改
type Signal struct {
	Timestamp time.Time
	Asset     string
	Pair      exchange.TradingPair
	Type      SignalType
	// ReferencePrice is the local mid-price: entry price for BUY, sell price for SELL.
	ReferencePrice       decimal.Decimal
	TargetPrice          decimal.Decimal
	PercentageDifference decimal.Decimal
	Profit               decimal.Decimal
	Grade                *string
}

// Thresholds are the static divergence guards.
type Thresholds struct {
	AlertThreshold       decimal.Decimal
	MaxAllowedPercentage decimal.Decimal
	MinGlobalVolume      decimal.Decimal
}

// DivergenceService 价差监控服务接口
type DivergenceService interface {
	Scan(ctx context.Context, quotes []exchange.AssetQuote, markets map[string]exchange.LocalMarket) error
}

type Notifier interface {
	Notify(ctx context.Context, signal Signal) error
}

type Grader interface {
	Grade(ctx context.Context, signal Signal) (string, error)
}

// Pacer spaces out requests to the local exchange. *rate.Limiter satisfies it.
type Pacer interface {
	Wait(ctx context.Context) error
}

type Metrics interface {
	IncCycle()
	IncSignal(signalType string)
	IncFailure(stage string)
	ObserveDivergence(asset string, pct float64)
}

const (
	StageReference = "reference"
	StageMarkets   = "markets"
	StageDepth     = "depth"
	StagePersist   = "persist"
	StageNotify    = "notify"
	StageGrade     = "grade"
)
