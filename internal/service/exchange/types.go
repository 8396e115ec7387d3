package exchange

import (
	"context"

	"github.com/shopspring/decimal"
)

// MarketService reads the local exchange.
type MarketService interface {
	// GetMarkets returns tradable markets keyed by symbol, restricted to the
	// settlement currency the service was built with.
	GetMarkets(ctx context.Context) (map[string]LocalMarket, error)
	// GetMidPrice returns (best ask + best bid) / 2. An invalid value with a nil
	// error means the order book had no usable top of book.
	GetMidPrice(ctx context.Context, symbol string) (decimal.NullDecimal, error)
}

// ReferenceService reads global per-asset price and volume snapshots.
type ReferenceService interface {
	GetStats(ctx context.Context) ([]AssetQuote, error)
	Name() string
}
