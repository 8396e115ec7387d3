package exchange

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TradingPair 交易对, 例如 BTC/USDT
type TradingPair struct {
	Base  string
	Quote string
}

// NewTradingPair builds the local pair for a reference asset key, e.g. ("btc", "USDT").
// The key is kept as reported by the reference source.
func NewTradingPair(base, quote string) TradingPair {
	return TradingPair{Base: base, Quote: quote}
}

func (s TradingPair) IsZero() bool {
	return s.Base == "" || s.Quote == ""
}

// ToString returns the concatenated exchange symbol, e.g. BTCUSDT.
func (s TradingPair) ToString() string {
	return fmt.Sprintf("%s%s", s.Base, s.Quote)
}

func (s TradingPair) ToDashString() string {
	return fmt.Sprintf("%s-%s", strings.ToUpper(s.Base), strings.ToUpper(s.Quote))
}

// LocalMarket 本地交易所可交易的市场
type LocalMarket struct {
	Symbol     string
	BaseAsset  string
	QuoteAsset string
}

// AssetQuote 全球参考价格快照, Price/Volume 可能缺失
type AssetQuote struct {
	Key    string
	Price  decimal.NullDecimal
	Volume decimal.NullDecimal
}
