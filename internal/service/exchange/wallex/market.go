package wallex

import (
	"context"
	"net/url"

	"github.com/KNICEX/price-watch/internal/service/exchange"
	"github.com/KNICEX/price-watch/pkg/decimalx"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

var _ exchange.MarketService = (*MarketService)(nil)

type marketInfo struct {
	Symbol     string `json:"symbol"`
	BaseAsset  string `json:"baseAsset"`
	QuoteAsset string `json:"quoteAsset"`
}

type marketsResult struct {
	Symbols map[string]marketInfo `json:"symbols"`
}

type depthLevel struct {
	Price    any `json:"price"`
	Quantity any `json:"quantity"`
}

type depthResult struct {
	Ask []*depthLevel `json:"ask"`
	Bid []*depthLevel `json:"bid"`
}

type MarketService struct {
	cli   *Client
	quote string
}

// NewMarketService returns the local exchange reader, keeping only markets quoted in quote.
func NewMarketService(cli *Client, quote string) *MarketService {
	return &MarketService{cli: cli, quote: quote}
}

func (svc *MarketService) GetMarkets(ctx context.Context) (map[string]exchange.LocalMarket, error) {
	var resp apiResponse[marketsResult]
	if err := svc.cli.get(ctx, "markets", nil, &resp); err != nil {
		return nil, err
	}

	onlyQuote := lo.PickBy(resp.Result.Symbols, func(_ string, m marketInfo) bool {
		return m.QuoteAsset == svc.quote
	})
	return lo.MapValues(onlyQuote, func(m marketInfo, symbol string) exchange.LocalMarket {
		return exchange.LocalMarket{
			Symbol:     symbol,
			BaseAsset:  m.BaseAsset,
			QuoteAsset: m.QuoteAsset,
		}
	}), nil
}

func (svc *MarketService) GetMidPrice(ctx context.Context, symbol string) (decimal.NullDecimal, error) {
	var resp apiResponse[depthResult]
	if err := svc.cli.get(ctx, "depth", url.Values{"symbol": {symbol}}, &resp); err != nil {
		return decimal.NullDecimal{}, err
	}

	asks, bids := resp.Result.Ask, resp.Result.Bid
	if len(asks) == 0 || len(bids) == 0 || asks[0] == nil || bids[0] == nil {
		return decimal.NullDecimal{}, nil
	}

	lowAsk := decimalx.SafeFromAny(asks[0].Price)
	highBid := decimalx.SafeFromAny(bids[0].Price)
	// 零价格视为无效
	if !decimalx.Positive(lowAsk) || !decimalx.Positive(highBid) {
		return decimal.NullDecimal{}, nil
	}
	return decimal.NewNullDecimal(decimalx.Mid(lowAsk.Decimal, highBid.Decimal)), nil
}
