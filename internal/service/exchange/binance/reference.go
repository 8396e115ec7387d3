package binance

import (
	"context"
	"strings"

	"github.com/KNICEX/price-watch/internal/service/exchange"
	"github.com/KNICEX/price-watch/pkg/decimalx"
	"github.com/adshao/go-binance/v2"
	"github.com/samber/lo"
)

var _ exchange.ReferenceService = (*ReferenceService)(nil)

// 杠杆代币, 价格与现货无关. 必须精确匹配, JUP / SUPER 之类是正常现货
var leveragedBase = []string{
	"BULL", "BEAR", "ETHBULL", "ETHBEAR", "EOSBULL", "EOSBEAR", "XRPBULL", "XRPBEAR",
	"BNBBULL", "BNBBEAR", "BTCUP", "BTCDOWN", "ETHUP", "ETHDOWN", "ADAUP", "ADADOWN",
	"LINKUP", "LINKDOWN", "XTZUP", "XTZDOWN", "EOSUP", "EOSDOWN", "TRXUP", "TRXDOWN",
	"DOTUP", "DOTDOWN", "LTCUP", "LTCDOWN", "UNIUP", "UNIDOWN", "SXPUP", "SXPDOWN",
	"FILUP", "FILDOWN", "YFIUP", "YFIDOWN", "BCHUP", "BCHDOWN", "AAVEUP", "AAVEDOWN",
	"SUSHIUP", "SUSHIDOWN", "XLMUP", "XLMDOWN", "1INCHUP", "1INCHDOWN", "BNBUP", "BNBDOWN",
	"XRPUP", "XRPDOWN",
}

// ReferenceService uses Binance spot 24h tickers as the global reference:
// last price as price, quote volume as volume.
type ReferenceService struct {
	cli       *binance.Client
	quote     string
	leveraged map[string]struct{}
}

func NewReferenceService(cli *binance.Client, quote string) *ReferenceService {
	return &ReferenceService{
		cli:   cli,
		quote: quote,
		leveraged: lo.SliceToMap(leveragedBase, func(item string) (string, struct{}) {
			return item, struct{}{}
		}),
	}
}

func (svc *ReferenceService) Name() string {
	return "binance"
}

func (svc *ReferenceService) GetStats(ctx context.Context) ([]exchange.AssetQuote, error) {
	stats, err := svc.cli.NewListPriceChangeStatsService().Do(ctx)
	if err != nil {
		return nil, err
	}

	stats = svc.onlyQuote(stats)

	res := lo.Map(stats, func(item *binance.PriceChangeStats, index int) exchange.AssetQuote {
		return exchange.AssetQuote{
			Key:    strings.TrimSuffix(item.Symbol, svc.quote),
			Price:  decimalx.SafeFromString(item.LastPrice),
			Volume: decimalx.SafeFromString(item.QuoteVolume),
		}
	})
	return svc.filterLeveraged(res), nil
}

func (svc *ReferenceService) onlyQuote(s []*binance.PriceChangeStats) []*binance.PriceChangeStats {
	return lo.Filter(s, func(item *binance.PriceChangeStats, index int) bool {
		return item != nil && strings.HasSuffix(item.Symbol, svc.quote) && item.Symbol != svc.quote
	})
}

// filterLeveraged 过滤掉杠杆代币
func (svc *ReferenceService) filterLeveraged(s []exchange.AssetQuote) []exchange.AssetQuote {
	return lo.Reject(s, func(item exchange.AssetQuote, index int) bool {
		_, ok := svc.leveraged[item.Key]
		return ok
	})
}
