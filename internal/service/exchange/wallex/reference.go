package wallex

import (
	"context"

	"github.com/KNICEX/price-watch/internal/service/exchange"
	"github.com/KNICEX/price-watch/pkg/decimalx"
	"github.com/samber/lo"
)

var _ exchange.ReferenceService = (*ReferenceService)(nil)

type currencyStat struct {
	Key       string `json:"key"`
	Price     any    `json:"price"`
	Volume24h any    `json:"volume_24h"`
}

// ReferenceService reads Wallex's global currency stats (prices and 24h volume in USD).
type ReferenceService struct {
	cli *Client
}

func NewReferenceService(cli *Client) *ReferenceService {
	return &ReferenceService{cli: cli}
}

func (svc *ReferenceService) Name() string {
	return "wallex"
}

func (svc *ReferenceService) GetStats(ctx context.Context) ([]exchange.AssetQuote, error) {
	var resp apiResponse[[]currencyStat]
	if err := svc.cli.get(ctx, "currencies/stats", nil, &resp); err != nil {
		return nil, err
	}
	return lo.Map(resp.Result, func(item currencyStat, _ int) exchange.AssetQuote {
		return exchange.AssetQuote{
			Key:    item.Key,
			Price:  decimalx.SafeFromAny(item.Price),
			Volume: decimalx.SafeFromAny(item.Volume24h),
		}
	}), nil
}
