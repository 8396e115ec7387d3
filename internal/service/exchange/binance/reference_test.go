package binance

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KNICEX/price-watch/internal/service/exchange"
	"github.com/KNICEX/price-watch/pkg/decimalx"
	"github.com/adshao/go-binance/v2"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initReferenceService(t *testing.T, status int, body string) *ReferenceService {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v3/ticker/24hr" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	cli := binance.NewClient("", "")
	cli.BaseURL = srv.URL
	return NewReferenceService(cli, "USDT")
}

func TestReferenceService_GetStats(t *testing.T) {
	svc := initReferenceService(t, http.StatusOK, `[
		{"symbol":"BTCUSDT","lastPrice":"67000.10","quoteVolume":"1500000000.5"},
		{"symbol":"ETHBTC","lastPrice":"0.05","quoteVolume":"100"},
		{"symbol":"BTCUPUSDT","lastPrice":"10","quoteVolume":"60000000"},
		{"symbol":"SOLUSDT","lastPrice":"150","quoteVolume":"900000000"}
	]`)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	keys := lo.Map(stats, func(item exchange.AssetQuote, _ int) string { return item.Key })
	assert.Equal(t, []string{"BTC", "SOL"}, keys)
	assert.True(t, decimalx.MustFromString("67000.10").Equal(stats[0].Price.Decimal))
	assert.True(t, decimalx.MustFromString("1500000000.5").Equal(stats[0].Volume.Decimal))
	assert.Equal(t, "binance", svc.Name())
}

func TestReferenceService_KeepsSpotAssetsWithLeveragedLikeSuffix(t *testing.T) {
	svc := initReferenceService(t, http.StatusOK, `[
		{"symbol":"JUPUSDT","lastPrice":"0.9","quoteVolume":"80000000"},
		{"symbol":"SUPERUSDT","lastPrice":"0.7","quoteVolume":"70000000"},
		{"symbol":"ETHDOWNUSDT","lastPrice":"1.2","quoteVolume":"60000000"},
		{"symbol":"ETHBULLUSDT","lastPrice":"1.3","quoteVolume":"60000000"},
		{"symbol":"BTCUSDT","lastPrice":"67000","quoteVolume":"1500000000"}
	]`)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	keys := lo.Map(stats, func(item exchange.AssetQuote, _ int) string { return item.Key })
	assert.Equal(t, []string{"JUP", "SUPER", "BTC"}, keys)
}

func TestReferenceService_GetStatsError(t *testing.T) {
	svc := initReferenceService(t, http.StatusInternalServerError, `{"code":-1000,"msg":"boom"}`)

	stats, err := svc.GetStats(context.Background())
	assert.Error(t, err)
	assert.Empty(t, stats)
}
