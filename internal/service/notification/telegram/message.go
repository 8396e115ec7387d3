package telegram

import (
	"fmt"
	"strings"

	"github.com/KNICEX/price-watch/internal/service/monitor"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	DefaultTradeURL = "https://wallex.ir/app/trade/"
	TimeLayout      = "2006-01-02 15:04:05"
)

// 千分位格式化价格, 例如 $95,000.0000
var printer = message.NewPrinter(language.English)

// Markdown v1 不支持在实体内部转义, 直接去掉标记字符
var markupStripper = strings.NewReplacer("_", "", "*", "", "`", "", "[", "", "]", "", "(", "", ")", "")

func stripMarkup(s string) string {
	return markupStripper.Replace(s)
}

// FormatMessage renders a signal as a Markdown (v1) alert.
func FormatMessage(signal monitor.Signal, tradeURL string) string {
	asset := stripMarkup(strings.ToUpper(signal.Asset))
	symbol := stripMarkup(strings.ToUpper(signal.Pair.ToString()))
	pair := stripMarkup(signal.Pair.ToDashString())

	priceLabel, action := "Sell price", "Sell"
	if signal.Type == monitor.Buy {
		priceLabel, action = "Entry price", "Buy"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "*%s : %s*\n\n", pair, signal.Type)
	fmt.Fprintf(&sb, "%s: `$%s`\n", priceLabel, printer.Sprintf("%.4f", signal.ReferencePrice.InexactFloat64()))
	fmt.Fprintf(&sb, "Target price: `$%s`\n", printer.Sprintf("%.4f", signal.TargetPrice.InexactFloat64()))
	fmt.Fprintf(&sb, "Profit: *%s%%*\n\n", signal.Profit.StringFixed(2))
	fmt.Fprintf(&sb, "[%s %s on Wallex](%s%s)\n", action, asset, tradeURL, symbol)
	fmt.Fprintf(&sb, "_%s_", signal.Timestamp.Format(TimeLayout))
	return sb.String()
}
