package monitor

import (
	"github.com/KNICEX/price-watch/pkg/decimalx"
	"github.com/shopspring/decimal"
)

// Decision is the outcome of a qualifying comparison.
type Decision struct {
	Type                 SignalType
	PercentageDifference decimal.Decimal
	Profit               decimal.Decimal
}

// Liquid reports whether the reference volume is present and reaches the floor.
func (th Thresholds) Liquid(volume decimal.NullDecimal) bool {
	return volume.Valid && !volume.Decimal.IsZero() && volume.Decimal.GreaterThanOrEqual(th.MinGlobalVolume)
}

// Qualifies reports whether AlertThreshold <= |pct| <= MaxAllowedPercentage.
func (th Thresholds) Qualifies(pct decimal.Decimal) bool {
	abs := pct.Abs()
	return abs.GreaterThanOrEqual(th.AlertThreshold) && abs.LessThanOrEqual(th.MaxAllowedPercentage)
}

// Evaluate compares the local mid-price against the global price. The second return
// value is false when the asset must not produce a signal.
func Evaluate(globalPrice, globalVolume, localMid decimal.NullDecimal, th Thresholds) (Decision, bool) {
	if !th.Liquid(globalVolume) {
		return Decision{}, false
	}
	if !decimalx.Positive(globalPrice) || !decimalx.Positive(localMid) {
		return Decision{}, false
	}

	global, local := globalPrice.Decimal, localMid.Decimal
	pct := decimalx.PercentChange(global, local)
	if !th.Qualifies(pct) {
		return Decision{}, false
	}

	if pct.IsNegative() {
		// 本地价格低于全球价格, 买入
		return Decision{
			Type:                 Buy,
			PercentageDifference: pct,
			Profit:               decimalx.PercentChange(local, global),
		}, true
	}
	return Decision{
		Type:                 Sell,
		PercentageDifference: pct,
		Profit:               pct,
	}, true
}
