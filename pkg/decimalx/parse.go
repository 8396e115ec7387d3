package decimalx

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

func MustFromString(s string) decimal.Decimal {
	res, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return res
}

// SafeFromString 宽松转换: "", "-" 和无法解析的字符串都返回 Valid=false, 不会报错
func SafeFromString(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}

// SafeFromAny converts a decoded JSON value (string, number or null) the same way
// SafeFromString does. Unknown types yield an invalid value.
func SafeFromAny(v any) decimal.NullDecimal {
	switch val := v.(type) {
	case nil:
		return decimal.NullDecimal{}
	case string:
		return SafeFromString(val)
	case json.Number:
		return SafeFromString(val.String())
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return decimal.NullDecimal{}
		}
		return decimal.NewNullDecimal(decimal.NewFromFloat(val))
	case float32:
		return SafeFromAny(float64(val))
	case int:
		return decimal.NewNullDecimal(decimal.NewFromInt(int64(val)))
	case int64:
		return decimal.NewNullDecimal(decimal.NewFromInt(val))
	case decimal.Decimal:
		return decimal.NewNullDecimal(val)
	default:
		return decimal.NullDecimal{}
	}
}
