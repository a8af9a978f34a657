package tradebook

import "github.com/shopspring/decimal"

// decimals is the number of decimal places kept by prices, profits and percents.
const decimals = 2

// D is a convenient factory for decimal.Decimal from any numeric value.
//
// Float values are converted using their shortest representation, so D(0.1) is
// exactly 0.1.
func D[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// round rounds d to the package precision, half away from zero.
func round(d decimal.Decimal) decimal.Decimal { return d.Round(decimals) }
