package tradebook

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Order holds the trade details supplied by the caller when recording a trade.
type Order struct {
	Portfolio    string // Portfolio is the kind of portfolio the trade belongs to.
	Acquirer     string // Acquirer is the desk or person acquiring the instrument.
	Counterparty string // Counterparty is the other side of the trade.
	Quantity     int64  // Quantity traded, negative for a sell.
	Marketplace  string // Marketplace where the trade was executed.
	Time         string // Time of the trade, an opaque orderable label.
}

// Validate checks that every text field is set.
func (o Order) Validate() error {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"portfolio", o.Portfolio},
		{"acquirer", o.Acquirer},
		{"counterparty", o.Counterparty},
		{"marketplace", o.Marketplace},
		{"time", o.Time},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: trade %s must not be empty", ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

// Trade is one recorded transaction.
//
// Price is the instrument price when the trade was recorded. It does not follow
// later price updates, Instrument.Price does.
type Trade struct {
	Order
	ID         string          // ID is a time sortable unique identifier.
	Instrument *Instrument     // Instrument traded, shared with other trades.
	Price      decimal.Decimal // Price is the trade price.
}

// Profit returns the trade profit against the market price mp.
func (t Trade) Profit(mp decimal.Decimal) decimal.Decimal {
	return Profit(mp, t.Price, t.Quantity)
}

// Notional returns the traded amount: trade price times quantity.
func (t Trade) Notional() decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(t.Quantity))
}
