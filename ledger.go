package tradebook

import (
	"fmt"
	"iter"
	"slices"
)

// Ledger is an append-only list of trades.
//
// Trades are kept in recording order. Instruments are shared, not copied: many
// trades may point to the same Instrument.
type Ledger struct {
	trades []Trade
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{trades: make([]Trade, 0)}
}

// Record validates the order and appends a new trade of inst to the ledger,
// priced at the instrument's current price.
//
// This is the only way to modify a ledger. On error the ledger is unchanged.
func (l *Ledger) Record(inst *Instrument, o Order) (Trade, error) {
	if inst == nil {
		return Trade{}, fmt.Errorf("%w: trade instrument is missing", ErrValidation)
	}
	if err := o.Validate(); err != nil {
		return Trade{}, err
	}
	t := Trade{
		Order:      o,
		ID:         newTradeID(),
		Instrument: inst,
		Price:      inst.Price(),
	}
	l.trades = append(l.trades, t)
	return t, nil
}

// Len returns the number of trades.
func (l *Ledger) Len() int { return len(l.trades) }

// At returns the i-th trade.
func (l *Ledger) At(i int) Trade { return l.trades[i] }

// All iterates over the trades in recording order.
func (l *Ledger) All() iter.Seq2[int, Trade] {
	return slices.All(l.trades)
}

// Column returns the values of category c for every trade, in ledger order.
func (l *Ledger) Column(c Category) []string {
	col := make([]string, len(l.trades))
	for i, t := range l.trades {
		col[i] = c.Value(t)
	}
	return col
}

// Instruments iterates over the distinct instruments traded, in order of first
// appearance.
func (l *Ledger) Instruments() iter.Seq[*Instrument] {
	return func(yield func(*Instrument) bool) {
		seen := make(map[*Instrument]bool)
		for _, t := range l.trades {
			if seen[t.Instrument] {
				continue
			}
			seen[t.Instrument] = true
			if !yield(t.Instrument) {
				return
			}
		}
	}
}

// Filter returns a new ledger with the trades matching keep, in the same order.
// Instruments are still shared with l.
func (l *Ledger) Filter(keep func(Trade) bool) *Ledger {
	sub := NewLedger()
	for _, t := range l.trades {
		if keep(t) {
			sub.trades = append(sub.trades, t)
		}
	}
	return sub
}
