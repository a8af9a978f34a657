package tradebook

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Profit returns the profit of a trade of quantity q at trade price tp, valued at
// market price mp, rounded to 2 decimals.
func Profit(mp, tp decimal.Decimal, q int64) decimal.Decimal {
	return round(mp.Sub(tp).Mul(decimal.NewFromInt(q)))
}

// ProfitPercent returns the profit in percent of a trade at price tp valued at
// market price mp, rounded to 2 decimals.
//
// It returns ErrDivisionByZero if tp is zero.
func ProfitPercent(mp, tp decimal.Decimal) (decimal.Decimal, error) {
	if tp.IsZero() {
		return decimal.Zero, fmt.Errorf("profit percent with a zero trade price: %w", ErrDivisionByZero)
	}
	return round(hundred.Mul(mp.Sub(tp)).Div(tp)), nil
}

// Prices is a snapshot of instrument market prices.
type Prices map[*Instrument]decimal.Decimal

// Of returns the snapshot price of inst, reading it live if it was not captured.
func (p Prices) Of(inst *Instrument) decimal.Decimal {
	if price, ok := p[inst]; ok {
		return price
	}
	return inst.Price()
}

// Snapshot reads the current price of every instrument traded in the ledger,
// exactly once each.
//
// Computations done against the same snapshot are consistent with each other
// even if prices are updated concurrently.
func (l *Ledger) Snapshot() Prices {
	p := make(Prices)
	for inst := range l.Instruments() {
		p[inst] = inst.Price()
	}
	return p
}

// TotalProfit returns the sum of every trade profit at current market prices,
// rounded to 2 decimals. It is zero for an empty ledger.
func (l *Ledger) TotalProfit() decimal.Decimal {
	return l.TotalProfitAt(l.Snapshot())
}

// TotalProfitAt is like TotalProfit but values trades with the prices p.
func (l *Ledger) TotalProfitAt(p Prices) decimal.Decimal {
	total := decimal.Zero
	for _, t := range l.trades {
		total = total.Add(t.Profit(p.Of(t.Instrument)))
	}
	return round(total)
}

// TotalProfitPercent returns the total profit relative to the total traded
// amount, in percent and rounded to 2 decimals.
//
// It returns ErrDivisionByZero if the total traded amount is zero, in
// particular for an empty ledger.
func (l *Ledger) TotalProfitPercent() (decimal.Decimal, error) {
	return l.TotalProfitPercentAt(l.Snapshot())
}

// TotalProfitPercentAt is like TotalProfitPercent but values trades with the prices p.
func (l *Ledger) TotalProfitPercentAt(p Prices) (decimal.Decimal, error) {
	notional := decimal.Zero
	for _, t := range l.trades {
		notional = notional.Add(t.Notional())
	}
	if notional.IsZero() {
		return decimal.Zero, fmt.Errorf("total profit percent with a zero traded amount: %w", ErrDivisionByZero)
	}
	return round(hundred.Mul(l.TotalProfitAt(p)).Div(notional)), nil
}
