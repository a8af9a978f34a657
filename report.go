package tradebook

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/shopspring/decimal"
)

// Header is the first row returned by Ledger.Rows.
var Header = []string{"Name:", "Issuer:", "Market Price:", "Trading price:", "Profit/Loss:", "Profit/Loss (%):", "Currency:", "Quantity:", "Day of transaction:"}

// Line is a trade valued at a market price.
type Line struct {
	Trade
	MarketPrice   decimal.Decimal
	Profit        decimal.Decimal
	ProfitPercent decimal.Decimal
}

// newLine values t at the snapshot prices p.
func newLine(t Trade, p Prices) (Line, error) {
	mp := p.Of(t.Instrument)
	pct, err := ProfitPercent(mp, t.Price)
	if err != nil {
		return Line{}, fmt.Errorf("trade %s: %w", t.ID, err)
	}
	return Line{Trade: t, MarketPrice: mp, Profit: t.Profit(mp), ProfitPercent: pct}, nil
}

// Strings returns the line as a text row with the same columns as Header.
func (ln Line) Strings() []string {
	return []string{
		ln.Instrument.Name(),
		ln.Instrument.Issuer(),
		ln.MarketPrice.String(),
		ln.Price.String(),
		ln.Profit.String(),
		ln.ProfitPercent.String(),
		ln.Instrument.Currency(),
		strconv.FormatInt(ln.Quantity, 10),
		ln.Time,
	}
}

// Lines values every trade at the snapshot prices p, in ledger order.
func (l *Ledger) Lines(p Prices) ([]Line, error) {
	lines := make([]Line, 0, len(l.trades))
	for _, t := range l.trades {
		ln, err := newLine(t, p)
		if err != nil {
			return nil, err
		}
		lines = append(lines, ln)
	}
	return lines, nil
}

// Rows returns the ledger as text rows: Header first, then one row per trade in
// ledger order, valued at current market prices.
func (l *Ledger) Rows() ([][]string, error) {
	lines, err := l.Lines(l.Snapshot())
	if err != nil {
		return nil, err
	}
	return rows(lines), nil
}

func rows(lines []Line) [][]string {
	data := make([][]string, 0, len(lines)+1)
	data = append(data, slices.Clone(Header))
	for _, ln := range lines {
		data = append(data, ln.Strings())
	}
	return data
}

// Group is the subset of a ledger sharing the same category value.
type Group struct {
	Key    string
	Ledger *Ledger // Ledger holds the group trades in their original order.
	Lines  []Line
	Profit decimal.Decimal
}

// Rows returns the group lines as text rows, Header first.
func (g Group) Rows() [][]string { return rows(g.Lines) }

// Report is a ledger grouped by a category and valued at a single price snapshot.
type Report struct {
	Category           Category
	Groups             []Group // Groups are sorted by Key.
	TotalProfit        decimal.Decimal
	TotalProfitPercent decimal.Decimal
}

// GroupBy partitions the ledger by the values of category c and values every
// trade at the current market prices.
//
// Groups are sorted by key, and trades within a group keep the ledger order.
// Totals are computed over the whole ledger. All the figures in the report use
// the same price snapshot.
//
// It returns an error wrapping ErrValidation for an unknown category, and
// ErrDivisionByZero if the ledger total traded amount is zero (in particular
// for an empty ledger).
func (l *Ledger) GroupBy(c Category) (*Report, error) {
	if !c.valid() {
		return nil, fmt.Errorf("%w: unknown category %d", ErrValidation, int(c))
	}
	prices := l.Snapshot()

	keys := l.Column(c)
	slices.Sort(keys)
	keys = slices.Compact(keys)

	r := &Report{Category: c, Groups: make([]Group, 0, len(keys))}
	for _, key := range keys {
		sub := l.Filter(func(t Trade) bool { return c.Value(t) == key })
		lines, err := sub.Lines(prices)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", key, err)
		}
		r.Groups = append(r.Groups, Group{
			Key:    key,
			Ledger: sub,
			Lines:  lines,
			Profit: sub.TotalProfitAt(prices),
		})
	}

	r.TotalProfit = l.TotalProfitAt(prices)
	pct, err := l.TotalProfitPercentAt(prices)
	if err != nil {
		return nil, err
	}
	r.TotalProfitPercent = pct
	return r, nil
}

// Len returns the number of trades in the report.
func (r *Report) Len() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Lines)
	}
	return n
}
