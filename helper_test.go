package tradebook

import (
	"testing"

	"github.com/shopspring/decimal"
)

// newTestInstrument creates an instrument in SEK or fails the test.
func newTestInstrument(t *testing.T, name string, price float64) *Instrument {
	t.Helper()
	inst, err := NewInstrument(name, "SEK", name+" AB", D(price))
	if err != nil {
		t.Fatalf("NewInstrument(%q, %v) unexpected error: %v", name, price, err)
	}
	return inst
}

// order is a helper for tests to create a valid order in a portfolio.
func order(portfolio string, quantity int64, day string) Order {
	return Order{
		Portfolio:    portfolio,
		Acquirer:     "Equity Desk",
		Counterparty: "Deutsche Bank",
		Quantity:     quantity,
		Marketplace:  "OMX",
		Time:         day,
	}
}

// record records a trade or fails the test.
func record(t *testing.T, l *Ledger, inst *Instrument, o Order) Trade {
	t.Helper()
	tr, err := l.Record(inst, o)
	if err != nil {
		t.Fatalf("Record(%s, %+v) unexpected error: %v", inst.Name(), o, err)
	}
	return tr
}

// setPrice updates a price or fails the test.
func setPrice(t *testing.T, inst *Instrument, price float64) {
	t.Helper()
	if err := inst.UpdatePrice(D(price)); err != nil {
		t.Fatalf("UpdatePrice(%v) unexpected error: %v", price, err)
	}
}

// assertDecimal fails the test if got is not numerically equal to want.
func assertDecimal(t *testing.T, what string, got decimal.Decimal, want float64) {
	t.Helper()
	if !got.Equal(D(want)) {
		t.Errorf("%s = %s, want %v", what, got, want)
	}
}
