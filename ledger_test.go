package tradebook

import (
	"errors"
	"slices"
	"testing"
)

func TestLedger_Record(t *testing.T) {
	abb := newTestInstrument(t, "ABB", 75)
	l := NewLedger()

	tr := record(t, l, abb, order("Stock Portfolio", 10, "0"))
	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	if tr.Instrument != abb {
		t.Errorf("Record() instrument is not shared with the caller")
	}
	if tr.ID == "" {
		t.Errorf("Record() did not assign an ID")
	}
	assertDecimal(t, "trade price", tr.Price, 75)

	// The trade price is a snapshot: later updates do not change it.
	setPrice(t, abb, 80)
	assertDecimal(t, "trade price after update", l.At(0).Price, 75)
	assertDecimal(t, "instrument price after update", l.At(0).Instrument.Price(), 80)

	tr2 := record(t, l, abb, order("Stock Portfolio", -5, "1"))
	assertDecimal(t, "second trade price", tr2.Price, 80)
	if tr2.ID <= tr.ID {
		t.Errorf("trade IDs are not increasing: %q then %q", tr.ID, tr2.ID)
	}
}

func TestLedger_RecordValidation(t *testing.T) {
	abb := newTestInstrument(t, "ABB", 75)
	valid := order("Stock Portfolio", 10, "0")

	testCases := []struct {
		name   string
		inst   *Instrument
		modify func(o *Order)
	}{
		{name: "missing instrument", inst: nil, modify: func(o *Order) {}},
		{name: "empty portfolio", inst: abb, modify: func(o *Order) { o.Portfolio = "" }},
		{name: "empty acquirer", inst: abb, modify: func(o *Order) { o.Acquirer = "" }},
		{name: "empty counterparty", inst: abb, modify: func(o *Order) { o.Counterparty = "" }},
		{name: "empty marketplace", inst: abb, modify: func(o *Order) { o.Marketplace = "" }},
		{name: "empty time", inst: abb, modify: func(o *Order) { o.Time = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewLedger()
			record(t, l, abb, valid)

			o := valid
			tc.modify(&o)
			_, err := l.Record(tc.inst, o)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("Record() error = %v, want ErrValidation", err)
			}
			if l.Len() != 1 {
				t.Errorf("Len() = %d after a failed Record, want 1", l.Len())
			}
			for _, c := range Categories() {
				if n := len(l.Column(c)); n != 1 {
					t.Errorf("len(Column(%s)) = %d after a failed Record, want 1", c, n)
				}
			}
		})
	}
}

func TestInstrument_Trade(t *testing.T) {
	volvo := newTestInstrument(t, "Volvo", 105)
	l := NewLedger()
	if _, err := volvo.Trade(order("Stock Portfolio", 3, "0"), l); err != nil {
		t.Fatalf("Trade() unexpected error: %v", err)
	}
	if l.Len() != 1 || l.At(0).Instrument != volvo {
		t.Errorf("Trade() did not record the trade into the ledger")
	}
}

func TestLedger_Column(t *testing.T) {
	abb := newTestInstrument(t, "ABB", 75)
	l := NewLedger()
	record(t, l, abb, Order{Portfolio: "Stock", Acquirer: "Equity Desk", Counterparty: "SEB", Quantity: 1, Marketplace: "OMX", Time: "0"})
	record(t, l, abb, Order{Portfolio: "Option", Acquirer: "Option Desk", Counterparty: "Deutsche Bank", Quantity: 2, Marketplace: "NSDQ", Time: "1"})

	testCases := []struct {
		category Category
		want     []string
	}{
		{ByPortfolio, []string{"Stock", "Option"}},
		{ByMarketplace, []string{"OMX", "NSDQ"}},
		{ByAcquirer, []string{"Equity Desk", "Option Desk"}},
		{ByCounterparty, []string{"SEB", "Deutsche Bank"}},
	}
	for _, tc := range testCases {
		t.Run(tc.category.String(), func(t *testing.T) {
			if got := l.Column(tc.category); !slices.Equal(got, tc.want) {
				t.Errorf("Column(%s) = %v, want %v", tc.category, got, tc.want)
			}
		})
	}
}

func TestLedger_Instruments(t *testing.T) {
	abb := newTestInstrument(t, "ABB", 75)
	volvo := newTestInstrument(t, "Volvo", 105)
	l := NewLedger()
	record(t, l, volvo, order("Stock", 1, "0"))
	record(t, l, abb, order("Stock", 1, "0"))
	record(t, l, volvo, order("Stock", 1, "1"))

	got := slices.Collect(l.Instruments())
	if len(got) != 2 || got[0] != volvo || got[1] != abb {
		t.Errorf("Instruments() = %v, want [Volvo ABB]", got)
	}
}

func TestLedger_Filter(t *testing.T) {
	abb := newTestInstrument(t, "ABB", 75)
	l := NewLedger()
	record(t, l, abb, order("Stock", 1, "0"))
	record(t, l, abb, order("Option", 2, "1"))
	record(t, l, abb, order("Stock", 3, "2"))

	sub := l.Filter(func(tr Trade) bool { return tr.Portfolio == "Stock" })
	if sub.Len() != 2 {
		t.Fatalf("Filter().Len() = %d, want 2", sub.Len())
	}
	if sub.At(0).Quantity != 1 || sub.At(1).Quantity != 3 {
		t.Errorf("Filter() did not keep the ledger order: %d, %d", sub.At(0).Quantity, sub.At(1).Quantity)
	}
	if sub.At(0).Instrument != abb {
		t.Errorf("Filter() copied the instrument")
	}
	if l.Len() != 3 {
		t.Errorf("Filter() modified the ledger")
	}

	var n int
	for i, tr := range l.All() {
		if tr.Quantity != int64(i+1) {
			t.Errorf("All() trade %d has quantity %d", i, tr.Quantity)
		}
		n++
	}
	if n != 3 {
		t.Errorf("All() yielded %d trades, want 3", n)
	}
}
