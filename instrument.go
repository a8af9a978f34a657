package tradebook

import (
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Instrument is a tradable financial asset.
//
// Its identity (name, currency and issuer) is immutable. Its market price
// changes over time but is always strictly positive. An Instrument is shared
// by pointer between every trade that references it, and it is safe for
// concurrent use.
type Instrument struct {
	name     string
	currency string
	issuer   string

	mu    sync.RWMutex
	price decimal.Decimal
}

// NewInstrument creates a new instrument.
//
// name, currency and issuer must be non-empty and price must be positive,
// otherwise an error wrapping ErrValidation is returned.
func NewInstrument(name, currency, issuer string, price decimal.Decimal) (*Instrument, error) {
	var missing []string
	if name == "" {
		missing = append(missing, "name")
	}
	if currency == "" {
		missing = append(missing, "currency")
	}
	if issuer == "" {
		missing = append(missing, "issuer")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: instrument %s must not be empty", ErrValidation, strings.Join(missing, ", "))
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: instrument %q price must be positive, got %s", ErrValidation, name, price)
	}
	return &Instrument{name: name, currency: currency, issuer: issuer, price: price}, nil
}

// MustInstrument is like NewInstrument but panics on invalid input.
// It is meant for instruments declared as literals.
func MustInstrument(name, currency, issuer string, price decimal.Decimal) *Instrument {
	i, err := NewInstrument(name, currency, issuer, price)
	if err != nil {
		panic(err)
	}
	return i
}

func (i *Instrument) Name() string     { return i.name }
func (i *Instrument) Currency() string { return i.currency }
func (i *Instrument) Issuer() string   { return i.issuer }

// Price returns the current market price.
func (i *Instrument) Price() decimal.Decimal {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.price
}

// UpdatePrice replaces the current market price.
//
// A non-positive price is rejected with an error wrapping ErrValidation and the
// previous price is kept.
func (i *Instrument) UpdatePrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return fmt.Errorf("%w: instrument %q price must be positive, got %s", ErrValidation, i.name, price)
	}
	i.mu.Lock()
	i.price = price
	i.mu.Unlock()
	return nil
}

// Trade records a trade of this instrument into the ledger. See Ledger.Record.
func (i *Instrument) Trade(o Order, l *Ledger) (Trade, error) {
	return l.Record(i, o)
}

// String returns a multi-line description of the instrument.
func (i *Instrument) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Instrument name: %s\n", i.name)
	fmt.Fprintf(&b, "Instrument currency: %s\n", i.currency)
	fmt.Fprintf(&b, "Instrument issuer: %s\n", i.issuer)
	fmt.Fprintf(&b, "Current price: %s", i.Price())
	return b.String()
}
