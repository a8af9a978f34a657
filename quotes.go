package tradebook

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Quotes maps an instrument name to the JSONPath expression that locates its
// price in a quote document.
//
// For instance, with the document
//
//	{"last": {"ABB": 75.3, "Volvo": "104.2"}}
//
// the quotes {"ABB": "$.last.ABB", "Volvo": "$.last.Volvo"} update both
// instruments.
type Quotes map[string]string

// Price extracts the price located by path in doc.
//
// The value can be a JSON number or a string holding a decimal number. If path
// yields a list, its first element is used.
func Price(doc any, path string) (decimal.Decimal, error) {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// jsonpath returns a list for wildcard or slice paths: keep the first one if any.
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return decimal.Zero, fmt.Errorf("no value at %q", path)
		}
		jval = jlist[0]
	}

	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("value at %q is not a number: %q", path, v)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("value at %q is not a number: %v", path, jval)
	}
}

// Apply updates the price of every instrument in insts that has a quote path.
//
// Failures are collected: an instrument that cannot be updated keeps its price
// and does not prevent the others from being updated.
func (q Quotes) Apply(doc any, insts map[string]*Instrument) error {
	var errs error
	for _, name := range q.names() {
		inst, ok := insts[name]
		if !ok {
			errs = errors.Join(errs, fmt.Errorf("%w: quote for unknown instrument %q", ErrValidation, name))
			continue
		}
		price, err := Price(doc, q[name])
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("quote for %q: %w", name, err))
			continue
		}
		if err := inst.UpdatePrice(price); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

// String returns the quotes in a stable order.
func (q Quotes) String() string {
	parts := make([]string, 0, len(q))
	for _, name := range q.names() {
		parts = append(parts, name+"="+strconv.Quote(q[name]))
	}
	return strings.Join(parts, " ")
}

func (q Quotes) names() []string {
	names := make([]string, 0, len(q))
	for name := range q {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
