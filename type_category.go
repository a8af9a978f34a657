package tradebook

import "fmt"

// Category is a trade attribute a ledger can be grouped by.
type Category int

const (
	// ByPortfolio groups trades by the portfolio they belong to. It is the default.
	ByPortfolio Category = iota
	// ByMarketplace groups trades by the market where they were executed.
	ByMarketplace
	// ByAcquirer groups trades by the desk or person who acquired them.
	ByAcquirer
	// ByCounterparty groups trades by the other side of the transaction.
	ByCounterparty
)

// Categories returns all the categories, default first.
func Categories() []Category {
	return []Category{ByPortfolio, ByMarketplace, ByAcquirer, ByCounterparty}
}

func (c Category) String() string {
	switch c {
	case ByPortfolio:
		return "portfolio"
	case ByMarketplace:
		return "marketplace"
	case ByAcquirer:
		return "acquirer"
	case ByCounterparty:
		return "counterparty"
	default:
		return "unknown"
	}
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "portfolio":
		return ByPortfolio, nil
	case "marketplace":
		return ByMarketplace, nil
	case "acquirer":
		return ByAcquirer, nil
	case "counterparty":
		return ByCounterparty, nil
	default:
		return 0, fmt.Errorf("%w: unknown category %q", ErrValidation, s)
	}
}

// Value returns the value of this category's attribute in t.
func (c Category) Value(t Trade) string {
	switch c {
	case ByPortfolio:
		return t.Portfolio
	case ByMarketplace:
		return t.Marketplace
	case ByAcquirer:
		return t.Acquirer
	case ByCounterparty:
		return t.Counterparty
	default:
		panic(fmt.Sprintf("unsupported category %d", int(c)))
	}
}

// valid reports whether c is one of the declared categories.
func (c Category) valid() bool {
	return c >= ByPortfolio && c <= ByCounterparty
}
