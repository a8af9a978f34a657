package renderer

import (
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/etnz/tradebook"
	"github.com/shopspring/decimal"
)

// Report is the view of a tradebook.Report used by templates.
// Amounts are already formatted.
type Report struct {
	Title              string
	Category           string
	Groups             []Group
	TotalProfit        string
	TotalProfitPercent string
}

// Group is the view of a report group.
type Group struct {
	Key    string
	Profit string // Profit of the group, only set when all its trades share one currency.
	Lines  []Line
}

// Line is the view of a valued trade.
type Line struct {
	Name          string
	Issuer        string
	MarketPrice   string
	TradePrice    string
	Profit        string
	ProfitPercent string
	Currency      string
	Quantity      string
	Day           string
}

// NewReport creates the view of r.
func NewReport(r *tradebook.Report) *Report {
	v := &Report{
		Title:              "Positions by " + r.Category.String(),
		Category:           r.Category.String(),
		Groups:             make([]Group, 0, len(r.Groups)),
		TotalProfit:        signed(r.TotalProfit),
		TotalProfitPercent: percent(r.TotalProfitPercent),
	}
	for _, g := range r.Groups {
		vg := Group{Key: g.Key, Lines: make([]Line, 0, len(g.Lines))}
		cur := ""
		for i, ln := range g.Lines {
			c := ln.Instrument.Currency()
			if i == 0 {
				cur = c
			} else if cur != c {
				cur = ""
			}
			vg.Lines = append(vg.Lines, Line{
				Name:          ln.Instrument.Name(),
				Issuer:        ln.Instrument.Issuer(),
				MarketPrice:   Money(ln.MarketPrice, c),
				TradePrice:    Money(ln.Price, c),
				Profit:        Money(ln.Profit, c),
				ProfitPercent: percent(ln.ProfitPercent),
				Currency:      c,
				Quantity:      strconv.FormatInt(ln.Quantity, 10),
				Day:           ln.Time,
			})
		}
		if cur != "" {
			vg.Profit = Money(g.Profit, cur)
		} else {
			vg.Profit = signed(g.Profit)
		}
		v.Groups = append(v.Groups, vg)
	}
	return v
}

// Money formats an amount in a currency, using the currency's own fraction
// digits, grapheme and template.
func Money(d decimal.Decimal, code string) string {
	// to get a never nil currency the Money constructor is needed.
	cur := *money.New(0, code).Currency()
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// signed formats an amount without currency, with an explicit sign.
func signed(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + d.StringFixed(2)
	}
	return d.StringFixed(2)
}

func percent(d decimal.Decimal) string {
	return signed(d) + "%"
}
