package tradebook

import "encoding/json"

// MarshalJSON implements the json.Marshaler interface for Order.
func (o Order) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("portfolio", o.Portfolio)
	w.Append("acquirer", o.Acquirer)
	w.Append("counterparty", o.Counterparty)
	w.Append("marketplace", o.Marketplace)
	w.Append("quantity", o.Quantity)
	w.Append("time", o.Time)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Trade.
//
// The instrument is written by name and currency only.
func (t Trade) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("id", t.ID)
	if t.Instrument != nil {
		w.Append("instrument", t.Instrument.Name())
		w.Append("currency", t.Instrument.Currency())
	}
	w.EmbedFrom(t.Order)
	w.Append("price", t.Price)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Line.
func (ln Line) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(ln.Trade)
	w.Append("marketPrice", ln.MarketPrice)
	w.Append("profit", ln.Profit)
	w.Append("profitPercent", ln.ProfitPercent)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Group.
func (g Group) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("key", g.Key)
	w.Append("profit", g.Profit)
	lines := g.Lines
	if lines == nil {
		lines = []Line{}
	}
	w.Append("trades", lines)
	return w.MarshalJSON()
}

// MarshalJSON implements the json.Marshaler interface for Report.
func (r *Report) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("category", r.Category.String())
	groups := r.Groups
	if groups == nil {
		groups = []Group{}
	}
	w.Append("groups", groups)
	w.Append("totalProfit", r.TotalProfit)
	w.Append("totalProfitPercent", r.TotalProfitPercent)
	return w.MarshalJSON()
}

// MarshalText implements the encoding.TextMarshaler interface for Category.
func (c Category) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements the encoding.TextUnmarshaler interface for Category.
func (c *Category) UnmarshalText(text []byte) error {
	v, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

var _ json.Marshaler = (*Report)(nil)
