package renderer

import (
	"bytes"

	"github.com/etnz/tradebook"
	md "github.com/nao1215/markdown"
)

// InstrumentsMarkdown renders instruments as a markdown table with their
// current price.
func InstrumentsMarkdown(insts []*tradebook.Instrument) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Instruments")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Name", "Issuer", "Currency", "Price"},
	}
	for _, inst := range insts {
		table.Rows = append(table.Rows, []string{
			inst.Name(),
			inst.Issuer(),
			inst.Currency(),
			Money(inst.Price(), inst.Currency()),
		})
	}
	doc.Table(table)

	return doc.String()
}
