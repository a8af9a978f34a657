package renderer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/etnz/tradebook"
)

// Center centers s in a field of width runes. When the padding is odd the
// extra space goes left only if both the padding and the width are odd.
// A string longer than width is returned unchanged.
func Center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	pad := width - n
	left := pad/2 + (pad & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Width returns the length of the longest cell among rows.
func Width(rows ...[][]string) int {
	w := 0
	for _, data := range rows {
		for _, row := range data {
			for _, cell := range row {
				w = max(w, utf8.RuneCountInString(cell))
			}
		}
	}
	return w
}

// Sheet renders rows as lines of cells all centered to the same width.
func Sheet(rows [][]string, width int) string {
	var b strings.Builder
	for _, row := range rows {
		for _, cell := range row {
			b.WriteString(Center(cell, width))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ReportWidth returns the longest cell of the whole report, headers included.
func ReportWidth(r *tradebook.Report) int {
	groups := make([][][]string, 0, len(r.Groups))
	for _, g := range r.Groups {
		groups = append(groups, g.Rows())
	}
	return Width(groups...)
}

// Text renders a report for the console: a "Positions:" title, then each group
// with its label and its trades, then the total profit and total profit in
// percent of the whole ledger.
//
// Every cell of the report is padded to the same width.
func Text(r *tradebook.Report) string {
	width := ReportWidth(r)

	var b strings.Builder
	fmt.Fprintln(&b, "Positions:")
	for _, g := range r.Groups {
		fmt.Fprintf(&b, "\n%s: \n\n", g.Key)
		fmt.Fprintln(&b, Sheet(g.Rows(), width))
	}
	fmt.Fprintf(&b, "Total profit: %s\n", r.TotalProfit)
	fmt.Fprintf(&b, "Total profit (%%): %s\n\n\n", r.TotalProfitPercent)
	return b.String()
}
