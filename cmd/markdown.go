package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders md for the terminal, or writes it raw when it cannot
// be rendered.
func printMarkdown(w io.Writer, md string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(160),
	)
	if err != nil {
		logger.Warn().Err(err).Msg("markdown renderer unavailable")
		_, err = io.WriteString(w, md)
		return err
	}
	out, err := r.Render(md)
	if err != nil {
		logger.Warn().Err(err).Msg("cannot render markdown")
		out = md
	}
	_, err = fmt.Fprint(w, out)
	return err
}
