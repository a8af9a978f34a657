// Package renderer turns tradebook reports into text, markdown or JSON.
package renderer

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/tradebook"
)

//go:embed templates/*.md
var templates embed.FS

// Markdown renders the report to a markdown string: one table per group and
// the totals.
func Markdown(r *tradebook.Report) string {
	partials := map[string]string{
		"report_title":  "report_title.md",
		"report_group":  "report_group.md",
		"report_totals": "report_totals.md",
	}
	return renderTemplate("report", "report.md", partials, NewReport(r))
}

// JSON renders the report as indented JSON.
func JSON(r *tradebook.Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, "templates/"+file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
