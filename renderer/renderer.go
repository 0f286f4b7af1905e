// Package renderer turns the dashboard reports into markdown. Tabular
// screens are laid out by templates embedded next to this file; the market
// and portfolio screens are built programmatically. cmd pipes the markdown
// through glamour for the terminal.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// render executes one embedded template over its view data.
func render(file string, data any) string {
	content, err := templates.ReadFile(file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}
	tmpl, err := template.New(file).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", file, err)
	}
	return b.String()
}

// badge is the polarity marker next to a variation: up, down, or the
// neutral placeholder when the variation is missing.
func badge(v *float64) string {
	if v == nil {
		return "·"
	}
	if *v >= 0 {
		return "▲"
	}
	return "▼"
}
