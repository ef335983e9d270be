// Package renderer turns the engine's report values into markdown strings,
// ready to print raw or through a terminal markdown renderer.
package renderer

import (
	"fmt"
	"strings"

	"github.com/parkrow/propfin"
)

// mdRenderer accumulates a markdown document.
type mdRenderer struct {
	*strings.Builder
}

func newRenderer() *mdRenderer {
	return &mdRenderer{Builder: &strings.Builder{}}
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// renderItemRows writes one table row per classified line item.
func (r *mdRenderer) renderItemRows(items []propfin.ClassifiedLineItem) {
	for _, it := range items {
		r.Printf("| %s | %s | %s |\n", it.AccountName, it.Category, it.Amount)
	}
}

// renderSection writes one statement section as a table with a total row.
func (r *mdRenderer) renderSection(title string, s propfin.StatementSection) {
	r.Printf("## %s\n\n", title)
	if len(s.Items) == 0 {
		r.Printf("No activity.\n\n")
		return
	}
	r.Printf("| Account | Category | Amount |\n")
	r.Printf("|:---|:---|---:|\n")
	r.renderItemRows(s.Items)
	r.Printf("| **Total** | | **%s** |\n", s.Total)
	r.Printf("\n")
}
