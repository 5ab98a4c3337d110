// Package render formats MST results for the terminal. The styling layer is
// lipgloss; the content bytes stay exactly "<u> -- <v> (cost <w>)" per edge
// so the output remains grep-able and stable under plain pipes.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/minspan/core"
)

var (
	colorViolet = lipgloss.Color("#874BFD") // headers
	colorGreen  = lipgloss.Color("#00FF99") // totals / success
	colorText   = lipgloss.Color("#E2E8F0") // edge lines
	colorAmber  = lipgloss.Color("#F59E0B") // warnings

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorViolet)
	edgeStyle   = lipgloss.NewStyle().Foreground(colorText)
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	warnStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAmber)
)

// MST writes the selected edges in selection order, one
// "<u> -- <v> (cost <w>)" line each, followed by the total weight.
func MST(w io.Writer, edges []core.Edge, total int64) {
	fmt.Fprintln(w, headerStyle.Render("Minimum spanning tree"))
	for _, e := range edges {
		fmt.Fprintln(w, edgeStyle.Render(fmt.Sprintf("%d -- %d (cost %d)", e.From, e.To, e.Weight)))
	}
	fmt.Fprintln(w, totalStyle.Render(fmt.Sprintf("Total cost: %d", total)))
}

// Disconnected reports that no spanning tree exists.
func Disconnected(w io.Writer) {
	fmt.Fprintln(w, warnStyle.Render("graph is not connected; no spanning tree exists"))
}
