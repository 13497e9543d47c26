package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"selectlist/internal/selection"
)

// RenderReport renders the whole list as text for the pager.
// Unlike the main view it is not limited to the viewport.
func (r *ListRenderer) RenderReport(title string, mode selection.Mode, rows []*Row) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(title))
	b.WriteString("\n")

	selected := 0
	width := 0
	for _, row := range rows {
		if row.Selected {
			selected++
		}
		width = max(width, lipgloss.Width(row.Label))
	}
	fmt.Fprintf(&b, "%s selection, %d of %d selected\n\n", mode, selected, len(rows))

	for i, row := range rows {
		// two columns of gap after the longest label
		line := r.RenderRow(row, mode, false, width+6+len(row.Detail))
		fmt.Fprintf(&b, "%3d  %s\n", i+1, line)
	}

	if len(rows) == 0 {
		b.WriteString(r.styles.Dim.Render("Nothing to select."))
		b.WriteString("\n")
	}

	return b.String()
}
