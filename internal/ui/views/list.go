package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"selectlist/internal/domain"
	"selectlist/internal/selection"
)

// Row is the display unit filled in for each list item
type Row struct {
	Label    string
	Detail   string
	Selected bool
}

// ConfigureFunc fills a row from an item
type ConfigureFunc func(*Row, selection.Item[domain.Person])

// ConfigurePerson shows the person's name and marks selected rows
func ConfigurePerson(row *Row, item selection.Item[domain.Person]) {
	row.Label = item.Value.Name
	row.Selected = item.Selected
	if item.Selected {
		row.Detail = "selected"
	}
}

// ListRenderer draws the rows of a selection controller
type ListRenderer struct {
	styles    *Styles
	configure ConfigureFunc
}

// NewListRenderer creates a list renderer; a nil configure uses ConfigurePerson
func NewListRenderer(styles *Styles, configure ConfigureFunc) *ListRenderer {
	if configure == nil {
		configure = ConfigurePerson
	}
	return &ListRenderer{
		styles:    styles,
		configure: configure,
	}
}

// Rows builds one row per item through the configure closure
func (r *ListRenderer) Rows(c *selection.Controller[domain.Person]) []*Row {
	var rows []*Row
	for row := range selection.Populate(c, func() *Row { return &Row{} }, r.configure) {
		rows = append(rows, row)
	}
	return rows
}

// RenderRow renders a single row
func (r *ListRenderer) RenderRow(row *Row, mode selection.Mode, isCursor bool, width int) string {
	marker := "( )"
	if mode == selection.Multiple {
		marker = "[ ]"
	}
	if row.Selected {
		if mode == selection.Multiple {
			marker = "[x]"
		} else {
			marker = "(•)"
		}
	}

	labelStyle := lipgloss.NewStyle()
	if row.Selected {
		labelStyle = r.styles.SelectedLabel
	}
	detailStyle := r.styles.Detail
	if isCursor {
		bg := r.styles.Cursor.GetBackground()
		labelStyle = labelStyle.Background(bg)
		detailStyle = detailStyle.Background(bg)
	}

	left := fmt.Sprintf("%s %s", marker, row.Label)
	line := labelStyle.Render(left)

	if row.Detail != "" {
		detail := detailStyle.Render(row.Detail)
		// Right-align the detail text
		gap := width - lipgloss.Width(left) - lipgloss.Width(row.Detail)
		if gap < 2 {
			gap = 2
		}
		spacer := strings.Repeat(" ", gap)
		if isCursor {
			spacer = r.styles.Cursor.Render(spacer)
		}
		line += spacer + detail
	} else if isCursor {
		if pad := width - lipgloss.Width(left); pad > 0 {
			line += r.styles.Cursor.Render(strings.Repeat(" ", pad))
		}
	}

	return line
}
