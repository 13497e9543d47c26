package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"

	"selectlist/internal/selection"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Title         string
	Mode          selection.Mode
	Rows          []*Row
	Cursor        int
	VisibleStart  int
	VisibleEnd    int
	MoreAbove     bool
	MoreBelow     bool
	StatusMessage string
	StatusIsError bool
	Confirming    bool
	ShowHelp      bool
	HelpModel     help.Model
	Keys          help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	listRender  *ListRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(configure ConfigureFunc) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		listRender:  NewListRenderer(styles, configure),
		popupRender: NewPopupRenderer(styles),
	}
}

// List returns the list renderer
func (r *Renderer) List() *ListRenderer {
	return r.listRender
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp {
		return r.popupRender.RenderPopup(r.renderHelpContent(state), state.Height, state.Width, r.styles.InfoBox)
	}

	content := &strings.Builder{}

	selected := 0
	for _, row := range state.Rows {
		if row.Selected {
			selected++
		}
	}

	title := state.Title
	if title == "" {
		title = "selectlist"
	}
	content.WriteString(r.styles.Title.Render(title))
	content.WriteString("  ")
	content.WriteString(r.styles.ModeBadge.Render(state.Mode.String()))
	content.WriteString("  ")
	content.WriteString(r.styles.Dim.Render(fmt.Sprintf("%d/%d selected", selected, len(state.Rows))))
	content.WriteString("\n")

	if len(state.Rows) == 0 {
		content.WriteString(r.styles.Dim.Render("Nothing to select."))
	} else {
		content.WriteString(r.renderList(state))
	}

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.Confirming {
			style = r.styles.Confirm.MarginTop(1)
		} else if state.StatusIsError {
			style = r.styles.StatusError
		}
		content.WriteString("\n")
		content.WriteString(style.Render(state.StatusMessage))
	}

	content.WriteString("\n\n")
	content.WriteString(r.styles.Help.Render(state.HelpModel.View(state.Keys)))

	return r.styles.Main.Render(content.String())
}

// renderList renders the rows inside the visible range
func (r *Renderer) renderList(state ViewState) string {
	width := state.Width - 4 // Account for main container padding
	if width < 30 {
		width = 30
	}

	var lines []string
	if state.MoreAbove {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", state.VisibleStart)))
	}

	end := state.VisibleEnd
	if end > len(state.Rows) {
		end = len(state.Rows)
	}
	for i := state.VisibleStart; i < end; i++ {
		lines = append(lines, r.listRender.RenderRow(state.Rows[i], state.Mode, i == state.Cursor, width))
	}

	if state.MoreBelow {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", len(state.Rows)-end)))
	}

	return strings.Join(lines, "\n")
}

// renderHelpContent renders the full key binding help for the popup
func (r *Renderer) renderHelpContent(state ViewState) string {
	h := state.HelpModel
	h.ShowAll = true

	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Keys"))
	b.WriteString("\n")
	b.WriteString(h.View(state.Keys))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("Single mode clears the list before flipping the chosen row,"))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("so choosing the selected row deselects it."))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Help.Render("Press ? or esc to close"))
	return b.String()
}
