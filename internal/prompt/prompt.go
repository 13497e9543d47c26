package prompt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"selectlist/internal/domain"
	"selectlist/internal/selection"
)

const doneLabel = "Done"

const (
	itemSelectorIcon       = `{{if .Selected}}{{ .Marker | green }}{{else}}{{ .Marker }}{{end}}`
	doneSelectorIcon       = `{{if .Done}}✔{{else}}` + itemSelectorIcon + `{{end}}`
	doneSelectorActiveIcon = `{{if .Done}}{{"✔" | green}}{{else}}` + itemSelectorIcon + `{{end}}`
)

// entry is one line of the prompt
type entry struct {
	Label    string
	Marker   string
	Selected bool
	Done     bool
}

// Runner is the seam promptui.Select is used through, so the loop can be tested
type Runner func(sel *promptui.Select) (int, error)

func runSelect(sel *promptui.Select) (int, error) {
	index, _, err := sel.Run()
	return index, err
}

// Host drives a selection controller from a plain line-based prompt
type Host struct {
	title      string
	controller *selection.Controller[domain.Person]
	run        Runner
}

// New creates a prompt host
func New(title string, controller *selection.Controller[domain.Person]) *Host {
	return &Host{
		title:      title,
		controller: controller,
		run:        runSelect,
	}
}

// WithRunner replaces the function that shows the prompt
func (h *Host) WithRunner(run Runner) *Host {
	h.run = run
	return h
}

// entries renders the controller into prompt lines, with Done first
func (h *Host) entries() []entry {
	mode := h.controller.Mode()
	entries := []entry{{Label: doneLabel, Done: true}}
	for e := range selection.Render(h.controller, func(item selection.Item[domain.Person]) entry {
		return entry{
			Label:    item.Value.Name,
			Marker:   marker(mode, item.Selected),
			Selected: item.Selected,
		}
	}) {
		entries = append(entries, e)
	}
	return entries
}

func marker(mode selection.Mode, selected bool) string {
	switch {
	case mode == selection.Multiple && selected:
		return "[x]"
	case mode == selection.Multiple:
		return "[ ]"
	case selected:
		return "(•)"
	default:
		return "( )"
	}
}

// Run shows the prompt until Done is chosen, toggling each picked item
func (h *Host) Run() error {
	cursor := 0
	for {
		entries := h.entries()

		sel := &promptui.Select{
			Label: fmt.Sprintf("%s (%s)", h.title, h.controller.Mode()),
			Items: entries,
			Templates: &promptui.SelectTemplates{
				Active:   "→ " + doneSelectorActiveIcon + " {{ .Label }}",
				Inactive: "  " + doneSelectorIcon + " {{ .Label | cyan }}",
			},
			Size:         min(len(entries), 16),
			CursorPos:    cursor,
			HideSelected: true,
			Searcher: func(input string, index int) bool {
				return strings.Contains(strings.ToLower(entries[index].Label), strings.ToLower(input))
			},
		}

		index, err := h.run(sel)
		if err != nil {
			return errors.Wrap(err, "prompt failed")
		}

		if index == 0 {
			return nil
		}

		// Entry 0 is Done, so list positions are shifted by one
		if err := h.controller.Toggle(index - 1); err != nil {
			return errors.Wrap(err, "toggle failed")
		}
		log.Debug().Int("index", index-1).Msg("Toggled item from prompt")
		cursor = index
	}
}

// PrintSummary writes the selected names in the style of the prompt's confirmation line
func PrintSummary(w io.Writer, title string, selected []domain.Person) {
	names := make([]string, len(selected))
	for i, p := range selected {
		names[i] = p.Name
	}
	summary := strings.Join(names, ", ")
	if summary == "" {
		summary = "nothing selected"
	}
	fmt.Fprintf(w, "%s %s\n", color.GreenString("✔"), color.HiBlackString("%s: %s", title, summary))
}
