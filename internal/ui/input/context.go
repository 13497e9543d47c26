package input

import (
	"selectlist/internal/ui/state"
)

// ItemSource is the part of the list controller the input layer reads
type ItemSource interface {
	Len() int
	SelectedIndices() []int
}

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
	Items ItemSource
}

// CurrentIndex returns the cursor position
func (c *ModelContext) CurrentIndex() int {
	return c.State.Cursor
}

// TotalItems returns the number of list items
func (c *ModelContext) TotalItems() int {
	return c.Items.Len()
}

// SelectedCount returns the number of selected items
func (c *ModelContext) SelectedCount() int {
	return len(c.Items.SelectedIndices())
}
