package selection

// Selectable is anything carrying a mutable selection flag
type Selectable interface {
	IsSelected() bool
	SetSelected(selected bool)
}

// Item wraps a domain value with a selection flag.
// Items have no identity of their own; they are addressed by their position
// in the owning Controller.
type Item[T any] struct {
	Value    T
	Selected bool
}

// IsSelected reports whether the item is selected
func (i *Item[T]) IsSelected() bool {
	return i.Selected
}

// SetSelected sets the selection flag
func (i *Item[T]) SetSelected(selected bool) {
	i.Selected = selected
}

// NewItems wraps values in items, using selected to compute the initial flag.
// A nil predicate leaves every item deselected.
func NewItems[T any](values []T, selected func(T) bool) []Item[T] {
	items := make([]Item[T], len(values))
	for i, v := range values {
		items[i] = Item[T]{Value: v}
		if selected != nil {
			items[i].Selected = selected(v)
		}
	}
	return items
}

// ItemsWithFlags wraps values in items using explicit selection flags
func ItemsWithFlags[T any](values []T, flags []bool) ([]Item[T], error) {
	if len(values) != len(flags) {
		return nil, &LengthError{Values: len(values), Flags: len(flags)}
	}

	items := make([]Item[T], len(values))
	for i, v := range values {
		items[i] = Item[T]{Value: v, Selected: flags[i]}
	}
	return items, nil
}
