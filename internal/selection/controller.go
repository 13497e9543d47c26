package selection

import (
	"iter"
	"slices"
)

// Notifier is told when the list needs to be redrawn.
// There is no payload: the host is expected to redraw everything.
type Notifier interface {
	RequestRedraw()
}

// NotifierFunc adapts a plain function to Notifier
type NotifierFunc func()

func (f NotifierFunc) RequestRedraw() { f() }

type nopNotifier struct{}

func (nopNotifier) RequestRedraw() {}

// Option configures a Controller
type Option func(*options)

type options struct {
	mode     Mode
	notifier Notifier
}

// WithMode sets the initial selection mode
func WithMode(mode Mode) Option {
	return func(o *options) {
		o.mode = mode
	}
}

// WithNotifier sets who gets told to redraw after a mutation
func WithNotifier(n Notifier) Option {
	return func(o *options) {
		if n != nil {
			o.notifier = n
		}
	}
}

// Controller owns an ordered list of items and enforces the selection
// policy of its mode. It is not safe for concurrent use; hosts drive it
// from a single interaction loop.
type Controller[T any] struct {
	items    []Item[T]
	mode     Mode
	notifier Notifier
}

// NewController creates a controller owning a copy of items
func NewController[T any](items []Item[T], opts ...Option) *Controller[T] {
	o := options{mode: Single, notifier: nopNotifier{}}
	for _, opt := range opts {
		opt(&o)
	}

	return &Controller[T]{
		items:    slices.Clone(items),
		mode:     o.mode,
		notifier: o.notifier,
	}
}

// Toggle applies a tap on the item at index.
//
// In Single mode every item is cleared and the target gets the inverse of
// the flag it had before the clear, so tapping the selected item leaves
// nothing selected. In Multiple mode only the target is flipped. The list
// is left untouched when index is out of range.
func (c *Controller[T]) Toggle(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}

	target := &c.items[index]
	wasSelected := target.IsSelected()

	if c.mode == Single {
		for i := range c.items {
			c.items[i].Selected = false
		}
	}

	target.SetSelected(!wasSelected)

	c.notifier.RequestRedraw()
	return nil
}

// SetMode changes the selection mode.
// Existing selections are kept as they are, even when switching to Single
// with several items selected; the next Toggle clears them.
func (c *Controller[T]) SetMode(mode Mode) {
	c.mode = mode
	c.notifier.RequestRedraw()
}

// Mode returns the active selection mode
func (c *Controller[T]) Mode() Mode {
	return c.mode
}

// Replace discards the current list and takes ownership of a copy of items
func (c *Controller[T]) Replace(items []Item[T]) {
	c.items = slices.Clone(items)
	c.notifier.RequestRedraw()
}

// Len returns the number of items
func (c *Controller[T]) Len() int {
	return len(c.items)
}

// Item returns a copy of the item at index
func (c *Controller[T]) Item(index int) (Item[T], error) {
	if err := c.checkIndex(index); err != nil {
		return Item[T]{}, err
	}
	return c.items[index], nil
}

// Items returns a copy of all items in list order
func (c *Controller[T]) Items() []Item[T] {
	return slices.Clone(c.items)
}

// All iterates over index/item pairs in list order.
// Items are yielded by value so callers cannot bypass Toggle.
func (c *Controller[T]) All() iter.Seq2[int, Item[T]] {
	return func(yield func(int, Item[T]) bool) {
		for i, item := range c.items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Selected returns the values of all selected items in list order
func (c *Controller[T]) Selected() []T {
	var values []T
	for _, item := range c.items {
		if item.Selected {
			values = append(values, item.Value)
		}
	}
	return values
}

// SelectedIndices returns the positions of all selected items
func (c *Controller[T]) SelectedIndices() []int {
	var indices []int
	for i, item := range c.items {
		if item.Selected {
			indices = append(indices, i)
		}
	}
	return indices
}

func (c *Controller[T]) checkIndex(index int) error {
	if index < 0 || index >= len(c.items) {
		return &IndexError{Index: index, Len: len(c.items)}
	}
	return nil
}
