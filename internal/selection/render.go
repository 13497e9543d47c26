package selection

import "iter"

// Render maps every item through format, in list order.
// The sequence is lazy and can be ranged over any number of times; each
// pass reflects the list as it is at that moment.
func Render[T, R any](c *Controller[T], format func(Item[T]) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for _, item := range c.All() {
			if !yield(format(item)) {
				return
			}
		}
	}
}

// Populate creates one display target per item and hands it to configure
// together with the item. The controller never looks inside the target.
func Populate[T, C any](c *Controller[T], newTarget func() C, configure func(C, Item[T])) iter.Seq[C] {
	return Render(c, func(item Item[T]) C {
		target := newTarget()
		configure(target, item)
		return target
	})
}
