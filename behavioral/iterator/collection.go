package iterator

import "iter"

// Collection is an ordered aggregate that hands out iterators.
type Collection[T any] struct {
	items []T
}

// NewCollection copies items into a new Collection.
func NewCollection[T any](items ...T) *Collection[T] {
	c := &Collection[T]{}
	c.items = append(c.items, items...)
	return c
}

func (c *Collection[T]) Add(items ...T) {
	c.items = append(c.items, items...)
}

func (c *Collection[T]) Len() int {
	return len(c.items)
}

// Iterator walks the collection front to back. It sees the elements
// present when it was created.
func (c *Collection[T]) Iterator() Iterator[T] {
	return &sliceIterator[T]{items: c.items[:len(c.items):len(c.items)], index: 0, step: 1}
}

// Reverse walks the collection back to front.
func (c *Collection[T]) Reverse() Iterator[T] {
	return &sliceIterator[T]{items: c.items[:len(c.items):len(c.items)], index: len(c.items) - 1, step: -1}
}

// All yields every element in order.
func (c *Collection[T]) All() iter.Seq[T] {
	return Seq(c.Iterator())
}

// Filter yields the elements for which pred returns true.
func (c *Collection[T]) Filter(pred func(T) bool) iter.Seq[T] {
	return Seq[T](Filter(c.Iterator(), pred))
}
