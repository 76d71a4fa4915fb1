package iterator

import "iter"

// Iterator is a pull-style cursor. Value is only meaningful after Next
// has returned true.
type Iterator[T any] interface {
	Next() bool
	Value() T
}

type sliceIterator[T any] struct {
	items   []T
	index   int
	step    int
	current T
}

func (it *sliceIterator[T]) Next() bool {
	if it.index < 0 || it.index >= len(it.items) {
		return false
	}
	it.current = it.items[it.index]
	it.index += it.step
	return true
}

func (it *sliceIterator[T]) Value() T {
	return it.current
}

// FilterIterator yields only the elements of src that match.
type FilterIterator[T any] struct {
	src   Iterator[T]
	match func(T) bool
	next  T
}

// Filter wraps src so that Next skips elements rejected by match.
func Filter[T any](src Iterator[T], match func(T) bool) *FilterIterator[T] {
	return &FilterIterator[T]{src: src, match: match}
}

func (fi *FilterIterator[T]) Next() bool {
	for fi.src.Next() {
		if v := fi.src.Value(); fi.match(v) {
			fi.next = v
			return true
		}
	}
	return false
}

func (fi *FilterIterator[T]) Value() T {
	return fi.next
}

// Seq adapts a pull iterator to range-over-func.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Collect drains seq into a slice.
func Collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for v := range seq {
		out = append(out, v)
	}
	return out
}
