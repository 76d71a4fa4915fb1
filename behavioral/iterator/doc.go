// Package iterator walks collections without exposing how they store
// their elements.
//
// Two styles are provided side by side: the classic pull Iterator[T]
// (Next/Value) and Go's range-over-func iter.Seq[T]. Seq adapts any
// Iterator to the latter, and Collect drains either into a slice.
package iterator
