package skiplist

import (
	"github.com/emirpasic/gods/utils"
)

// Comparator is a generic function that compares two keys and returns a negative number if a is smaller than b, zero
// if they are equal and a positive number if a is bigger than b.
type Comparator[K any] func(a K, b K) int

// WrapComparator adapts an untyped comparator from the gods library to a typed Comparator (i.e. to reorder a SkipList
// with the same semantics as an existing gods collection).
func WrapComparator[K any](comparator utils.Comparator) Comparator[K] {
	return func(a K, b K) int {
		return comparator(a, b)
	}
}
