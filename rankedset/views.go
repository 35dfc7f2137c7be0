package rankedset

import (
	"github.com/statmaps/orderstat/skiplist"
)

// DescendingSet returns a reversed live view of this set: it contains the same elements in the opposite order and
// changes of either side are visible through the other.
func (s *RankedSet[T]) DescendingSet() *RankedSet[T] {
	return &RankedSet[T]{
		elements: s.elements.DescendingMap(),
	}
}

// SubSet returns a live view of the portion of this set whose elements range from fromElement to toElement (in the
// order of this set). The method panics if fromElement is bigger than toElement.
func (s *RankedSet[T]) SubSet(fromElement T, fromInclusive bool, toElement T, toInclusive bool) *RankedSet[T] {
	return &RankedSet[T]{
		elements: s.elements.SubMap(fromElement, fromInclusive, toElement, toInclusive),
	}
}

// HeadSet returns a live view of the portion of this set whose elements are smaller than (or equal to, if inclusive
// is true) the given element (in the order of this set).
func (s *RankedSet[T]) HeadSet(toElement T, inclusive bool) *RankedSet[T] {
	return &RankedSet[T]{
		elements: s.elements.HeadMap(toElement, inclusive),
	}
}

// TailSet returns a live view of the portion of this set whose elements are bigger than (or equal to, if inclusive is
// true) the given element (in the order of this set).
func (s *RankedSet[T]) TailSet(fromElement T, inclusive bool) *RankedSet[T] {
	return &RankedSet[T]{
		elements: s.elements.TailMap(fromElement, inclusive),
	}
}

// Range returns a live view of the portion of this set whose elements range from fromElement (inclusive) to toElement
// (exclusive), which mirrors the most common way of slicing a sorted collection.
func (s *RankedSet[T]) Range(fromElement T, toElement T) *RankedSet[T] {
	return &RankedSet[T]{
		elements: s.elements.Range(fromElement, toElement),
	}
}

// Comparator returns the Comparator that defines the order of this set.
func (s *RankedSet[T]) Comparator() skiplist.Comparator[T] {
	return s.elements.Comparator()
}
