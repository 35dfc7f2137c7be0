package rankedset

import (
	"github.com/iotaledger/hive.go/ds/types"

	"github.com/statmaps/orderstat/rankedmap"
)

// Iterator is an object that allows to iterate over the elements of a RankedSet (or one of its views) by providing
// methods to walk through them in a deterministic order. It is fail-fast: structural modifications of the backing
// store invalidate the Iterator and cause its methods to panic.
type Iterator[T any] struct {
	entries *rankedmap.Iterator[T, types.Empty]
}

// Iterator returns an Iterator that walks through the elements of the set in the order of the set. It accepts an
// optional starting element where the iteration begins (the first element that is bigger or equal than the given
// element in the order of the set).
func (s *RankedSet[T]) Iterator(optionalStartingElement ...T) *Iterator[T] {
	return &Iterator[T]{
		entries: s.elements.Iterator(optionalStartingElement...),
	}
}

// State returns the current IteratorState that the Iterator is in.
func (i *Iterator[T]) State() rankedmap.IteratorState {
	return i.entries.State()
}

// HasNext returns true if there is another element after the previously retrieved element that can be requested via
// the Next method.
func (i *Iterator[T]) HasNext() bool {
	return i.entries.HasNext()
}

// HasPrev returns true if there is another element before the previously retrieved element that can be requested via
// the Prev method.
func (i *Iterator[T]) HasPrev() bool {
	return i.entries.HasPrev()
}

// Next returns the next element in the Iterator and advances the internal pointer. The method panics if there is no
// next element that can be retrieved (always use HasNext to check if another element can be requested) or if the
// backing store was structurally modified since the Iterator was created.
func (i *Iterator[T]) Next() T {
	return i.entries.Next().Key
}

// Prev returns the previous element in the Iterator and moves back the internal pointer. The method panics if there
// is no previous element that can be retrieved (always use HasPrev to check if another element can be requested) or
// if the backing store was structurally modified since the Iterator was created.
func (i *Iterator[T]) Prev() T {
	return i.entries.Prev().Key
}

// Reset restarts the Iterator at the current first element of the set and resynchronizes it with the backing store
// (i.e. after structural modifications).
func (i *Iterator[T]) Reset() {
	i.entries.Reset()
}
