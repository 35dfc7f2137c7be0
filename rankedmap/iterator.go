package rankedmap

import (
	"github.com/statmaps/orderstat/skiplist"
)

// Iterator is an object that allows to iterate over the entries of a RankedMap (or one of its views) by providing
// methods to walk through them in a deterministic order. It is fail-fast: structural modifications of the backing
// store invalidate the Iterator and cause its methods to panic (updating the value of an existing key does not).
type Iterator[K any, V any] struct {
	view    *RankedMap[K, V]
	current *skiplist.Node[K, V]
	version uint64
	state   IteratorState
}

// newIterator is an internal utility function that creates a new Iterator over the given view that starts at the
// given node.
func newIterator[K any, V any](view *RankedMap[K, V], startingNode *skiplist.Node[K, V]) *Iterator[K, V] {
	return &Iterator[K, V]{
		view:    view,
		current: startingNode,
		version: view.store.Version(),
	}
}

// State returns the current IteratorState that the Iterator is in.
func (i *Iterator[K, V]) State() IteratorState {
	return i.state
}

// HasNext returns true if there is another Entry after the previously retrieved Entry that can be requested via the
// Next method.
func (i *Iterator[K, V]) HasNext() bool {
	i.assertUnmodified()

	switch i.state {
	case InitialState, LeftEndReachedState:
		return i.current != nil
	case IterationStartedState:
		return i.nextNode(i.current) != nil
	}

	return false
}

// HasPrev returns true if there is another Entry before the previously retrieved Entry that can be requested via the
// Prev method.
func (i *Iterator[K, V]) HasPrev() bool {
	i.assertUnmodified()

	switch i.state {
	case InitialState, RightEndReachedState:
		return i.current != nil
	case IterationStartedState:
		return i.prevNode(i.current) != nil
	}

	return false
}

// Next returns the next Entry in the Iterator and advances the internal pointer. The method panics if there is no
// next Entry that can be retrieved (always use HasNext to check if another Entry can be requested) or if the backing
// store was structurally modified since the Iterator was created.
func (i *Iterator[K, V]) Next() *Entry[K, V] {
	i.assertUnmodified()

	if i.state == RightEndReachedState || i.current == nil {
		panic("no next element found in iterator")
	}

	if i.state == IterationStartedState {
		i.current = i.nextNode(i.current)
	}
	if i.current == nil {
		panic("no next element found in iterator")
	}

	if i.nextNode(i.current) == nil {
		i.state = RightEndReachedState
	} else {
		i.state = IterationStartedState
	}

	return newEntry(i.current)
}

// Prev returns the previous Entry in the Iterator and moves back the internal pointer. The method panics if there is
// no previous Entry that can be retrieved (always use HasPrev to check if another Entry can be requested) or if the
// backing store was structurally modified since the Iterator was created.
func (i *Iterator[K, V]) Prev() *Entry[K, V] {
	i.assertUnmodified()

	if i.state == LeftEndReachedState || i.current == nil {
		panic("no previous element found in iterator")
	}

	if i.state == IterationStartedState {
		i.current = i.prevNode(i.current)
	}
	if i.current == nil {
		panic("no previous element found in iterator")
	}

	if i.prevNode(i.current) == nil {
		i.state = LeftEndReachedState
	} else {
		i.state = IterationStartedState
	}

	return newEntry(i.current)
}

// Reset restarts the Iterator at the current first entry of the view and resynchronizes it with the backing store
// (i.e. after structural modifications).
func (i *Iterator[K, V]) Reset() {
	i.current = i.view.firstNode()
	i.version = i.view.store.Version()
	i.state = InitialState
}

// nextNode is an internal utility function that returns the node that follows the given node in the iteration order
// of the view (or nil if no such node exists).
func (i *Iterator[K, V]) nextNode(node *skiplist.Node[K, V]) (next *skiplist.Node[K, V]) {
	if i.view.descending {
		next = node.Prev()
	} else {
		next = node.Next()
	}
	if next != nil && !i.view.inBounds(next.Key()) {
		next = nil
	}

	return
}

// prevNode is an internal utility function that returns the node that precedes the given node in the iteration order
// of the view (or nil if no such node exists).
func (i *Iterator[K, V]) prevNode(node *skiplist.Node[K, V]) (prev *skiplist.Node[K, V]) {
	if i.view.descending {
		prev = node.Next()
	} else {
		prev = node.Prev()
	}
	if prev != nil && !i.view.inBounds(prev.Key()) {
		prev = nil
	}

	return
}

// assertUnmodified is an internal utility function that panics if the backing store was structurally modified since
// the Iterator was created or reset.
func (i *Iterator[K, V]) assertUnmodified() {
	if i.version != i.view.store.Version() {
		panic("the map was structurally modified while iterating over it")
	}
}

// region IteratorState ////////////////////////////////////////////////////////////////////////////////////////////////

// IteratorState represents the state of the Iterator that is used to track where in the set of contained entries the
// pointer is currently located.
type IteratorState int

const (
	// InitialState is the state of the Iterator before the first Entry has been retrieved.
	InitialState IteratorState = iota

	// IterationStartedState is the state of the Iterator after the first Entry has been retrieved and before we have
	// reached either the first or the last Entry.
	IterationStartedState

	// LeftEndReachedState is the state of the Iterator after we have reached the first Entry of the view.
	LeftEndReachedState

	// RightEndReachedState is the state of the Iterator after we have reached the last Entry of the view.
	RightEndReachedState
)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
