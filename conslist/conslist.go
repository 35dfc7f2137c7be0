package conslist

import (
	"github.com/iotaledger/hive.go/stringify"
)

// List is an immutable singly linked list with structural sharing: prepending an element returns a new List whose
// tail is the original List, so existing references are never affected by later operations. Because nothing is ever
// mutated, a List can be shared freely (also between goroutines) without any locking.
//
// The empty List is represented by a nil pointer and all methods can be called on it.
type List[T any] struct {
	head   T
	tail   *List[T]
	length int
}

// Empty returns the empty List.
func Empty[T any]() *List[T] {
	return nil
}

// Of creates a new List that contains the given elements in the given order.
func Of[T any](elements ...T) (list *List[T]) {
	for i := len(elements) - 1; i >= 0; i-- {
		list = list.Cons(elements[i])
	}

	return
}

// FromSlice creates a new List that contains the elements of the given slice in the given order.
func FromSlice[T any](elements []T) *List[T] {
	return Of(elements...)
}

// Cons returns a new List with the given element prepended. The operation is O(1) and the returned List shares its
// tail with the receiver.
func (l *List[T]) Cons(element T) *List[T] {
	return &List[T]{
		head:   element,
		tail:   l,
		length: l.Len() + 1,
	}
}

// Head returns the first element of the List. It returns ErrEmptyList if the List is empty.
func (l *List[T]) Head() (head T, err error) {
	if l == nil {
		err = ErrEmptyList

		return
	}
	head = l.head

	return
}

// Tail returns the List without its first element (which is the empty List if the List contains at most one element).
func (l *List[T]) Tail() *List[T] {
	if l == nil {
		return nil
	}

	return l.tail
}

// IsEmpty returns true if the List contains no elements.
func (l *List[T]) IsEmpty() bool {
	return l == nil
}

// Len returns the number of elements in the List.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}

	return l.length
}

// ForEach iterates through the elements of the List from head to tail and calls the consumer function for each of
// them. The iteration aborts as soon as the consumer function returns false.
func (l *List[T]) ForEach(consumer func(element T) bool) {
	for current := l; current != nil; current = current.tail {
		if !consumer(current.head) {
			return
		}
	}
}

// ToSlice returns a slice that contains the elements of the List from head to tail.
func (l *List[T]) ToSlice() (elements []T) {
	elements = make([]T, 0, l.Len())
	l.ForEach(func(element T) bool {
		elements = append(elements, element)

		return true
	})

	return
}

// Reverse returns a new List that contains the elements of the List in the opposite order.
func (l *List[T]) Reverse() (reversed *List[T]) {
	l.ForEach(func(element T) bool {
		reversed = reversed.Cons(element)

		return true
	})

	return
}

// String returns a human readable version of the List.
func (l *List[T]) String() string {
	return stringify.Struct("List",
		stringify.NewStructField("length", l.Len()),
		stringify.NewStructField("elements", l.ToSlice()),
	)
}

// Equal returns true if the two lists contain the same elements in the same order. Lists that share their tail are
// recognized without walking the shared part.
func Equal[T comparable](a *List[T], b *List[T]) bool {
	if a.Len() != b.Len() {
		return false
	}

	for a != b {
		if a.head != b.head {
			return false
		}
		a, b = a.tail, b.tail
	}

	return true
}
