package rankedset

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ds/types"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/statmaps/orderstat/rankedmap"
	"github.com/statmaps/orderstat/skiplist"
)

// RankedSet is a sorted collection of unique elements that tracks the rank of its elements (their 0-based position in
// the sorted order) and that can be composed into live views that share a single backing store. It is implemented as a
// RankedMap that associates every element with an empty sentinel value.
//
// The RankedSet is not thread-safe: it is designed for single-writer use and concurrent accesses have to be
// coordinated by the caller.
type RankedSet[T any] struct {
	elements *rankedmap.RankedMap[T, types.Empty]
}

// New creates a new RankedSet that sorts its elements by their natural order.
func New[T constraints.Ordered](opts ...skiplist.Option) *RankedSet[T] {
	return &RankedSet[T]{
		elements: rankedmap.New[T, types.Empty](opts...),
	}
}

// NewWith creates a new RankedSet that sorts its elements with the given Comparator.
func NewWith[T any](comparator skiplist.Comparator[T], opts ...skiplist.Option) *RankedSet[T] {
	return &RankedSet[T]{
		elements: rankedmap.NewWith[T, types.Empty](comparator, opts...),
	}
}

// FromSlice creates a new RankedSet from the elements of the given slice (duplicated elements are collapsed).
func FromSlice[T constraints.Ordered](elements []T, opts ...skiplist.Option) (rankedSet *RankedSet[T]) {
	rankedSet = New[T](opts...)
	for _, element := range elements {
		rankedSet.Add(element)
	}

	return
}

// FromTreeSet creates a new RankedSet from the elements of the given treeset.Set, sorted with the given Comparator. It
// returns ErrElementTypeMismatch if an element can not be cast to the element type of the set.
func FromTreeSet[T any](source *treeset.Set, comparator skiplist.Comparator[T], opts ...skiplist.Option) (rankedSet *RankedSet[T], err error) {
	rankedSet = NewWith[T](comparator, opts...)
	for _, sourceElement := range source.Values() {
		element, ok := sourceElement.(T)
		if !ok {
			return nil, ierrors.Wrapf(ErrElementTypeMismatch, "element %v is not assignable to the element type of the set", sourceElement)
		}

		rankedSet.Add(element)
	}

	return
}

// Add adds the given element to the set and returns true if it was not contained before. The method panics if the set
// is a view and the element is outside of its bounds.
func (s *RankedSet[T]) Add(element T) (added bool) {
	return !lo.Return2(s.elements.Set(element, types.Void))
}

// Has returns true if the given element is contained in the set.
func (s *RankedSet[T]) Has(element T) bool {
	return s.elements.Has(element)
}

// Delete removes the given element from the set and returns true if it was contained.
func (s *RankedSet[T]) Delete(element T) (deleted bool) {
	return lo.Return2(s.elements.Delete(element))
}

// First returns the smallest element of the set (in the order of the set). It returns ErrEmptyCollection if the set
// contains no elements.
func (s *RankedSet[T]) First() (element T, err error) {
	entry, err := s.elements.FirstEntry()
	if err != nil {
		return
	}
	element = entry.Key

	return
}

// Last returns the largest element of the set (in the order of the set). It returns ErrEmptyCollection if the set
// contains no elements.
func (s *RankedSet[T]) Last() (element T, err error) {
	entry, err := s.elements.LastEntry()
	if err != nil {
		return
	}
	element = entry.Key

	return
}

// PollFirst removes and returns the smallest element of the set (in the order of the set). It returns
// ErrEmptyCollection if the set contains no elements.
func (s *RankedSet[T]) PollFirst() (element T, err error) {
	entry, err := s.elements.PollFirstEntry()
	if err != nil {
		return
	}
	element = entry.Key

	return
}

// PollLast removes and returns the largest element of the set (in the order of the set). It returns
// ErrEmptyCollection if the set contains no elements.
func (s *RankedSet[T]) PollLast() (element T, err error) {
	entry, err := s.elements.PollLastEntry()
	if err != nil {
		return
	}
	element = entry.Key

	return
}

// Floor returns the largest element that is smaller or equal than the given element (in the order of the set)
// together with a flag that indicates if such an element exists.
func (s *RankedSet[T]) Floor(element T) (floorElement T, exists bool) {
	entry, exists := s.elements.FloorEntry(element)
	if exists {
		floorElement = entry.Key
	}

	return
}

// Ceiling returns the smallest element that is bigger or equal than the given element (in the order of the set)
// together with a flag that indicates if such an element exists.
func (s *RankedSet[T]) Ceiling(element T) (ceilingElement T, exists bool) {
	entry, exists := s.elements.CeilingEntry(element)
	if exists {
		ceilingElement = entry.Key
	}

	return
}

// Lower returns the largest element that is strictly smaller than the given element (in the order of the set)
// together with a flag that indicates if such an element exists.
func (s *RankedSet[T]) Lower(element T) (lowerElement T, exists bool) {
	entry, exists := s.elements.LowerEntry(element)
	if exists {
		lowerElement = entry.Key
	}

	return
}

// Higher returns the smallest element that is strictly bigger than the given element (in the order of the set)
// together with a flag that indicates if such an element exists.
func (s *RankedSet[T]) Higher(element T) (higherElement T, exists bool) {
	entry, exists := s.elements.HigherEntry(element)
	if exists {
		higherElement = entry.Key
	}

	return
}

// GetByRank returns the element at the given rank, which is the 0-based position in the order of the set. It returns
// ErrRankOutOfRange if the rank is outside of the interval [0, Size).
func (s *RankedSet[T]) GetByRank(rank int) (element T, err error) {
	return s.elements.GetKeyByRank(rank)
}

// DeleteByRank removes and returns the element at the given rank, which is the 0-based position in the order of the
// set. It returns ErrRankOutOfRange if the rank is outside of the interval [0, Size).
func (s *RankedSet[T]) DeleteByRank(rank int) (element T, err error) {
	entry, err := s.elements.DeleteByRank(rank)
	if err != nil {
		return
	}
	element = entry.Key

	return
}

// RankOf returns the 0-based position of the given element in the order of the set (or -1 if the element is not
// contained in the set).
func (s *RankedSet[T]) RankOf(element T) int {
	return s.elements.RankOf(element)
}

// HasAll returns true if the set contains all elements of the given set.
func (s *RankedSet[T]) HasAll(other *RankedSet[T]) (hasAll bool) {
	hasAll = true
	other.ForEach(func(element T) bool {
		hasAll = s.Has(element)

		return hasAll
	})

	return
}

// ForEach iterates through the elements of the set in the order of the set and calls the consumer function for each
// of them. The iteration aborts as soon as the consumer function returns false.
func (s *RankedSet[T]) ForEach(consumer func(element T) bool) {
	s.elements.ForEach(func(element T, _ types.Empty) bool {
		return consumer(element)
	})
}

// ForEachReverse iterates through the elements of the set in the reverse order of the set and calls the consumer
// function for each of them. The iteration aborts as soon as the consumer function returns false.
func (s *RankedSet[T]) ForEachReverse(consumer func(element T) bool) {
	s.elements.ForEachReverse(func(element T, _ types.Empty) bool {
		return consumer(element)
	})
}

// ToSlice returns a list of the elements of the set in the order of the set.
func (s *RankedSet[T]) ToSlice() []T {
	return s.elements.Keys()
}

// ToTreeSet returns a treeset.Set that contains the elements of the set and that orders them with the comparator of
// this set.
func (s *RankedSet[T]) ToTreeSet() *treeset.Set {
	comparator := s.elements.Comparator()
	result := treeset.NewWith(func(a interface{}, b interface{}) int {
		return comparator(a.(T), b.(T))
	})
	s.ForEach(func(element T) bool {
		result.Add(element)

		return true
	})

	return result
}

// Size returns the number of elements in the set.
func (s *RankedSet[T]) Size() int {
	return s.elements.Size()
}

// IsEmpty returns true if the set contains no elements.
func (s *RankedSet[T]) IsEmpty() bool {
	return s.elements.IsEmpty()
}

// Clear removes all elements of the set. If the set is a view, only the elements inside of its bounds are removed.
func (s *RankedSet[T]) Clear() {
	s.elements.Clear()
}

// String returns a human readable version of the RankedSet.
func (s *RankedSet[T]) String() string {
	return stringify.Struct("RankedSet",
		stringify.NewStructField("size", s.Size()),
	)
}

// Equal returns true if the two sets contain the same elements (the order of the sets is not taken into account).
func Equal[T comparable](a *RankedSet[T], b *RankedSet[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Size() != b.Size() {
		return false
	}

	return a.HasAll(b)
}
