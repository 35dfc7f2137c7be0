package rankedmap

import (
	"github.com/iotaledger/hive.go/stringify"
)

// ValuesView returns a live view of the values of this view: changes of the map are visible through the collection
// without any copying taking place.
func (r *RankedMap[K, V]) ValuesView() *ValuesView[K, V] {
	return &ValuesView[K, V]{
		source: r,
	}
}

// ValuesView is a live projection of a RankedMap (or one of its views) onto its values, ordered by the keys they are
// stored under. The same value can appear multiple times if it is stored under multiple keys.
type ValuesView[K any, V any] struct {
	source *RankedMap[K, V]
}

// ForEach iterates through the values of the collection in the key order of the underlying view and calls the
// consumer function for each of them. The iteration aborts as soon as the consumer function returns false.
func (v *ValuesView[K, V]) ForEach(consumer func(value V) bool) {
	v.source.ForEach(func(key K, value V) bool {
		return consumer(value)
	})
}

// ContainsFunc returns true if the collection contains at least one value for which the given predicate returns true.
// The values are scanned linearly in key order.
func (v *ValuesView[K, V]) ContainsFunc(predicate func(value V) bool) (contains bool) {
	v.ForEach(func(value V) bool {
		contains = predicate(value)

		return !contains
	})

	return
}

// Iterator returns an Iterator over the entries that back the values of the collection, in the order of the
// underlying view.
func (v *ValuesView[K, V]) Iterator() *Iterator[K, V] {
	return v.source.Iterator()
}

// ToSlice returns a list of the values of the collection in the key order of the underlying view.
func (v *ValuesView[K, V]) ToSlice() []V {
	return v.source.Values()
}

// Size returns the number of values in the collection.
func (v *ValuesView[K, V]) Size() int {
	return v.source.Size()
}

// IsEmpty returns true if the collection contains no values.
func (v *ValuesView[K, V]) IsEmpty() bool {
	return v.source.IsEmpty()
}

// Clear removes all entries that back the values of the collection from the underlying map.
func (v *ValuesView[K, V]) Clear() {
	v.source.Clear()
}

// String returns a human readable version of the ValuesView.
func (v *ValuesView[K, V]) String() string {
	return stringify.Struct("ValuesView",
		stringify.NewStructField("size", v.Size()),
	)
}
