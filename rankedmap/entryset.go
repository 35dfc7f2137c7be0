package rankedmap

import (
	"github.com/iotaledger/hive.go/stringify"
)

// EntrySet returns a live view of the key-value pairs of this view: changes of the map are visible through the set
// and removing entries from the set removes them from the map.
func (r *RankedMap[K, V]) EntrySet() *EntrySet[K, V] {
	return &EntrySet[K, V]{
		source: r,
	}
}

// EntrySet is a live projection of a RankedMap (or one of its views) onto its key-value pairs.
type EntrySet[K any, V any] struct {
	source *RankedMap[K, V]
}

// Has returns true if the set contains an entry with the same key and the same value as the given one. The values are
// compared with the == operator on their boxed representation, so V needs to be a comparable type.
func (e *EntrySet[K, V]) Has(entry *Entry[K, V]) bool {
	currentValue, exists := e.source.Get(entry.Key)

	return exists && any(currentValue) == any(entry.Value)
}

// Delete removes the entry with the same key and the same value as the given one from the underlying map and returns
// a flag that indicates if it existed. The values are compared with the == operator on their boxed representation, so
// V needs to be a comparable type.
func (e *EntrySet[K, V]) Delete(entry *Entry[K, V]) (deleted bool) {
	if !e.Has(entry) {
		return
	}
	_, deleted = e.source.Delete(entry.Key)

	return
}

// ForEach iterates through the entries of the set in the order of the underlying view and calls the consumer function
// for each of them. The iteration aborts as soon as the consumer function returns false.
func (e *EntrySet[K, V]) ForEach(consumer func(entry *Entry[K, V]) bool) {
	e.source.ForEach(func(key K, value V) bool {
		return consumer(&Entry[K, V]{Key: key, Value: value})
	})
}

// Iterator returns an Iterator over the entries of the set, in the order of the underlying view.
func (e *EntrySet[K, V]) Iterator() *Iterator[K, V] {
	return e.source.Iterator()
}

// ToSlice returns a list of the entries of the set in the order of the underlying view.
func (e *EntrySet[K, V]) ToSlice() (entries []*Entry[K, V]) {
	entries = make([]*Entry[K, V], 0, e.Size())
	e.ForEach(func(entry *Entry[K, V]) bool {
		entries = append(entries, entry)

		return true
	})

	return
}

// Size returns the number of entries in the set.
func (e *EntrySet[K, V]) Size() int {
	return e.source.Size()
}

// IsEmpty returns true if the set contains no entries.
func (e *EntrySet[K, V]) IsEmpty() bool {
	return e.source.IsEmpty()
}

// Clear removes all entries of the set from the underlying map.
func (e *EntrySet[K, V]) Clear() {
	e.source.Clear()
}

// String returns a human readable version of the EntrySet.
func (e *EntrySet[K, V]) String() string {
	return stringify.Struct("EntrySet",
		stringify.NewStructField("size", e.Size()),
	)
}
