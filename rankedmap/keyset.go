package rankedmap

import (
	"github.com/iotaledger/hive.go/stringify"
)

// KeySet returns a live view of the keys of this view: changes of the map are visible through the set and removing
// keys from the set removes the backing entries from the map.
func (r *RankedMap[K, V]) KeySet() *KeySet[K, V] {
	return &KeySet[K, V]{
		source: r,
	}
}

// KeySet is a live projection of a RankedMap (or one of its views) onto its keys. Keys can not be added through a
// KeySet because there is no value to associate them with.
type KeySet[K any, V any] struct {
	source *RankedMap[K, V]
}

// Has returns true if the given key is contained in the set.
func (k *KeySet[K, V]) Has(key K) bool {
	return k.source.Has(key)
}

// Delete removes the given key and its backing entry from the underlying map and returns a flag that indicates if it
// existed.
func (k *KeySet[K, V]) Delete(key K) (deleted bool) {
	_, deleted = k.source.Delete(key)

	return
}

// First returns the first key of the set (in the order of the underlying view). It returns ErrEmptyCollection if the
// set contains no keys.
func (k *KeySet[K, V]) First() (key K, err error) {
	entry, err := k.source.FirstEntry()
	if err != nil {
		return
	}
	key = entry.Key

	return
}

// Last returns the last key of the set (in the order of the underlying view). It returns ErrEmptyCollection if the
// set contains no keys.
func (k *KeySet[K, V]) Last() (key K, err error) {
	entry, err := k.source.LastEntry()
	if err != nil {
		return
	}
	key = entry.Key

	return
}

// Floor returns the largest key that is smaller or equal than the given key (in the order of the underlying view)
// together with a flag that indicates if such a key exists.
func (k *KeySet[K, V]) Floor(key K) (floorKey K, exists bool) {
	entry, exists := k.source.FloorEntry(key)
	if exists {
		floorKey = entry.Key
	}

	return
}

// Ceiling returns the smallest key that is bigger or equal than the given key (in the order of the underlying view)
// together with a flag that indicates if such a key exists.
func (k *KeySet[K, V]) Ceiling(key K) (ceilingKey K, exists bool) {
	entry, exists := k.source.CeilingEntry(key)
	if exists {
		ceilingKey = entry.Key
	}

	return
}

// Lower returns the largest key that is strictly smaller than the given key (in the order of the underlying view)
// together with a flag that indicates if such a key exists.
func (k *KeySet[K, V]) Lower(key K) (lowerKey K, exists bool) {
	entry, exists := k.source.LowerEntry(key)
	if exists {
		lowerKey = entry.Key
	}

	return
}

// Higher returns the smallest key that is strictly bigger than the given key (in the order of the underlying view)
// together with a flag that indicates if such a key exists.
func (k *KeySet[K, V]) Higher(key K) (higherKey K, exists bool) {
	entry, exists := k.source.HigherEntry(key)
	if exists {
		higherKey = entry.Key
	}

	return
}

// GetByRank returns the key at the given rank, which is the 0-based position in the iteration order of the underlying
// view. It returns ErrRankOutOfRange if the rank is outside of the interval [0, Size).
func (k *KeySet[K, V]) GetByRank(rank int) (key K, err error) {
	return k.source.GetKeyByRank(rank)
}

// DeleteByRank removes the key at the given rank and its backing entry from the underlying map and returns the key.
// It returns ErrRankOutOfRange if the rank is outside of the interval [0, Size).
func (k *KeySet[K, V]) DeleteByRank(rank int) (key K, err error) {
	entry, err := k.source.DeleteByRank(rank)
	if err != nil {
		return
	}
	key = entry.Key

	return
}

// RankOf returns the 0-based position of the given key in the iteration order of the underlying view (or -1 if the
// key is not contained in the set).
func (k *KeySet[K, V]) RankOf(key K) int {
	return k.source.RankOf(key)
}

// ForEach iterates through the keys of the set in the order of the underlying view and calls the consumer function
// for each of them. The iteration aborts as soon as the consumer function returns false.
func (k *KeySet[K, V]) ForEach(consumer func(key K) bool) {
	k.source.ForEach(func(key K, value V) bool {
		return consumer(key)
	})
}

// Iterator returns an Iterator over the entries that back the keys of the set, in the order of the underlying view.
func (k *KeySet[K, V]) Iterator() *Iterator[K, V] {
	return k.source.Iterator()
}

// ToSlice returns a list of the keys of the set in the order of the underlying view.
func (k *KeySet[K, V]) ToSlice() []K {
	return k.source.Keys()
}

// Size returns the number of keys in the set.
func (k *KeySet[K, V]) Size() int {
	return k.source.Size()
}

// IsEmpty returns true if the set contains no keys.
func (k *KeySet[K, V]) IsEmpty() bool {
	return k.source.IsEmpty()
}

// Clear removes all keys of the set and their backing entries from the underlying map.
func (k *KeySet[K, V]) Clear() {
	k.source.Clear()
}

// String returns a human readable version of the KeySet.
func (k *KeySet[K, V]) String() string {
	return stringify.Struct("KeySet",
		stringify.NewStructField("size", k.Size()),
	)
}
