package rankedmap

import (
	"sort"

	"github.com/emirpasic/gods/maps/treemap"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/stringify"

	"github.com/statmaps/orderstat/skiplist"
)

// RankedMap is an ordered key-value store that keeps track of the rank of its entries, which makes it possible to
// retrieve and remove entries by their position in the key order in logarithmic time. A RankedMap is at the same time
// a view of itself: reversed and sub-range views share the backing store of the map they were derived from, so
// changes through any of them are immediately visible through all of them.
//
// It is not safe for concurrent use: accesses from multiple goroutines need to be synchronized externally.
type RankedMap[K any, V any] struct {
	store      *skiplist.SkipList[K, V]
	bounds     *keyRange[K]
	reversed   *RankedMap[K, V]
	descending bool
}

// New creates a new RankedMap that orders its keys by their natural order.
func New[K constraints.Ordered, V any](opts ...skiplist.Option) *RankedMap[K, V] {
	return &RankedMap[K, V]{
		store: skiplist.New[K, V](opts...),
	}
}

// NewWith creates a new RankedMap that uses the given comparator to order its keys.
func NewWith[K any, V any](comparator skiplist.Comparator[K], opts ...skiplist.Option) *RankedMap[K, V] {
	return &RankedMap[K, V]{
		store: skiplist.NewWith[K, V](comparator, opts...),
	}
}

// FromMap creates a new RankedMap that contains the entries of the given plain map, ordered by the natural order of
// the keys. The entries are inserted in ascending key order (i.e. the shape of the resulting map is reproducible for
// a fixed rand source).
func FromMap[K constraints.Ordered, V any](source map[K]V, opts ...skiplist.Option) (rankedMap *RankedMap[K, V]) {
	sortedKeys := lo.Keys(source)
	sort.Slice(sortedKeys, func(i int, j int) bool {
		return sortedKeys[i] < sortedKeys[j]
	})

	rankedMap = New[K, V](opts...)
	for _, key := range sortedKeys {
		rankedMap.Set(key, source[key])
	}

	return
}

// FromTreeMap creates a new RankedMap that contains the same key-value pairs as the given treemap.Map, ordered by the
// given comparator (i.e. the one the source map was built with). It returns ErrKeyTypeMismatch or
// ErrValueTypeMismatch if one of the contained pairs is not assignable to the requested types.
func FromTreeMap[K any, V any](source *treemap.Map, comparator skiplist.Comparator[K], opts ...skiplist.Option) (*RankedMap[K, V], error) {
	rankedMap := NewWith[K, V](comparator, opts...)
	for it := source.Iterator(); it.Next(); {
		key, keyAssignable := it.Key().(K)
		if !keyAssignable {
			return nil, ierrors.Wrapf(ErrKeyTypeMismatch, "failed to convert key %v", it.Key())
		}

		value, valueAssignable := it.Value().(V)
		if !valueAssignable {
			return nil, ierrors.Wrapf(ErrValueTypeMismatch, "failed to convert value %v of key %v", it.Value(), it.Key())
		}

		rankedMap.Set(key, value)
	}

	return rankedMap, nil
}

// Set inserts or updates the value stored for the given key and returns the previously stored value together with a
// flag that indicates if it existed. It panics if the key is outside of the bounds of this view, as inserting through
// a view must not create entries that the view could not see.
func (r *RankedMap[K, V]) Set(key K, value V) (previousValue V, previousValueExisted bool) {
	if !r.inBounds(key) {
		panic("key is outside of the bounds of the view")
	}

	return r.store.Set(key, value)
}

// Get returns the value stored for the given key (or the zero value if the key is not visible through this view with
// exists being false).
func (r *RankedMap[K, V]) Get(key K) (value V, exists bool) {
	if !r.inBounds(key) {
		return
	}

	return r.store.Get(key)
}

// Has returns true if the given key is visible through this view.
func (r *RankedMap[K, V]) Has(key K) bool {
	return r.inBounds(key) && r.store.Has(key)
}

// Delete removes the given key if it is visible through this view and returns the deleted value together with a flag
// that indicates if it existed.
func (r *RankedMap[K, V]) Delete(key K) (deletedValue V, deleted bool) {
	if !r.inBounds(key) {
		return
	}

	return r.store.Delete(key)
}

// FirstEntry returns the first Entry of the view (the one with the smallest key in the order of the view). It returns
// ErrEmptyCollection if the view contains no entries.
func (r *RankedMap[K, V]) FirstEntry() (entry *Entry[K, V], err error) {
	if entry = newEntry(r.firstNode()); entry == nil {
		err = ErrEmptyCollection
	}

	return
}

// LastEntry returns the last Entry of the view (the one with the largest key in the order of the view). It returns
// ErrEmptyCollection if the view contains no entries.
func (r *RankedMap[K, V]) LastEntry() (entry *Entry[K, V], err error) {
	if entry = newEntry(r.lastNode()); entry == nil {
		err = ErrEmptyCollection
	}

	return
}

// PollFirstEntry removes the first Entry of the view and returns it. It returns ErrEmptyCollection if the view
// contains no entries.
func (r *RankedMap[K, V]) PollFirstEntry() (entry *Entry[K, V], err error) {
	if entry, err = r.FirstEntry(); err != nil {
		return
	}
	r.store.Delete(entry.Key)

	return
}

// PollLastEntry removes the last Entry of the view and returns it. It returns ErrEmptyCollection if the view contains
// no entries.
func (r *RankedMap[K, V]) PollLastEntry() (entry *Entry[K, V], err error) {
	if entry, err = r.LastEntry(); err != nil {
		return
	}
	r.store.Delete(entry.Key)

	return
}

// FloorEntry returns the Entry with the largest key that is smaller or equal than the given key (in the order of the
// view) together with a flag that indicates if such an entry exists.
func (r *RankedMap[K, V]) FloorEntry(key K) (entry *Entry[K, V], exists bool) {
	if r.descending {
		entry = newEntry(r.ceilingNode(key))
	} else {
		entry = newEntry(r.floorNode(key))
	}
	exists = entry != nil

	return
}

// CeilingEntry returns the Entry with the smallest key that is bigger or equal than the given key (in the order of
// the view) together with a flag that indicates if such an entry exists.
func (r *RankedMap[K, V]) CeilingEntry(key K) (entry *Entry[K, V], exists bool) {
	if r.descending {
		entry = newEntry(r.floorNode(key))
	} else {
		entry = newEntry(r.ceilingNode(key))
	}
	exists = entry != nil

	return
}

// LowerEntry returns the Entry with the largest key that is strictly smaller than the given key (in the order of the
// view) together with a flag that indicates if such an entry exists.
func (r *RankedMap[K, V]) LowerEntry(key K) (entry *Entry[K, V], exists bool) {
	if r.descending {
		entry = newEntry(r.higherNode(key))
	} else {
		entry = newEntry(r.lowerNode(key))
	}
	exists = entry != nil

	return
}

// HigherEntry returns the Entry with the smallest key that is strictly bigger than the given key (in the order of the
// view) together with a flag that indicates if such an entry exists.
func (r *RankedMap[K, V]) HigherEntry(key K) (entry *Entry[K, V], exists bool) {
	if r.descending {
		entry = newEntry(r.lowerNode(key))
	} else {
		entry = newEntry(r.higherNode(key))
	}
	exists = entry != nil

	return
}

// GetEntryByRank returns the Entry at the given rank, which is the 0-based position in the iteration order of the
// view. It returns ErrRankOutOfRange if the rank is outside of the interval [0, Size).
func (r *RankedMap[K, V]) GetEntryByRank(rank int) (entry *Entry[K, V], err error) {
	storeRank, err := r.storeRank(rank)
	if err != nil {
		return nil, err
	}

	key, value, err := r.store.GetByRank(storeRank)
	if err != nil {
		return nil, err
	}

	return &Entry[K, V]{Key: key, Value: value}, nil
}

// GetKeyByRank returns the key at the given rank, which is the 0-based position in the iteration order of the view.
// It returns ErrRankOutOfRange if the rank is outside of the interval [0, Size).
func (r *RankedMap[K, V]) GetKeyByRank(rank int) (key K, err error) {
	entry, err := r.GetEntryByRank(rank)
	if err != nil {
		return
	}
	key = entry.Key

	return
}

// DeleteByRank removes the Entry at the given rank (the 0-based position in the iteration order of the view) and
// returns it. It returns ErrRankOutOfRange if the rank is outside of the interval [0, Size).
func (r *RankedMap[K, V]) DeleteByRank(rank int) (entry *Entry[K, V], err error) {
	storeRank, err := r.storeRank(rank)
	if err != nil {
		return nil, err
	}

	key, value, err := r.store.DeleteByRank(storeRank)
	if err != nil {
		return nil, err
	}

	return &Entry[K, V]{Key: key, Value: value}, nil
}

// RankOf returns the 0-based position of the given key in the iteration order of the view (or -1 if the key is not
// visible through the view).
func (r *RankedMap[K, V]) RankOf(key K) int {
	if !r.inBounds(key) {
		return -1
	}

	storeRank := r.store.RankOf(key)
	if storeRank < 0 {
		return -1
	}

	if r.descending {
		return r.viewOffset() + r.Size() - 1 - storeRank
	}

	return storeRank - r.viewOffset()
}

// ForEach iterates through the entries of the view in the order of the view and calls the consumer function for each
// of them. The iteration aborts as soon as the consumer function returns false. The map must not be structurally
// modified while the iteration is running (use the rank or poll based operations for destructive loops).
func (r *RankedMap[K, V]) ForEach(consumer func(key K, value V) bool) {
	if r.descending {
		r.forEachDescending(consumer)
	} else {
		r.forEachAscending(consumer)
	}
}

// ForEachReverse iterates through the entries of the view in the reverse order of the view and calls the consumer
// function for each of them. The iteration aborts as soon as the consumer function returns false.
func (r *RankedMap[K, V]) ForEachReverse(consumer func(key K, value V) bool) {
	if r.descending {
		r.forEachAscending(consumer)
	} else {
		r.forEachDescending(consumer)
	}
}

// Keys returns a list of the keys that are visible through the view, in the order of the view.
func (r *RankedMap[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, r.Size())
	r.ForEach(func(key K, value V) bool {
		keys = append(keys, key)

		return true
	})

	return
}

// Values returns a list of the values that are visible through the view, ordered by their keys in the order of the
// view.
func (r *RankedMap[K, V]) Values() (values []V) {
	values = make([]V, 0, r.Size())
	r.ForEach(func(key K, value V) bool {
		values = append(values, value)

		return true
	})

	return
}

// AsMap returns a plain map that contains the entries that are visible through the given view.
func AsMap[K comparable, V any](view *RankedMap[K, V]) map[K]V {
	asMap := make(map[K]V, view.Size())
	view.ForEach(func(key K, value V) bool {
		asMap[key] = value

		return true
	})

	return asMap
}

// ToTreeMap returns a treemap.Map that contains the entries that are visible through the view and that orders them
// with the comparator of this view.
func (r *RankedMap[K, V]) ToTreeMap() *treemap.Map {
	comparator := r.Comparator()
	result := treemap.NewWith(func(a interface{}, b interface{}) int {
		return comparator(a.(K), b.(K))
	})
	r.ForEach(func(key K, value V) bool {
		result.Put(key, value)

		return true
	})

	return result
}

// Size returns the number of entries that are visible through the view.
func (r *RankedMap[K, V]) Size() int {
	if r.bounds == nil {
		return r.store.Size()
	}

	first := r.firstInRangeNode()
	if first == nil {
		return 0
	}
	last := r.lastInRangeNode()
	if last == nil {
		return 0
	}

	return r.store.RankOf(last.Key()) - r.store.RankOf(first.Key()) + 1
}

// IsEmpty returns true if no entries are visible through the view.
func (r *RankedMap[K, V]) IsEmpty() bool {
	if r.bounds == nil {
		return r.store.IsEmpty()
	}

	return r.firstInRangeNode() == nil
}

// Clear removes all entries that are visible through the view. Entries outside of the bounds of the view are left
// untouched.
func (r *RankedMap[K, V]) Clear() {
	if r.bounds == nil {
		r.store.Clear()

		return
	}

	for node := r.firstInRangeNode(); node != nil; node = r.firstInRangeNode() {
		r.store.Delete(node.Key())
	}
}

// Iterator returns an Iterator that walks through the entries of the view in the order of the view. It accepts an
// optional starting key where the iteration begins (the first entry that is bigger or equal than the given key in the
// order of the view).
func (r *RankedMap[K, V]) Iterator(optionalStartingKey ...K) *Iterator[K, V] {
	if len(optionalStartingKey) >= 1 {
		var startingNode *skiplist.Node[K, V]
		if r.descending {
			startingNode = r.floorNode(optionalStartingKey[0])
		} else {
			startingNode = r.ceilingNode(optionalStartingKey[0])
		}

		return newIterator(r, startingNode)
	}

	return newIterator(r, r.firstNode())
}

// String returns a human readable version of the RankedMap.
func (r *RankedMap[K, V]) String() string {
	return stringify.Struct("RankedMap",
		stringify.NewStructField("size", r.Size()),
		stringify.NewStructField("descending", r.descending),
		stringify.NewStructField("bounded", r.bounds != nil),
	)
}

// Equal returns true if the two maps (or views) make the same set of key-value pairs visible, independent of their
// comparators and orientations.
func Equal[K comparable, V comparable](a *RankedMap[K, V], b *RankedMap[K, V]) (equal bool) {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.Size() != b.Size() {
		return false
	}

	equal = true
	a.ForEach(func(key K, value V) bool {
		otherValue, exists := b.Get(key)
		equal = exists && otherValue == value

		return equal
	})

	return
}

// forEachAscending is an internal utility function that walks the in-bounds entries in ascending key order.
func (r *RankedMap[K, V]) forEachAscending(consumer func(key K, value V) bool) {
	abortIteration := false
	for node := r.firstInRangeNode(); node != nil && !abortIteration && r.inBounds(node.Key()); node = node.Next() {
		abortIteration = !consumer(node.Key(), node.Value())
	}
}

// forEachDescending is an internal utility function that walks the in-bounds entries in descending key order.
func (r *RankedMap[K, V]) forEachDescending(consumer func(key K, value V) bool) {
	abortIteration := false
	for node := r.lastInRangeNode(); node != nil && !abortIteration && r.inBounds(node.Key()); node = node.Prev() {
		abortIteration = !consumer(node.Key(), node.Value())
	}
}

// inBounds is an internal utility function that determines if the given key lies inside of the bounds of the view.
func (r *RankedMap[K, V]) inBounds(key K) bool {
	return r.bounds == nil || r.bounds.compare(r.store.Comparator(), key) == 0
}

// firstNode is an internal utility function that returns the node that holds the first entry of the view in the order
// of the view (or nil if the view is empty).
func (r *RankedMap[K, V]) firstNode() *skiplist.Node[K, V] {
	if r.descending {
		return r.lastInRangeNode()
	}

	return r.firstInRangeNode()
}

// lastNode is an internal utility function that returns the node that holds the last entry of the view in the order
// of the view (or nil if the view is empty).
func (r *RankedMap[K, V]) lastNode() *skiplist.Node[K, V] {
	if r.descending {
		return r.firstInRangeNode()
	}

	return r.lastInRangeNode()
}

// firstInRangeNode is an internal utility function that returns the in-bounds node with the smallest key (or nil if
// no node lies inside of the bounds).
func (r *RankedMap[K, V]) firstInRangeNode() (node *skiplist.Node[K, V]) {
	switch {
	case r.bounds == nil || !r.bounds.hasLower:
		node = r.store.Min()
	case r.bounds.lowerInclusive:
		node = r.store.Ceiling(r.bounds.lower)
	default:
		node = r.store.Higher(r.bounds.lower)
	}

	if node != nil && !r.inBounds(node.Key()) {
		node = nil
	}

	return
}

// lastInRangeNode is an internal utility function that returns the in-bounds node with the largest key (or nil if no
// node lies inside of the bounds).
func (r *RankedMap[K, V]) lastInRangeNode() (node *skiplist.Node[K, V]) {
	switch {
	case r.bounds == nil || !r.bounds.hasUpper:
		node = r.store.Max()
	case r.bounds.upperInclusive:
		node = r.store.Floor(r.bounds.upper)
	default:
		node = r.store.Lower(r.bounds.upper)
	}

	if node != nil && !r.inBounds(node.Key()) {
		node = nil
	}

	return
}

// floorNode is an internal utility function that returns the in-bounds node with the largest key that is <= the given
// key in ascending key space (or nil if no such node exists).
func (r *RankedMap[K, V]) floorNode(key K) (node *skiplist.Node[K, V]) {
	node = r.store.Floor(key)
	if node == nil || r.bounds == nil {
		return
	}

	if r.bounds.compare(r.store.Comparator(), node.Key()) > 0 {
		node = r.lastInRangeNode()
	}
	if node != nil && r.bounds.compare(r.store.Comparator(), node.Key()) < 0 {
		node = nil
	}

	return
}

// ceilingNode is an internal utility function that returns the in-bounds node with the smallest key that is >= the
// given key in ascending key space (or nil if no such node exists).
func (r *RankedMap[K, V]) ceilingNode(key K) (node *skiplist.Node[K, V]) {
	node = r.store.Ceiling(key)
	if node == nil || r.bounds == nil {
		return
	}

	if r.bounds.compare(r.store.Comparator(), node.Key()) < 0 {
		node = r.firstInRangeNode()
	}
	if node != nil && r.bounds.compare(r.store.Comparator(), node.Key()) > 0 {
		node = nil
	}

	return
}

// lowerNode is an internal utility function that returns the in-bounds node with the largest key that is < the given
// key in ascending key space (or nil if no such node exists).
func (r *RankedMap[K, V]) lowerNode(key K) (node *skiplist.Node[K, V]) {
	node = r.store.Lower(key)
	if node == nil || r.bounds == nil {
		return
	}

	if r.bounds.compare(r.store.Comparator(), node.Key()) > 0 {
		node = r.lastInRangeNode()
	}
	if node != nil && r.bounds.compare(r.store.Comparator(), node.Key()) < 0 {
		node = nil
	}

	return
}

// higherNode is an internal utility function that returns the in-bounds node with the smallest key that is > the
// given key in ascending key space (or nil if no such node exists).
func (r *RankedMap[K, V]) higherNode(key K) (node *skiplist.Node[K, V]) {
	node = r.store.Higher(key)
	if node == nil || r.bounds == nil {
		return
	}

	if r.bounds.compare(r.store.Comparator(), node.Key()) < 0 {
		node = r.firstInRangeNode()
	}
	if node != nil && r.bounds.compare(r.store.Comparator(), node.Key()) > 0 {
		node = nil
	}

	return
}

// viewOffset is an internal utility function that returns the rank that the first in-bounds node has inside of the
// backing store.
func (r *RankedMap[K, V]) viewOffset() int {
	if r.bounds == nil {
		return 0
	}

	first := r.firstInRangeNode()
	if first == nil {
		return 0
	}

	return r.store.RankOf(first.Key())
}

// storeRank is an internal utility function that translates a rank in the iteration order of the view into the
// corresponding rank inside of the backing store. It returns ErrRankOutOfRange if the rank is outside of the interval
// [0, Size).
func (r *RankedMap[K, V]) storeRank(rank int) (storeRank int, err error) {
	size := r.Size()
	if rank < 0 || rank >= size {
		return 0, ierrors.Wrapf(ErrRankOutOfRange, "no element at rank %d (size %d)", rank, size)
	}

	offset := r.viewOffset()
	if r.descending {
		return offset + size - 1 - rank, nil
	}

	return offset + rank, nil
}
