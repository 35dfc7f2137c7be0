package skiplist

import (
	"math/rand"
	"time"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/hive.go/stringify"
)

// SkipList is a probabilistic ordered data structure that augments every forward link with the number of elements the
// link skips over, which extends the usual logarithmic search by key with logarithmic retrieval and removal by rank.
//
// It is not safe for concurrent use: accesses from multiple goroutines need to be synchronized externally.
type SkipList[K any, V any] struct {
	head       *Node[K, V]
	tail       *Node[K, V]
	comparator Comparator[K]
	rng        *rand.Rand
	opts       *Options
	level      int
	size       int
	version    uint64
}

// New creates a new SkipList that orders its keys by their natural order.
func New[K constraints.Ordered, V any](opts ...Option) *SkipList[K, V] {
	return NewWith[K, V](lo.Comparator[K], opts...)
}

// NewWith creates a new SkipList that uses the given comparator to order its keys.
func NewWith[K any, V any](comparator Comparator[K], opts ...Option) *SkipList[K, V] {
	if comparator == nil {
		panic("comparator must not be nil")
	}

	listOpts := options.Apply(&Options{
		maxLevel: DefaultMaxLevel,
	}, opts)
	if listOpts.maxLevel < 1 {
		panic("maxLevel needs to be at least 1")
	}
	if listOpts.randSource == nil {
		listOpts.randSource = rand.NewSource(time.Now().UnixNano())
	}

	var headKey K
	var headValue V

	return &SkipList[K, V]{
		head:       newNode(listOpts.maxLevel, headKey, headValue),
		comparator: comparator,
		rng:        rand.New(listOpts.randSource),
		opts:       listOpts,
		level:      1,
	}
}

// Set inserts or updates the value stored for the given key and returns the previously stored value together with a
// flag that indicates if it existed. Updating an existing key leaves the shape of the list untouched.
func (s *SkipList[K, V]) Set(key K, value V) (previousValue V, previousValueExisted bool) {
	update := make([]*Node[K, V], s.opts.maxLevel)
	rank := make([]int, s.opts.maxLevel)

	currentNode := s.head
	for i := s.level - 1; i >= 0; i-- {
		if i != s.level-1 {
			rank[i] = rank[i+1]
		}
		for next := currentNode.levels[i].forward; next != nil && s.comparator(next.key, key) < 0; next = currentNode.levels[i].forward {
			rank[i] += currentNode.levels[i].span
			currentNode = next
		}
		update[i] = currentNode
	}

	if next := currentNode.levels[0].forward; next != nil && s.comparator(next.key, key) == 0 {
		previousValue = next.value
		previousValueExisted = true
		next.value = value

		return
	}

	newLevel := s.randomLevel()
	if newLevel > s.level {
		for i := s.level; i < newLevel; i++ {
			update[i] = s.head
			update[i].levels[i].span = s.size
		}
		s.level = newLevel
	}

	node := newNode(newLevel, key, value)
	for i := 0; i < newLevel; i++ {
		node.levels[i].forward = update[i].levels[i].forward
		update[i].levels[i].forward = node

		node.levels[i].span = update[i].levels[i].span - (rank[0] - rank[i])
		update[i].levels[i].span = rank[0] - rank[i] + 1
	}
	for i := newLevel; i < s.level; i++ {
		update[i].levels[i].span++
	}

	if update[0] != s.head {
		node.backward = update[0]
	}
	if next := node.levels[0].forward; next != nil {
		next.backward = node
	} else {
		s.tail = node
	}

	s.size++
	s.version++

	return
}

// Get returns the value stored for the given key (or the zero value if it does not exist with exists being false).
func (s *SkipList[K, V]) Get(key K) (value V, exists bool) {
	if node := s.GetNode(key); node != nil {
		value = node.value
		exists = true
	}

	return
}

// Has returns true if the given key exists in the SkipList.
func (s *SkipList[K, V]) Has(key K) bool {
	return s.GetNode(key) != nil
}

// Delete removes the given key from the SkipList and returns the deleted value together with a flag that indicates if
// it existed.
func (s *SkipList[K, V]) Delete(key K) (deletedValue V, deleted bool) {
	update := make([]*Node[K, V], s.opts.maxLevel)

	currentNode := s.head
	for i := s.level - 1; i >= 0; i-- {
		for next := currentNode.levels[i].forward; next != nil && s.comparator(next.key, key) < 0; next = currentNode.levels[i].forward {
			currentNode = next
		}
		update[i] = currentNode
	}

	node := currentNode.levels[0].forward
	if node == nil || s.comparator(node.key, key) != 0 {
		return
	}

	s.deleteNode(node, update)
	deletedValue = node.value
	deleted = true

	return
}

// GetByRank returns the key and value stored at the given rank, which is the 0-based position in the ascending
// sequence of keys. It returns ErrRankOutOfRange if the rank is outside of the interval [0, Size).
func (s *SkipList[K, V]) GetByRank(rank int) (key K, value V, err error) {
	node := s.nodeByRank(rank)
	if node == nil {
		err = ierrors.Wrapf(ErrRankOutOfRange, "no element at rank %d (size %d)", rank, s.size)

		return
	}

	key = node.key
	value = node.value

	return
}

// DeleteByRank removes the element at the given rank and returns its key and value. It returns ErrRankOutOfRange if
// the rank is outside of the interval [0, Size).
func (s *SkipList[K, V]) DeleteByRank(rank int) (key K, value V, err error) {
	if rank < 0 || rank >= s.size {
		err = ierrors.Wrapf(ErrRankOutOfRange, "no element at rank %d (size %d)", rank, s.size)

		return
	}

	update := make([]*Node[K, V], s.opts.maxLevel)
	target := rank + 1

	traversed := 0
	currentNode := s.head
	for i := s.level - 1; i >= 0; i-- {
		for currentNode.levels[i].forward != nil && traversed+currentNode.levels[i].span < target {
			traversed += currentNode.levels[i].span
			currentNode = currentNode.levels[i].forward
		}
		update[i] = currentNode
	}

	node := currentNode.levels[0].forward
	s.deleteNode(node, update)

	key = node.key
	value = node.value

	return
}

// RankOf returns the 0-based position of the given key in the ascending sequence of keys (or -1 if the key does not
// exist).
func (s *SkipList[K, V]) RankOf(key K) int {
	traversed := 0
	currentNode := s.head
	for i := s.level - 1; i >= 0; i-- {
		for next := currentNode.levels[i].forward; next != nil && s.comparator(next.key, key) <= 0; next = currentNode.levels[i].forward {
			traversed += currentNode.levels[i].span
			currentNode = next
		}
		if currentNode != s.head && s.comparator(currentNode.key, key) == 0 {
			return traversed - 1
		}
	}

	return -1
}

// GetNode returns the Node that stores the given key (or nil if it does not exist).
func (s *SkipList[K, V]) GetNode(key K) (node *Node[K, V]) {
	currentNode := s.head
	for i := s.level - 1; i >= 0; i-- {
		for next := currentNode.levels[i].forward; next != nil && s.comparator(next.key, key) < 0; next = currentNode.levels[i].forward {
			currentNode = next
		}
	}

	if next := currentNode.levels[0].forward; next != nil && s.comparator(next.key, key) == 0 {
		node = next
	}

	return
}

// Min returns the Node with the smallest key (or nil if the SkipList is empty).
func (s *SkipList[K, V]) Min() *Node[K, V] {
	return s.head.levels[0].forward
}

// Max returns the Node with the largest key (or nil if the SkipList is empty).
func (s *SkipList[K, V]) Max() *Node[K, V] {
	return s.tail
}

// Floor returns the Node with the largest key that is <= the given key (or nil if no such Node exists).
func (s *SkipList[K, V]) Floor(key K) (floor *Node[K, V]) {
	currentNode := s.head
	for i := s.level - 1; i >= 0; i-- {
		for next := currentNode.levels[i].forward; next != nil && s.comparator(next.key, key) <= 0; next = currentNode.levels[i].forward {
			currentNode = next
		}
	}

	if currentNode != s.head {
		floor = currentNode
	}

	return
}

// Ceiling returns the Node with the smallest key that is >= the given key (or nil if no such Node exists).
func (s *SkipList[K, V]) Ceiling(key K) (ceiling *Node[K, V]) {
	currentNode := s.head
	for i := s.level - 1; i >= 0; i-- {
		for next := currentNode.levels[i].forward; next != nil && s.comparator(next.key, key) < 0; next = currentNode.levels[i].forward {
			currentNode = next
		}
	}
	ceiling = currentNode.levels[0].forward

	return
}

// Lower returns the Node with the largest key that is < the given key (or nil if no such Node exists).
func (s *SkipList[K, V]) Lower(key K) (lower *Node[K, V]) {
	currentNode := s.head
	for i := s.level - 1; i >= 0; i-- {
		for next := currentNode.levels[i].forward; next != nil && s.comparator(next.key, key) < 0; next = currentNode.levels[i].forward {
			currentNode = next
		}
	}

	if currentNode != s.head {
		lower = currentNode
	}

	return
}

// Higher returns the Node with the smallest key that is > the given key (or nil if no such Node exists).
func (s *SkipList[K, V]) Higher(key K) (higher *Node[K, V]) {
	currentNode := s.head
	for i := s.level - 1; i >= 0; i-- {
		for next := currentNode.levels[i].forward; next != nil && s.comparator(next.key, key) <= 0; next = currentNode.levels[i].forward {
			currentNode = next
		}
	}
	higher = currentNode.levels[0].forward

	return
}

// ForEach iterates through the key-value pairs of the SkipList in ascending key order and calls the consumer function
// for each of them. The iteration aborts as soon as the consumer function returns false.
func (s *SkipList[K, V]) ForEach(consumer func(key K, value V) bool) {
	abortIteration := false
	for currentNode := s.Min(); currentNode != nil && !abortIteration; currentNode = currentNode.levels[0].forward {
		abortIteration = !consumer(currentNode.key, currentNode.value)
	}
}

// Keys returns an ascending list of the keys that are stored in the SkipList.
func (s *SkipList[K, V]) Keys() (keys []K) {
	keys = make([]K, 0, s.size)
	for currentNode := s.Min(); currentNode != nil; currentNode = currentNode.levels[0].forward {
		keys = append(keys, currentNode.key)
	}

	return
}

// Values returns a list of the values that are stored in the SkipList, ordered by their keys.
func (s *SkipList[K, V]) Values() (values []V) {
	values = make([]V, 0, s.size)
	for currentNode := s.Min(); currentNode != nil; currentNode = currentNode.levels[0].forward {
		values = append(values, currentNode.value)
	}

	return
}

// Size returns the number of elements in the SkipList.
func (s *SkipList[K, V]) Size() int {
	return s.size
}

// IsEmpty returns true if the SkipList has no elements.
func (s *SkipList[K, V]) IsEmpty() bool {
	return s.size == 0
}

// Clear removes all elements from the SkipList.
func (s *SkipList[K, V]) Clear() {
	for i := 0; i < s.opts.maxLevel; i++ {
		s.head.levels[i].forward = nil
		s.head.levels[i].span = 0
	}
	s.tail = nil
	s.level = 1
	s.size = 0
	s.version++
}

// Version returns a counter that is incremented on every structural change (inserts and deletes, but not updates of
// existing keys). Iterators use it to detect modifications of the list they are iterating over.
func (s *SkipList[K, V]) Version() uint64 {
	return s.version
}

// Comparator returns the Comparator that is used to order the keys of the SkipList.
func (s *SkipList[K, V]) Comparator() Comparator[K] {
	return s.comparator
}

// MaxLevel returns the maximum height of the nodes of the SkipList.
func (s *SkipList[K, V]) MaxLevel() int {
	return s.opts.maxLevel
}

// String returns a human readable version of the SkipList.
func (s *SkipList[K, V]) String() string {
	return stringify.Struct("SkipList",
		stringify.NewStructField("size", s.size),
		stringify.NewStructField("level", s.level),
		stringify.NewStructField("maxLevel", s.opts.maxLevel),
	)
}

// randomLevel is an internal utility function that draws the height of a new node from a geometric distribution where
// every additional level has a probability of 1/2, capped at the configured maximum level.
func (s *SkipList[K, V]) randomLevel() int {
	level := 1
	for level < s.opts.maxLevel && s.rng.Intn(2) == 1 {
		level++
	}

	return level
}

// nodeByRank is an internal utility function that returns the node at the given 0-based rank by descending through the
// levels and accumulating the spans of the taken links (or nil if the rank is outside of the list).
func (s *SkipList[K, V]) nodeByRank(rank int) *Node[K, V] {
	if rank < 0 || rank >= s.size {
		return nil
	}

	target := rank + 1
	traversed := 0
	currentNode := s.head
	for i := s.level - 1; i >= 0; i-- {
		for currentNode.levels[i].forward != nil && traversed+currentNode.levels[i].span <= target {
			traversed += currentNode.levels[i].span
			currentNode = currentNode.levels[i].forward
		}
		if traversed == target {
			return currentNode
		}
	}

	return nil
}

// deleteNode is an internal utility function that unlinks the given node from all levels of the SkipList and adjusts
// the spans of the links that skipped over it.
func (s *SkipList[K, V]) deleteNode(node *Node[K, V], update []*Node[K, V]) {
	for i := 0; i < s.level; i++ {
		if update[i].levels[i].forward == node {
			update[i].levels[i].span += node.levels[i].span - 1
			update[i].levels[i].forward = node.levels[i].forward
		} else {
			update[i].levels[i].span--
		}
	}

	if next := node.levels[0].forward; next != nil {
		next.backward = node.backward
	} else {
		s.tail = node.backward
	}

	for s.level > 1 && s.head.levels[s.level-1].forward == nil {
		s.level--
	}

	s.size--
	s.version++
}
