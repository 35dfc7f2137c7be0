package skiplist

import (
	"github.com/iotaledger/hive.go/stringify"
)

// nodeLevel represents a single forward link of a Node together with the number of elements that the link skips over.
type nodeLevel[K any, V any] struct {
	forward *Node[K, V]
	span    int
}

// Node is a single element of the SkipList that stores a key-value pair and takes part in a randomized number of
// levels of the list.
type Node[K any, V any] struct {
	key      K
	value    V
	backward *Node[K, V]
	levels   []nodeLevel[K, V]
}

// newNode is an internal utility function that creates a new Node with the given height.
func newNode[K any, V any](height int, key K, value V) *Node[K, V] {
	return &Node[K, V]{
		key:    key,
		value:  value,
		levels: make([]nodeLevel[K, V], height),
	}
}

// Key returns the key of the Node.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns the value of the Node.
func (n *Node[K, V]) Value() V {
	return n.value
}

// Next returns the direct successor of the Node (or nil if the Node holds the largest key).
func (n *Node[K, V]) Next() *Node[K, V] {
	return n.levels[0].forward
}

// Prev returns the direct predecessor of the Node (or nil if the Node holds the smallest key).
func (n *Node[K, V]) Prev() *Node[K, V] {
	return n.backward
}

// Height returns the number of levels the Node takes part in.
func (n *Node[K, V]) Height() int {
	return len(n.levels)
}

// String returns a human readable version of the Node.
func (n *Node[K, V]) String() string {
	return stringify.Struct("Node",
		stringify.NewStructField("key", n.key),
		stringify.NewStructField("value", n.value),
		stringify.NewStructField("height", len(n.levels)),
	)
}
