package rankedmap

import (
	"github.com/iotaledger/hive.go/stringify"

	"github.com/statmaps/orderstat/skiplist"
)

// Entry is an immutable snapshot of a key-value pair of a RankedMap.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// String returns a human readable version of the Entry.
func (e *Entry[K, V]) String() string {
	return stringify.Struct("Entry",
		stringify.NewStructField("key", e.Key),
		stringify.NewStructField("value", e.Value),
	)
}

// newEntry is an internal utility function that turns a node of the backing list into an Entry (or nil if the node is
// nil).
func newEntry[K any, V any](node *skiplist.Node[K, V]) *Entry[K, V] {
	if node == nil {
		return nil
	}

	return &Entry[K, V]{
		Key:   node.Key(),
		Value: node.Value(),
	}
}
