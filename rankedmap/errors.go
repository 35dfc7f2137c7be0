package rankedmap

import (
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/statmaps/orderstat/skiplist"
)

var (
	// ErrEmptyCollection is returned when the first or last element of a map or view that contains no elements is
	// requested.
	ErrEmptyCollection = ierrors.New("the collection is empty")

	// ErrKeyTypeMismatch is returned when a key of a converted collection is not assignable to the key type of the
	// RankedMap.
	ErrKeyTypeMismatch = ierrors.New("key type mismatch")

	// ErrValueTypeMismatch is returned when a value of a converted collection is not assignable to the value type of
	// the RankedMap.
	ErrValueTypeMismatch = ierrors.New("value type mismatch")

	// ErrRankOutOfRange is returned when a requested rank is outside of the interval [0, Size).
	ErrRankOutOfRange = skiplist.ErrRankOutOfRange
)
