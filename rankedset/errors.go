package rankedset

import (
	"github.com/iotaledger/hive.go/ierrors"

	"github.com/statmaps/orderstat/rankedmap"
)

var (
	// ErrEmptyCollection is returned when a first or last element is requested from an empty set.
	ErrEmptyCollection = rankedmap.ErrEmptyCollection

	// ErrRankOutOfRange is returned when an element is requested at a rank outside of the interval [0, Size).
	ErrRankOutOfRange = rankedmap.ErrRankOutOfRange

	// ErrElementTypeMismatch is returned when an imported element can not be cast to the element type of the set.
	ErrElementTypeMismatch = ierrors.New("element type mismatch")
)
