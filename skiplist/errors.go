package skiplist

import (
	"github.com/iotaledger/hive.go/ierrors"
)

// ErrRankOutOfRange is returned when a requested rank is outside of the interval [0, Size).
var ErrRankOutOfRange = ierrors.New("rank is out of range")
