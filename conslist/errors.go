package conslist

import (
	"github.com/iotaledger/hive.go/ierrors"
)

// ErrEmptyList is returned when the head of an empty List is requested.
var ErrEmptyList = ierrors.New("the list is empty")
