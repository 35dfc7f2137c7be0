package rankedset

import (
	"context"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/serix"
)

// Encode returns a serialized byte slice of the object. The elements are serialized in the order of the set (if the
// set is a view, only the elements that are visible through it are serialized).
func (s *RankedSet[T]) Encode(api *serix.API) ([]byte, error) {
	seri := serializer.NewSerializer()

	seri.WriteNum(uint32(s.Size()), func(err error) error {
		return ierrors.Wrap(err, "failed to write RankedSet size to serializer")
	})
	s.ForEach(func(element T) bool {
		elementBytes, err := api.Encode(context.Background(), element)
		if err != nil {
			seri.AbortIf(func(_ error) error {
				return ierrors.Wrap(err, "failed to encode RankedSet element")
			})
		}
		seri.WriteBytes(elementBytes, func(err error) error {
			return ierrors.Wrap(err, "failed to write RankedSet element to serializer")
		})

		return true
	})

	return seri.Serialize()
}

// Decode deserializes the given byte slice and adds the contained elements to the set (the order of the receiving set
// is kept, so decoding into a set with a different Comparator re-sorts the elements).
func (s *RankedSet[T]) Decode(api *serix.API, b []byte) (bytesRead int, err error) {
	var setSize uint32
	bytesReadSize, err := api.Decode(context.Background(), b[bytesRead:], &setSize)
	if err != nil {
		return 0, ierrors.Wrap(err, "failed to decode RankedSet size")
	}
	bytesRead += bytesReadSize

	for i := uint32(0); i < setSize; i++ {
		var element T
		bytesReadElement, err := api.Decode(context.Background(), b[bytesRead:], &element)
		if err != nil {
			return 0, ierrors.Wrap(err, "failed to decode RankedSet element")
		}
		bytesRead += bytesReadElement

		s.Add(element)
	}

	return bytesRead, nil
}
