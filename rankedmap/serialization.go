package rankedmap

import (
	"context"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/serializer/v2"
	"github.com/iotaledger/hive.go/serializer/v2/serix"
)

// Encode returns a serialized byte slice of the object. Encoding a view serializes exactly the entries that are
// visible through it, in the order of the view.
func (r *RankedMap[K, V]) Encode(api *serix.API) ([]byte, error) {
	seri := serializer.NewSerializer()

	seri.WriteNum(uint32(r.Size()), func(err error) error {
		return ierrors.Wrap(err, "failed to write RankedMap size to serializer")
	})

	r.ForEach(func(key K, value V) bool {
		keyBytes, err := api.Encode(context.Background(), key)
		if err != nil {
			seri.AbortIf(func(_ error) error {
				return ierrors.Wrap(err, "failed to encode RankedMap key")
			})
		}
		seri.WriteBytes(keyBytes, func(err error) error {
			return ierrors.Wrap(err, "failed to write RankedMap key to serializer")
		})

		valBytes, err := api.Encode(context.Background(), value)
		if err != nil {
			seri.AbortIf(func(_ error) error {
				return ierrors.Wrap(err, "failed to serialize RankedMap value")
			})
		}
		seri.WriteBytes(valBytes, func(err error) error {
			return ierrors.Wrap(err, "failed to write RankedMap value to serializer")
		})

		return true
	})

	return seri.Serialize()
}

// Decode deserializes bytes into a valid object. The decoded pairs are inserted into the receiving map, which keeps
// its comparator and bounds.
func (r *RankedMap[K, V]) Decode(api *serix.API, b []byte) (bytesRead int, err error) {
	var mapSize uint32
	bytesReadSize, err := api.Decode(context.Background(), b[bytesRead:], &mapSize)
	if err != nil {
		return 0, err
	}
	bytesRead += bytesReadSize

	for i := uint32(0); i < mapSize; i++ {
		var key K
		bytesReadKey, err := api.Decode(context.Background(), b[bytesRead:], &key)
		if err != nil {
			return 0, err
		}
		bytesRead += bytesReadKey

		var value V
		bytesReadValue, err := api.Decode(context.Background(), b[bytesRead:], &value)
		if err != nil {
			return 0, err
		}
		bytesRead += bytesReadValue

		r.Set(key, value)
	}

	return bytesRead, nil
}
