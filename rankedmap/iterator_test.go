package rankedmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statmaps/orderstat/rankedmap"
)

func TestIterator_Next(t *testing.T) {
	rankedMap := newTestMap(t, 1, 2, 3)
	iterator := rankedMap.Iterator()

	require.Equal(t, rankedmap.InitialState, iterator.State())
	require.True(t, iterator.HasNext())

	require.Equal(t, 1, iterator.Next().Key)
	require.Equal(t, rankedmap.IterationStartedState, iterator.State())
	require.Equal(t, 2, iterator.Next().Key)
	require.Equal(t, 3, iterator.Next().Key)

	require.False(t, iterator.HasNext())
	require.Equal(t, rankedmap.RightEndReachedState, iterator.State())
	require.Panics(t, func() {
		iterator.Next()
	})
}

func TestIterator_Prev(t *testing.T) {
	rankedMap := newTestMap(t, 1, 2, 3)
	iterator := rankedMap.Iterator()

	require.Equal(t, 1, iterator.Next().Key)
	require.Equal(t, 2, iterator.Next().Key)
	require.Equal(t, 1, iterator.Prev().Key)

	require.False(t, iterator.HasPrev())
	require.Equal(t, rankedmap.LeftEndReachedState, iterator.State())
	require.Panics(t, func() {
		iterator.Prev()
	})

	// walking forward again resumes from the left end
	require.Equal(t, 1, iterator.Next().Key)
}

func TestIterator_EmptyMap(t *testing.T) {
	iterator := rankedmap.New[int, string]().Iterator()

	require.False(t, iterator.HasNext())
	require.False(t, iterator.HasPrev())
	require.Panics(t, func() {
		iterator.Next()
	})
}

func TestIterator_StartingKey(t *testing.T) {
	rankedMap := newTestMap(t, 10, 20, 30, 40, 50)

	// the iterator starts at the smallest key that is >= the requested key
	iterator := rankedMap.Iterator(25)
	require.Equal(t, 30, iterator.Next().Key)
	require.Equal(t, 40, iterator.Next().Key)

	iterator = rankedMap.Iterator(99)
	require.False(t, iterator.HasNext())

	// a descending iterator starts at the largest key that is <= the requested key
	descendingIterator := rankedMap.DescendingMap().Iterator(25)
	require.Equal(t, 20, descendingIterator.Next().Key)
	require.Equal(t, 10, descendingIterator.Next().Key)
	require.False(t, descendingIterator.HasNext())
}

func TestIterator_DescendingView(t *testing.T) {
	descending := newTestMap(t, 1, 2, 3).DescendingMap()
	iterator := descending.Iterator()

	require.Equal(t, 3, iterator.Next().Key)
	require.Equal(t, 2, iterator.Next().Key)

	// moving backwards in a descending view walks towards larger keys
	require.Equal(t, 3, iterator.Prev().Key)
	require.False(t, iterator.HasPrev())
	require.Equal(t, rankedmap.LeftEndReachedState, iterator.State())
}

func TestIterator_SubMapView(t *testing.T) {
	rankedMap := newTestMap(t, 1, 2, 3, 4, 5)
	iterator := rankedMap.SubMap(2, true, 4, true).Iterator()

	require.Equal(t, 2, iterator.Next().Key)
	require.Equal(t, 3, iterator.Next().Key)
	require.Equal(t, 4, iterator.Next().Key)
	require.False(t, iterator.HasNext())
	require.Equal(t, rankedmap.RightEndReachedState, iterator.State())

	// after reaching the right end the iterator resumes from there
	require.Equal(t, 4, iterator.Prev().Key)
	require.Equal(t, 3, iterator.Prev().Key)
	require.Equal(t, 2, iterator.Prev().Key)
	require.False(t, iterator.HasPrev())
}

func TestIterator_FailFast(t *testing.T) {
	rankedMap := newTestMap(t, 1, 2, 3)

	iterator := rankedMap.Iterator()
	iterator.Next()
	rankedMap.Set(4, "inserted")
	require.Panics(t, func() {
		iterator.Next()
	})
	require.Panics(t, func() {
		iterator.Prev()
	})

	iterator = rankedMap.Iterator()
	rankedMap.Delete(4)
	require.Panics(t, func() {
		iterator.Next()
	})

	iterator = rankedMap.Iterator()
	rankedMap.Clear()
	require.Panics(t, func() {
		iterator.Next()
	})
}

func TestIterator_ValueUpdateDoesNotInvalidate(t *testing.T) {
	rankedMap := newTestMap(t, 1, 2, 3)
	iterator := rankedMap.Iterator()

	iterator.Next()
	rankedMap.Set(2, "updated")

	entry := iterator.Next()
	require.Equal(t, 2, entry.Key)
	require.Equal(t, "updated", entry.Value)
}

func TestIterator_ViewModificationInvalidatesBaseIterator(t *testing.T) {
	rankedMap := newTestMap(t, 1, 2, 3, 4, 5)
	iterator := rankedMap.Iterator()

	iterator.Next()
	rankedMap.SubMap(2, true, 4, true).Clear()
	require.Panics(t, func() {
		iterator.Next()
	})
}

func TestIterator_Reset(t *testing.T) {
	rankedMap := newTestMap(t, 1, 2, 3)
	iterator := rankedMap.Iterator()

	iterator.Next()
	iterator.Next()

	iterator.Reset()
	require.Equal(t, rankedmap.InitialState, iterator.State())
	require.Equal(t, 1, iterator.Next().Key)

	// resetting re-synchronizes the iterator with a modified map
	rankedMap.Set(0, "inserted")
	iterator.Reset()
	require.Equal(t, 0, iterator.Next().Key)
}
