package rankedmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/statmaps/orderstat/predicate"
	"github.com/statmaps/orderstat/rankedmap"
)

func TestKeySet(t *testing.T) {
	rankedMap := newTestMap(t, 10, 20, 30, 40, 50)
	keySet := rankedMap.KeySet()

	require.Equal(t, 5, keySet.Size())
	require.False(t, keySet.IsEmpty())
	require.True(t, keySet.Has(30))
	require.False(t, keySet.Has(35))
	require.Equal(t, []int{10, 20, 30, 40, 50}, keySet.ToSlice())

	first, err := keySet.First()
	require.NoError(t, err)
	require.Equal(t, 10, first)

	last, err := keySet.Last()
	require.NoError(t, err)
	require.Equal(t, 50, last)

	floor, exists := keySet.Floor(35)
	require.True(t, exists)
	require.Equal(t, 30, floor)

	ceiling, exists := keySet.Ceiling(35)
	require.True(t, exists)
	require.Equal(t, 40, ceiling)

	lower, exists := keySet.Lower(30)
	require.True(t, exists)
	require.Equal(t, 20, lower)

	higher, exists := keySet.Higher(30)
	require.True(t, exists)
	require.Equal(t, 40, higher)
}

func TestKeySet_Ranks(t *testing.T) {
	keySet := newTestMap(t, 10, 20, 30, 40, 50).KeySet()

	require.Equal(t, 2, keySet.RankOf(30))
	require.Equal(t, -1, keySet.RankOf(35))

	key, err := keySet.GetByRank(4)
	require.NoError(t, err)
	require.Equal(t, 50, key)

	key, err = keySet.DeleteByRank(0)
	require.NoError(t, err)
	require.Equal(t, 10, key)
	require.Equal(t, []int{20, 30, 40, 50}, keySet.ToSlice())

	_, err = keySet.GetByRank(4)
	require.ErrorIs(t, err, rankedmap.ErrRankOutOfRange)
}

func TestKeySet_WritesThrough(t *testing.T) {
	rankedMap := newTestMap(t, 1, 2, 3, 4, 5)
	keySet := rankedMap.SubMap(2, true, 4, true).KeySet()

	require.Equal(t, []int{2, 3, 4}, keySet.ToSlice())

	require.True(t, keySet.Delete(3))
	require.False(t, keySet.Delete(3))
	require.False(t, keySet.Has(3))
	require.False(t, rankedMap.Has(3))

	// clearing the key set of a view only removes the keys inside of its bounds
	keySet.Clear()
	require.True(t, keySet.IsEmpty())
	require.Equal(t, []int{1, 5}, rankedMap.Keys())
}

func TestKeySet_ForEach(t *testing.T) {
	keySet := newTestMap(t, 3, 1, 2).DescendingMap().KeySet()

	collectedKeys := make([]int, 0)
	keySet.ForEach(func(key int) bool {
		collectedKeys = append(collectedKeys, key)

		return true
	})
	require.Equal(t, []int{3, 2, 1}, collectedKeys)

	iterator := keySet.Iterator()
	require.Equal(t, 3, iterator.Next().Key)
}

func TestEntrySet(t *testing.T) {
	rankedMap := rankedmap.New[string, int]()
	rankedMap.Set("a", 1)
	rankedMap.Set("b", 2)
	rankedMap.Set("c", 3)
	entrySet := rankedMap.EntrySet()

	require.Equal(t, 3, entrySet.Size())
	require.False(t, entrySet.IsEmpty())

	// membership requires the key and the value to match
	require.True(t, entrySet.Has(&rankedmap.Entry[string, int]{Key: "b", Value: 2}))
	require.False(t, entrySet.Has(&rankedmap.Entry[string, int]{Key: "b", Value: 99}))
	require.False(t, entrySet.Has(&rankedmap.Entry[string, int]{Key: "d", Value: 2}))

	entries := entrySet.ToSlice()
	require.Len(t, entries, 3)
	require.Equal(t, "a", entries[0].Key)
	require.Equal(t, 1, entries[0].Value)
	require.Equal(t, "c", entries[2].Key)
}

func TestEntrySet_Delete(t *testing.T) {
	rankedMap := rankedmap.New[string, int]()
	rankedMap.Set("a", 1)
	rankedMap.Set("b", 2)
	entrySet := rankedMap.EntrySet()

	// deleting an entry whose value does not match leaves the map untouched
	require.False(t, entrySet.Delete(&rankedmap.Entry[string, int]{Key: "b", Value: 99}))
	require.True(t, rankedMap.Has("b"))

	require.True(t, entrySet.Delete(&rankedmap.Entry[string, int]{Key: "b", Value: 2}))
	require.False(t, rankedMap.Has("b"))

	entrySet.Clear()
	require.True(t, rankedMap.IsEmpty())
}

func TestEntrySet_ForEach(t *testing.T) {
	rankedMap := rankedmap.New[string, int]()
	rankedMap.Set("a", 1)
	rankedMap.Set("b", 2)
	rankedMap.Set("c", 3)

	collectedKeys := make([]string, 0)
	rankedMap.EntrySet().ForEach(func(entry *rankedmap.Entry[string, int]) bool {
		collectedKeys = append(collectedKeys, entry.Key)

		return entry.Key != "b"
	})
	require.Equal(t, []string{"a", "b"}, collectedKeys)
}

func TestValuesView(t *testing.T) {
	rankedMap := rankedmap.New[string, int]()
	rankedMap.Set("a", 1)
	rankedMap.Set("b", 1)
	rankedMap.Set("c", 2)
	valuesView := rankedMap.ValuesView()

	require.Equal(t, 3, valuesView.Size())
	require.False(t, valuesView.IsEmpty())

	// duplicated values appear once per entry, in key order
	require.Equal(t, []int{1, 1, 2}, valuesView.ToSlice())

	require.True(t, valuesView.ContainsFunc(func(value int) bool {
		return value == 2
	}))
	require.False(t, valuesView.ContainsFunc(func(value int) bool {
		return value == 99
	}))
}

func TestValuesView_ForEach(t *testing.T) {
	rankedMap := newTestMap(t, 3, 1, 2)
	valuesView := rankedMap.DescendingMap().ValuesView()

	visitedValues := 0
	valuesView.ForEach(func(value string) bool {
		visitedValues++

		return true
	})
	require.Equal(t, 3, visitedValues)
	require.True(t, predicate.AllEqual(valuesView.ToSlice()...))

	iterator := valuesView.Iterator()
	require.Equal(t, "value", iterator.Next().Value)
}

func TestValuesView_Clear(t *testing.T) {
	rankedMap := newTestMap(t, 1, 2, 3, 4, 5)

	rankedMap.SubMap(2, true, 4, true).ValuesView().Clear()
	require.Equal(t, []int{1, 5}, rankedMap.Keys())
}
