package rankedset_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/iotaledger/hive.go/serializer/v2/serix"
	"github.com/stretchr/testify/require"

	"github.com/statmaps/orderstat/rankedset"
	"github.com/statmaps/orderstat/skiplist"
)

func newTestSet(t *testing.T, elements ...int) *rankedset.RankedSet[int] {
	t.Helper()

	rankedSet := rankedset.New[int](skiplist.WithRandSource(rand.NewSource(42)))
	for _, element := range elements {
		rankedSet.Add(element)
	}

	return rankedSet
}

func TestRankedSet_Add(t *testing.T) {
	rankedSet := rankedset.New[int]()

	require.True(t, rankedSet.Add(2))
	require.True(t, rankedSet.Add(1))
	require.False(t, rankedSet.Add(2))

	require.Equal(t, 2, rankedSet.Size())
	require.False(t, rankedSet.IsEmpty())
	require.True(t, rankedSet.Has(1))
	require.False(t, rankedSet.Has(3))
	require.Equal(t, []int{1, 2}, rankedSet.ToSlice())
}

func TestRankedSet_Delete(t *testing.T) {
	rankedSet := newTestSet(t, 1, 2, 3)

	require.True(t, rankedSet.Delete(2))
	require.False(t, rankedSet.Delete(2))
	require.Equal(t, []int{1, 3}, rankedSet.ToSlice())

	rankedSet.Clear()
	require.True(t, rankedSet.IsEmpty())
}

func TestRankedSet_FromSlice(t *testing.T) {
	rankedSet := rankedset.FromSlice([]int{3, 1, 2, 3, 1})

	require.Equal(t, 3, rankedSet.Size())
	require.Equal(t, []int{1, 2, 3}, rankedSet.ToSlice())
}

func TestRankedSet_Ranks(t *testing.T) {
	rankedSet := newTestSet(t, 5, 1, 3, 2, 4)

	require.Equal(t, 0, rankedSet.RankOf(1))
	require.Equal(t, 2, rankedSet.RankOf(3))
	require.Equal(t, 4, rankedSet.RankOf(5))
	require.Equal(t, -1, rankedSet.RankOf(99))

	element, err := rankedSet.GetByRank(2)
	require.NoError(t, err)
	require.Equal(t, 3, element)

	_, err = rankedSet.GetByRank(5)
	require.ErrorIs(t, err, rankedset.ErrRankOutOfRange)
	_, err = rankedSet.GetByRank(-1)
	require.ErrorIs(t, err, rankedset.ErrRankOutOfRange)

	element, err = rankedSet.DeleteByRank(2)
	require.NoError(t, err)
	require.Equal(t, 3, element)
	require.Equal(t, []int{1, 2, 4, 5}, rankedSet.ToSlice())
	require.Equal(t, 2, rankedSet.RankOf(4))
}

func TestRankedSet_FirstAndLast(t *testing.T) {
	rankedSet := newTestSet(t, 2, 1, 3)

	first, err := rankedSet.First()
	require.NoError(t, err)
	require.Equal(t, 1, first)

	last, err := rankedSet.Last()
	require.NoError(t, err)
	require.Equal(t, 3, last)

	empty := rankedset.New[int]()
	_, err = empty.First()
	require.ErrorIs(t, err, rankedset.ErrEmptyCollection)
	_, err = empty.Last()
	require.ErrorIs(t, err, rankedset.ErrEmptyCollection)
}

func TestRankedSet_Poll(t *testing.T) {
	rankedSet := newTestSet(t, 2, 1, 3)

	first, err := rankedSet.PollFirst()
	require.NoError(t, err)
	require.Equal(t, 1, first)

	last, err := rankedSet.PollLast()
	require.NoError(t, err)
	require.Equal(t, 3, last)

	require.Equal(t, []int{2}, rankedSet.ToSlice())

	_, err = rankedset.New[int]().PollFirst()
	require.ErrorIs(t, err, rankedset.ErrEmptyCollection)
}

func TestRankedSet_Navigation(t *testing.T) {
	rankedSet := newTestSet(t, 10, 20, 30, 40, 50)

	floor, exists := rankedSet.Floor(35)
	require.True(t, exists)
	require.Equal(t, 30, floor)

	ceiling, exists := rankedSet.Ceiling(35)
	require.True(t, exists)
	require.Equal(t, 40, ceiling)

	lower, exists := rankedSet.Lower(30)
	require.True(t, exists)
	require.Equal(t, 20, lower)

	higher, exists := rankedSet.Higher(30)
	require.True(t, exists)
	require.Equal(t, 40, higher)

	_, exists = rankedSet.Floor(5)
	require.False(t, exists)
	_, exists = rankedSet.Higher(50)
	require.False(t, exists)
}

func TestRankedSet_DescendingSet(t *testing.T) {
	rankedSet := newTestSet(t, 1, 2, 3)
	descending := rankedSet.DescendingSet()

	require.Equal(t, []int{3, 2, 1}, descending.ToSlice())
	require.Equal(t, 0, descending.RankOf(3))
	require.Equal(t, 2, descending.RankOf(1))

	first, err := descending.First()
	require.NoError(t, err)
	require.Equal(t, 3, first)

	// double reversal restores the original order
	require.Equal(t, []int{1, 2, 3}, descending.DescendingSet().ToSlice())
}

func TestRankedSet_SubSet(t *testing.T) {
	rankedSet := newTestSet(t, 1, 2, 3, 4, 5)
	subSet := rankedSet.SubSet(2, true, 4, true)

	require.Equal(t, []int{2, 3, 4}, subSet.ToSlice())
	require.Equal(t, 3, subSet.Size())
	require.Equal(t, 0, subSet.RankOf(2))

	// the view is live in both directions
	rankedSet.Delete(3)
	require.Equal(t, []int{2, 4}, subSet.ToSlice())
	subSet.Add(3)
	require.Equal(t, []int{1, 2, 3, 4, 5}, rankedSet.ToSlice())

	require.Panics(t, func() {
		subSet.Add(99)
	})
	require.Panics(t, func() {
		rankedSet.SubSet(4, true, 2, true)
	})

	subSet.Clear()
	require.Equal(t, []int{1, 5}, rankedSet.ToSlice())
}

func TestRankedSet_HeadAndTailSet(t *testing.T) {
	rankedSet := newTestSet(t, 1, 2, 3, 4, 5)

	require.Equal(t, []int{1, 2, 3}, rankedSet.HeadSet(3, true).ToSlice())
	require.Equal(t, []int{1, 2}, rankedSet.HeadSet(3, false).ToSlice())
	require.Equal(t, []int{3, 4, 5}, rankedSet.TailSet(3, true).ToSlice())
	require.Equal(t, []int{4, 5}, rankedSet.TailSet(3, false).ToSlice())
	require.Equal(t, []int{2, 3}, rankedSet.Range(2, 4).ToSlice())

	element, err := rankedSet.TailSet(2, false).GetByRank(0)
	require.NoError(t, err)
	require.Equal(t, 3, element)
}

func TestRankedSet_ForEach(t *testing.T) {
	rankedSet := newTestSet(t, 3, 1, 2)

	collected := make([]int, 0)
	rankedSet.ForEach(func(element int) bool {
		collected = append(collected, element)

		return true
	})
	require.Equal(t, []int{1, 2, 3}, collected)

	collected = collected[:0]
	rankedSet.ForEachReverse(func(element int) bool {
		collected = append(collected, element)

		return element != 2
	})
	require.Equal(t, []int{3, 2}, collected)
}

func TestRankedSet_HasAllAndEqual(t *testing.T) {
	first := newTestSet(t, 1, 2, 3)
	second := newTestSet(t, 2, 3)

	require.True(t, first.HasAll(second))
	require.False(t, second.HasAll(first))

	require.False(t, rankedset.Equal(first, second))
	second.Add(1)
	require.True(t, rankedset.Equal(first, second))

	// element equality is checked regardless of the order of the sets
	reversed := rankedset.NewWith[int](func(a int, b int) int {
		return b - a
	})
	reversed.Add(1)
	reversed.Add(2)
	reversed.Add(3)
	require.True(t, rankedset.Equal(first, reversed))
}

func TestRankedSet_Iterator(t *testing.T) {
	rankedSet := newTestSet(t, 1, 2, 3)

	iterator := rankedSet.Iterator()
	require.True(t, iterator.HasNext())
	require.Equal(t, 1, iterator.Next())
	require.Equal(t, 2, iterator.Next())
	require.Equal(t, 1, iterator.Prev())

	iterator = rankedSet.Iterator(2)
	require.Equal(t, 2, iterator.Next())

	iterator = rankedSet.Iterator()
	rankedSet.Add(4)
	require.Panics(t, func() {
		iterator.Next()
	})
	iterator.Reset()
	require.Equal(t, 1, iterator.Next())
}

func TestRankedSet_FromTreeSet(t *testing.T) {
	source := treeset.NewWith(utils.StringComparator)
	source.Add("c", "a", "b")

	rankedSet, err := rankedset.FromTreeSet[string](source, skiplist.WrapComparator[string](utils.StringComparator))
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, rankedSet.ToSlice())

	intSource := treeset.NewWith(utils.IntComparator)
	intSource.Add(1, 2)

	_, err = rankedset.FromTreeSet[string](intSource, skiplist.WrapComparator[string](utils.StringComparator))
	require.ErrorIs(t, err, rankedset.ErrElementTypeMismatch)
}

func TestRankedSet_ToTreeSet(t *testing.T) {
	treeSet := newTestSet(t, 3, 1, 2).ToTreeSet()

	require.Equal(t, 3, treeSet.Size())
	require.Equal(t, []interface{}{1, 2, 3}, treeSet.Values())
}

func TestRankedSet_Serialization(t *testing.T) {
	serix.DefaultAPI.RegisterTypeSettings("", serix.TypeSettings{}.WithLengthPrefixType(serix.LengthPrefixTypeAsByte))

	rankedSet := rankedset.New[string]()
	rankedSet.Add("b")
	rankedSet.Add("a")
	rankedSet.Add("c")

	bytes, err := rankedSet.Encode(serix.DefaultAPI)
	require.NoError(t, err)
	require.NotEmpty(t, bytes)

	decoded := rankedset.New[string]()
	bytesRead, err := decoded.Decode(serix.DefaultAPI, bytes)
	require.NoError(t, err)
	require.Equal(t, len(bytes), bytesRead)
	require.Equal(t, []string{"a", "b", "c"}, decoded.ToSlice())
}

func TestRankedSet_NewWith(t *testing.T) {
	byLength := rankedset.NewWith[string](func(a string, b string) int {
		if lengthDelta := len(a) - len(b); lengthDelta != 0 {
			return lengthDelta
		}

		return strings.Compare(a, b)
	})

	byLength.Add("ccc")
	byLength.Add("a")
	byLength.Add("bb")

	require.Equal(t, []string{"a", "bb", "ccc"}, byLength.ToSlice())
	require.Equal(t, 1, byLength.RankOf("bb"))
}
