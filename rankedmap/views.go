package rankedmap

import (
	"github.com/statmaps/orderstat/skiplist"
)

// DescendingMap returns a live view of the map with the reversed iteration order. The view shares the backing store
// of this view: changes through either of the two are visible in both. Reversing a reversed view returns the original
// view again.
func (r *RankedMap[K, V]) DescendingMap() *RankedMap[K, V] {
	if r.reversed == nil {
		r.reversed = &RankedMap[K, V]{
			store:      r.store,
			bounds:     r.bounds,
			descending: !r.descending,
			reversed:   r,
		}
	}

	return r.reversed
}

// SubMap returns a live view of the portion of the map whose keys range from fromKey to toKey (both given in the
// order of this view). The view shares the backing store of this view: changes through either of the two are visible
// in both. Requests that do not overlap the bounds of this view yield a valid empty view. The method panics if
// fromKey is bigger than toKey in the order of this view.
func (r *RankedMap[K, V]) SubMap(fromKey K, fromInclusive bool, toKey K, toInclusive bool) *RankedMap[K, V] {
	if r.viewCompare(fromKey, toKey) > 0 {
		panic("fromKey needs to be smaller or equal than toKey")
	}

	requested := &keyRange[K]{}
	if r.descending {
		requested.lower, requested.hasLower, requested.lowerInclusive = toKey, true, toInclusive
		requested.upper, requested.hasUpper, requested.upperInclusive = fromKey, true, fromInclusive
	} else {
		requested.lower, requested.hasLower, requested.lowerInclusive = fromKey, true, fromInclusive
		requested.upper, requested.hasUpper, requested.upperInclusive = toKey, true, toInclusive
	}

	return r.derive(requested)
}

// HeadMap returns a live view of the portion of the map whose keys are smaller than toKey in the order of this view
// (or smaller or equal if inclusive is set). The view shares the backing store of this view: changes through either
// of the two are visible in both.
func (r *RankedMap[K, V]) HeadMap(toKey K, inclusive bool) *RankedMap[K, V] {
	requested := &keyRange[K]{}
	if r.descending {
		requested.lower, requested.hasLower, requested.lowerInclusive = toKey, true, inclusive
	} else {
		requested.upper, requested.hasUpper, requested.upperInclusive = toKey, true, inclusive
	}

	return r.derive(requested)
}

// TailMap returns a live view of the portion of the map whose keys are bigger than fromKey in the order of this view
// (or bigger or equal if inclusive is set). The view shares the backing store of this view: changes through either of
// the two are visible in both.
func (r *RankedMap[K, V]) TailMap(fromKey K, inclusive bool) *RankedMap[K, V] {
	requested := &keyRange[K]{}
	if r.descending {
		requested.upper, requested.hasUpper, requested.upperInclusive = fromKey, true, inclusive
	} else {
		requested.lower, requested.hasLower, requested.lowerInclusive = fromKey, true, inclusive
	}

	return r.derive(requested)
}

// Range returns a live view of the portion of the map whose keys range from fromKey (inclusive) to toKey (exclusive),
// which is the most common half-open form of SubMap.
func (r *RankedMap[K, V]) Range(fromKey K, toKey K) *RankedMap[K, V] {
	return r.SubMap(fromKey, true, toKey, false)
}

// Comparator returns the Comparator that represents the iteration order of this view (i.e. the reversed comparator of
// the backing store for descending views).
func (r *RankedMap[K, V]) Comparator() skiplist.Comparator[K] {
	if r.descending {
		comparator := r.store.Comparator()

		return func(a K, b K) int {
			return -comparator(a, b)
		}
	}

	return r.store.Comparator()
}

// viewCompare is an internal utility function that compares two keys in the iteration order of the view.
func (r *RankedMap[K, V]) viewCompare(a K, b K) int {
	result := r.store.Comparator()(a, b)
	if r.descending {
		result = -result
	}

	return result
}

// derive is an internal utility function that creates a view that shares the backing store and the orientation of
// this view and that restricts the visible keys to the intersection of the given bounds with the bounds of this view.
func (r *RankedMap[K, V]) derive(requested *keyRange[K]) *RankedMap[K, V] {
	return &RankedMap[K, V]{
		store:      r.store,
		bounds:     r.bounds.intersect(r.store.Comparator(), requested),
		descending: r.descending,
	}
}
