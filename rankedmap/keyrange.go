package rankedmap

import (
	"github.com/statmaps/orderstat/skiplist"
)

// keyRange models the bounds of a sub-range view in ascending key space, where each of the two endpoints is optional
// and either inclusive or exclusive.
type keyRange[K any] struct {
	lower          K
	upper          K
	hasLower       bool
	hasUpper       bool
	lowerInclusive bool
	upperInclusive bool
}

// compare returns -1 if the given key is below the range, 1 if it is above the range and 0 if it is contained.
func (k *keyRange[K]) compare(comparator skiplist.Comparator[K], key K) int {
	if k.hasLower {
		if result := comparator(key, k.lower); result < 0 || (result == 0 && !k.lowerInclusive) {
			return -1
		}
	}
	if k.hasUpper {
		if result := comparator(key, k.upper); result > 0 || (result == 0 && !k.upperInclusive) {
			return 1
		}
	}

	return 0
}

// intersect returns the intersection of the two ranges by keeping the tighter one of each pair of endpoints. The
// result can be a range that contains no keys at all (i.e. if the ranges are disjoint), which is still a valid range.
func (k *keyRange[K]) intersect(comparator skiplist.Comparator[K], other *keyRange[K]) (intersection *keyRange[K]) {
	if k == nil {
		return other
	}
	if other == nil {
		return k
	}

	intersection = &keyRange[K]{
		lower:          k.lower,
		upper:          k.upper,
		hasLower:       k.hasLower,
		hasUpper:       k.hasUpper,
		lowerInclusive: k.lowerInclusive,
		upperInclusive: k.upperInclusive,
	}
	if other.hasLower && (!intersection.hasLower || isTighterLower(comparator(other.lower, intersection.lower), other.lowerInclusive)) {
		intersection.lower = other.lower
		intersection.hasLower = true
		intersection.lowerInclusive = other.lowerInclusive
	}
	if other.hasUpper && (!intersection.hasUpper || isTighterUpper(comparator(other.upper, intersection.upper), other.upperInclusive)) {
		intersection.upper = other.upper
		intersection.hasUpper = true
		intersection.upperInclusive = other.upperInclusive
	}

	return
}

// isTighterLower is an internal utility function that determines if a lower endpoint with the given comparison result
// restricts the range more than the endpoint it is compared against.
func isTighterLower(comparisonResult int, inclusive bool) bool {
	return comparisonResult > 0 || (comparisonResult == 0 && !inclusive)
}

// isTighterUpper is an internal utility function that determines if an upper endpoint with the given comparison result
// restricts the range more than the endpoint it is compared against.
func isTighterUpper(comparisonResult int, inclusive bool) bool {
	return comparisonResult < 0 || (comparisonResult == 0 && !inclusive)
}
