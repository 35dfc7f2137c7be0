// Package predicate contains small helpers to reason about the elements of a collection.
package predicate

// AllEqual returns true if all given elements are equal to each other (it is vacuously true for zero or one element).
func AllEqual[T comparable](elements ...T) bool {
	for i := 1; i < len(elements); i++ {
		if elements[i] != elements[0] {
			return false
		}
	}

	return true
}

// AllEqualFunc returns true if the given equality function reports all elements of the given slice as equal to each
// other (it is vacuously true for zero or one element).
func AllEqualFunc[T any](equal func(a T, b T) bool, elements []T) bool {
	for i := 1; i < len(elements); i++ {
		if !equal(elements[0], elements[i]) {
			return false
		}
	}

	return true
}
