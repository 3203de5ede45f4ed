// File: store.go
// Role: Growable label-store management shared by both adapter forms.
// Determinism:
//   - Growth is a pure function of current length and required count.

package label

// grow returns s extended so that len(s) strictly exceeds count, doubling
// the length until it does (bootstrapping from 1 when s is empty).
// Existing entries are copied; new slots hold the zero value. The result
// never aliases a shorter s after a reallocation, so an in-flight frozen
// copy of the old buffer is unaffected.
//
// Amortized O(1) per insertion; over-allocation bounded by 2×.
func grow[T any](s []T, count int) []T {
	if len(s) > count {
		return s
	}
	next := len(s)
	if next == 0 {
		next = 1
	}
	for next <= count {
		next <<= 1
	}
	extended := make([]T, next)
	copy(extended, s)

	return extended
}

// clipped returns a fresh copy of exactly the first n entries of s.
// n must not exceed len(s); callers derive n from the wrapped graph's
// counts, which the growth invariant keeps within the store.
func clipped[T any](s []T, n int) []T {
	out := make([]T, n)
	copy(out, s[:n])

	return out
}
