// Package chunk provides fixed-size grouping of slices for paged display.
package chunk

import "iter"

// Groups returns a lazy sequence of groups of exactly n elements drawn from
// items in order. The final group is padded with fill when len(items) is not
// a multiple of n. The sequence is restartable: every range over it starts
// from the first group again. Empty input and non-positive n both yield zero
// groups.
func Groups[T any](items []T, n int, fill T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if n <= 0 {
			return
		}
		for start := 0; start < len(items); start += n {
			group := make([]T, n)
			copied := copy(group, items[start:min(start+n, len(items))])
			for i := copied; i < n; i++ {
				group[i] = fill
			}
			if !yield(group) {
				return
			}
		}
	}
}
