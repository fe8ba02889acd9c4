package dheap

import "cmp"

// Min returns a comparison function ordering values by their natural order,
// smallest first. This is the usual choice for a min-heap over numeric
// priorities.
func Min[V cmp.Ordered]() func(a, b V) bool {
	return func(a, b V) bool { return a < b }
}

// Max returns a comparison function ordering values by their natural order,
// largest first.
func Max[V cmp.Ordered]() func(a, b V) bool {
	return func(a, b V) bool { return a > b }
}

// By returns a comparison function ordering values by an extracted key,
// smallest key first.
//
//	less := dheap.By(func(t Task) int { return t.Priority })
func By[V any, P cmp.Ordered](key func(V) P) func(a, b V) bool {
	return func(a, b V) bool { return key(a) < key(b) }
}

// Reverse inverts the order of less, turning a min ordering into a max
// ordering and vice versa.
func Reverse[V any](less func(a, b V) bool) func(a, b V) bool {
	return func(a, b V) bool { return less(b, a) }
}

// Chain compares by each function in turn, falling through to the next on
// ties.
//
//	less := dheap.Chain(
//		dheap.By(func(t Task) int { return t.Priority }),
//		dheap.By(func(t Task) int64 { return t.Deadline }),
//	)
func Chain[V any](lesses ...func(a, b V) bool) func(a, b V) bool {
	return func(a, b V) bool {
		for _, less := range lesses {
			switch {
			case less(a, b):
				return true
			case less(b, a):
				return false
			}
		}
		return false
	}
}
