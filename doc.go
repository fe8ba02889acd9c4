// Package dheap implements a d-ary min-heap priority queue that maintains a
// collection of key-value pairs ordered by priority. Every item is addressable
// by key in O(1), which makes in-place priority updates cheap — the operation
// graph algorithms and schedulers know as decrease-key.
//
// The queue is implemented as an array-backed complete d-ary tree paired with
// a map from key to heap slot. The two structures are kept synchronized by a
// single swap primitive, so the map is never stale between operations. The
// arity d is fixed at construction; larger arities trade cheaper sift-up
// (shallower tree) for more comparisons per sift-down level, with d = 4 a
// common sweet spot for decrease-key heavy workloads.
//
// Key features:
//   - Generic implementation supporting any comparable key type and any value type
//   - Configurable arity (d >= 2) chosen at construction
//   - O(log_d n) insertion and priority increase
//   - O(d · log_d n) pop and priority decrease
//   - O(1) front access and key lookups
//   - Ordering determined by a user-provided comparison function
//
// Basic usage:
//
//	// Create a 4-ary min-heap priority queue
//	pq, err := dheap.New[string](4, dheap.Min[int]())
//	if err != nil {
//	    // d < 2 or nil less function
//	}
//
//	// Add items
//	_ = pq.Insert("task1", 5)
//	_ = pq.Insert("task2", 3)
//	_ = pq.Insert("task3", 7)
//
//	// Get highest priority item
//	key, value, exists := pq.Front()
//	if exists {
//	    fmt.Printf("Highest priority: %s = %d\n", key, value)
//	}
//
//	// Remove and return highest priority item
//	key, value, exists = pq.Pop()
//
//	// Make an existing item more important (lower value sorts first)
//	_ = pq.IncreasePriority("task1", 1)
//
// All operations are local-return: rejected calls (duplicate key, unknown key,
// invalid arity) leave the queue exactly as it was. Pop and Front on an empty
// queue report absence through their boolean result rather than panicking, so
// polling an empty queue is an ordinary condition.
//
// The queue is not safe for concurrent use; callers that share one across
// goroutines must provide their own mutual exclusion.
//
// Reference: Section A.3, d-Heaps, pp. 773-778 of Ravindra Ahuja, Thomas
// Magnanti & James Orlin, Network Flows (Prentice Hall, 1993).
package dheap
