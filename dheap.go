package dheap

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidArity is returned by New when d < 2.
	ErrInvalidArity = errors.New("arity must be at least 2")
	// ErrNilLess is returned by New when no comparison function is given.
	ErrNilLess = errors.New("less function must not be nil")
	// ErrDuplicateKey is returned by Insert when the key is already present.
	ErrDuplicateKey = errors.New("key already present")
	// ErrKeyNotFound is returned by priority updates on an absent key.
	ErrKeyNotFound = errors.New("key not found")
)

// item is a single entry in the queue. index is the item's current slot in the
// heap array and must agree with the lookup map at all times.
type item[K comparable, V any] struct {
	key   K
	value V
	index int
}

// Pair is a key-value pair accepted by InsertMany.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Queue implements a d-ary heap priority queue with O(1) key lookup.
type Queue[K comparable, V any] struct {
	items   []*item[K, V]
	itemMap map[K]*item[K, V]
	arity   int
	lessF   func(a, b V) bool // returns true if a has higher priority than b
}

// New creates an empty priority queue with the given arity and comparator.
// The arity is the maximum number of children per node and is immutable for
// the lifetime of the queue.
func New[K comparable, V any](d int, less func(a, b V) bool) (*Queue[K, V], error) {
	if d < 2 {
		return nil, ErrInvalidArity
	}
	if less == nil {
		return nil, ErrNilLess
	}
	return &Queue[K, V]{
		items:   make([]*item[K, V], 0),
		itemMap: make(map[K]*item[K, V]),
		arity:   d,
		lessF:   less,
	}, nil
}

// Len returns the number of items in the queue.
func (pq *Queue[K, V]) Len() int {
	return len(pq.items)
}

// IsEmpty reports whether the queue holds no items.
func (pq *Queue[K, V]) IsEmpty() bool {
	return len(pq.items) == 0
}

// D returns the arity the queue was constructed with.
func (pq *Queue[K, V]) D() int {
	return pq.arity
}

// Contains reports whether an item with the given key is in the queue.
func (pq *Queue[K, V]) Contains(key K) bool {
	_, exists := pq.itemMap[key]
	return exists
}

// Get returns the value stored under key.
func (pq *Queue[K, V]) Get(key K) (V, bool) {
	i, exists := pq.itemMap[key]
	if !exists {
		var zeroV V
		return zeroV, false
	}
	return i.value, true
}

// Insert adds a new key with the given value. The key must not already be
// present; on ErrDuplicateKey the queue is unchanged.
func (pq *Queue[K, V]) Insert(key K, value V) error {
	if _, exists := pq.itemMap[key]; exists {
		return ErrDuplicateKey
	}
	i := &item[K, V]{
		key:   key,
		value: value,
		index: len(pq.items),
	}
	pq.items = append(pq.items, i)
	pq.itemMap[key] = i
	pq.up(i.index)
	return nil
}

// InsertMany adds all of the given pairs. Every key is validated against the
// queue and against the rest of the batch before anything is inserted, so a
// duplicate rejects the whole batch and leaves the queue unchanged.
//
// Starting from an empty queue the heap is rebuilt bottom-up in O(n) rather
// than sifting each item individually.
func (pq *Queue[K, V]) InsertMany(pairs ...Pair[K, V]) error {
	if len(pairs) == 0 {
		return nil
	}

	seen := make(map[K]struct{}, len(pairs))
	for _, p := range pairs {
		if _, exists := pq.itemMap[p.Key]; exists {
			return fmt.Errorf("insert %v: %w", p.Key, ErrDuplicateKey)
		}
		if _, dup := seen[p.Key]; dup {
			return fmt.Errorf("insert %v: %w", p.Key, ErrDuplicateKey)
		}
		seen[p.Key] = struct{}{}
	}

	start := len(pq.items)
	for _, p := range pairs {
		i := &item[K, V]{
			key:   p.Key,
			value: p.Value,
			index: len(pq.items),
		}
		pq.items = append(pq.items, i)
		pq.itemMap[p.Key] = i
	}

	if start == 0 && len(pq.items) > 1 {
		pq.heapify()
		return nil
	}
	for i := start; i < len(pq.items); i++ {
		pq.up(i)
	}
	return nil
}

// Front returns the highest priority item without removing it.
func (pq *Queue[K, V]) Front() (key K, value V, exists bool) {
	if len(pq.items) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	i := pq.items[0]
	return i.key, i.value, true
}

// Pop removes and returns the highest priority item. The boolean result is
// false when the queue is empty.
func (pq *Queue[K, V]) Pop() (key K, value V, exists bool) {
	if len(pq.items) == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	i := pq.items[0]
	pq.unlink(i)
	return i.key, i.value, true
}

// Remove removes the item stored under key, wherever it sits in the heap, and
// returns its value.
func (pq *Queue[K, V]) Remove(key K) (V, bool) {
	i, exists := pq.itemMap[key]
	if !exists {
		var zeroV V
		return zeroV, false
	}
	pq.unlink(i)
	return i.value, true
}

// IncreasePriority gives an existing key a more important value (for a
// min-ordering, a smaller one). Returns ErrKeyNotFound if the key is absent.
func (pq *Queue[K, V]) IncreasePriority(key K, value V) error {
	return pq.update(key, value)
}

// DecreasePriority gives an existing key a less important value (for a
// min-ordering, a larger one). Returns ErrKeyNotFound if the key is absent.
func (pq *Queue[K, V]) DecreasePriority(key K, value V) error {
	return pq.update(key, value)
}

// update overwrites the stored value and picks the sift direction by comparing
// old and new, rather than trusting the caller's verb. The heap property holds
// afterwards regardless of which direction the value actually moved.
func (pq *Queue[K, V]) update(key K, value V) error {
	i, exists := pq.itemMap[key]
	if !exists {
		return ErrKeyNotFound
	}
	oldValue := i.value
	i.value = value
	if pq.lessF(value, oldValue) {
		pq.up(i.index)
	} else {
		pq.down(i.index)
	}
	return nil
}

// Clear removes all items. The arity is retained.
func (pq *Queue[K, V]) Clear() {
	pq.items = pq.items[:0]
	pq.itemMap = make(map[K]*item[K, V])
}

// String renders the queue in heap order (not priority order). Implements
// fmt.Stringer.
func (pq *Queue[K, V]) String() string {
	if len(pq.items) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{")
	for i, it := range pq.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v:%v", it.key, it.value)
	}
	sb.WriteString("}")
	return sb.String()
}

// unlink removes i from both structures: its slot is filled by the last
// element, which is then sifted in whichever direction it needs.
func (pq *Queue[K, V]) unlink(i *item[K, V]) {
	idx := i.index
	lastIdx := len(pq.items) - 1

	if idx != lastIdx {
		pq.swap(idx, lastIdx)
	}
	pq.items = pq.items[:lastIdx]
	delete(pq.itemMap, i.key)

	if idx != lastIdx {
		pq.down(idx)
		pq.up(idx)
	}
}

// heapify restores the heap property over the whole array by sifting down from
// the last parent. O(n).
func (pq *Queue[K, V]) heapify() {
	n := len(pq.items)
	if n <= 1 {
		return
	}
	for i := (n - 2) / pq.arity; i >= 0; i-- {
		pq.down(i)
	}
}

// swap exchanges the items at slots i and j and updates both position
// mappings in the same step. Every heap move goes through here so the array
// and the map cannot drift apart.
func (pq *Queue[K, V]) swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
	pq.items[i].index = i
	pq.items[j].index = j
}

// less compares items at slots i and j.
func (pq *Queue[K, V]) less(i, j int) bool {
	return pq.lessF(pq.items[i].value, pq.items[j].value)
}

// up moves the element at slot i toward the root to its proper position.
func (pq *Queue[K, V]) up(i int) {
	for i > 0 {
		parent := (i - 1) / pq.arity
		if !pq.less(i, parent) {
			break
		}
		pq.swap(i, parent)
		i = parent
	}
}

// down moves the element at slot i toward the leaves to its proper position,
// following the smallest of up to d children at each level.
func (pq *Queue[K, V]) down(i int) {
	for {
		first := i*pq.arity + 1
		if first >= len(pq.items) {
			break
		}

		best := first
		end := first + pq.arity
		if end > len(pq.items) {
			end = len(pq.items)
		}
		for c := first + 1; c < end; c++ {
			if pq.less(c, best) {
				best = c
			}
		}

		if !pq.less(best, i) {
			break
		}
		pq.swap(i, best)
		i = best
	}
}
