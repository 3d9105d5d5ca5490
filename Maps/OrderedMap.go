package Maps

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/g-m-twostay/ordered/Trees"
)

// OrderedMap is a map whose entries are kept in ascending key order by an
// AA-tree. It caches the number of keys so Size is O(1).
// OrderedMap is not safe for concurrent use; mutating it while ranging over one
// of its sequences gives an undefined order.
type OrderedMap[K, V any] struct {
	tree *Trees.Tree[K, V]
	size int
}

// New returns an empty map ordered by the natural order of K.
func New[K cmp.Ordered, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{tree: Trees.New[K, V]()}
}

// NewOf returns an empty map ordered by K's own Compare method.
func NewOf[K Trees.Comparable[K], V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{tree: Trees.NewOf[K, V]()}
}

// NewFunc returns an empty map ordered by c. It panics if c is nil.
func NewFunc[K, V any](c func(K, K) int) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{tree: Trees.NewFunc[K, V](c)}
}

// NewDynamic returns an empty map accepting keys of any type, ordered by Trees.Dynamic.
func NewDynamic[V any]() *OrderedMap[any, V] {
	return NewFunc[any, V](Trees.Dynamic)
}

// From builds a map from pairs with sequential Set calls, so later duplicates win.
func From[K cmp.Ordered, V any](pairs iter.Seq2[K, V]) *OrderedMap[K, V] {
	m := New[K, V]()
	m.size = m.tree.InsertAll(pairs)
	return m
}

// FromFunc is From with an explicit comparator.
func FromFunc[K, V any](c func(K, K) int, pairs iter.Seq2[K, V]) *OrderedMap[K, V] {
	m := NewFunc[K, V](c)
	m.size = m.tree.InsertAll(pairs)
	return m
}

// Size is the number of distinct keys.
// Time: O(1)
func (u *OrderedMap[K, V]) Size() int {
	return u.size
}

// Has key k.
// Time: O(log n)
func (u *OrderedMap[K, V]) Has(k K) bool {
	return u.tree.Has(k)
}

// Get the value of k. The second return value is false if k is absent.
// Time: O(log n)
func (u *OrderedMap[K, V]) Get(k K) (V, bool) {
	return u.tree.Get(k)
}

// Set k to v, replacing the key and value of an equal key. Returns u for chaining.
// Time: O(log n)
func (u *OrderedMap[K, V]) Set(k K, v V) *OrderedMap[K, V] {
	u.Put(k, v)
	return u
}

// Put is Set reporting whether k was not in the map before.
// Time: O(log n)
func (u *OrderedMap[K, V]) Put(k K, v V) bool {
	if u.tree.Insert(k, v) {
		u.size++
		return true
	}
	return false
}

// Delete k. Returns true iff an entry was removed.
// Time: O(log n)
func (u *OrderedMap[K, V]) Delete(k K) bool {
	if u.tree.Delete(k) {
		u.size--
		return true
	}
	return false
}

// Clear removes every entry.
// Time: O(1)
func (u *OrderedMap[K, V]) Clear() {
	u.tree.Clear()
	u.size = 0
}

// Min is the entry with the smallest key.
func (u *OrderedMap[K, V]) Min() (K, V, bool) {
	return u.tree.Minimum()
}

// Max is the entry with the greatest key.
func (u *OrderedMap[K, V]) Max() (K, V, bool) {
	return u.tree.Maximum()
}

// Before is the entry with the greatest key less than k.
func (u *OrderedMap[K, V]) Before(k K) (K, V, bool) {
	return u.tree.Predecessor(k)
}

// After is the entry with the smallest key greater than k.
func (u *OrderedMap[K, V]) After(k K) (K, V, bool) {
	return u.tree.Successor(k)
}

// ForEach calls visitor with (value, key, map) for every entry in ascending key
// order. A nil visitor fails with Trees.ErrInvalidArgument and nothing is visited.
func (u *OrderedMap[K, V]) ForEach(visitor func(v V, k K, m *OrderedMap[K, V])) error {
	if visitor == nil {
		return u.tree.ForEach(nil)
	}
	return u.tree.ForEach(func(k K, v V) {
		visitor(v, k, u)
	})
}

// Collect returns f applied to every entry of m in ascending key order. A nil f
// fails with Trees.ErrInvalidArgument.
func Collect[K, V, R any](m *OrderedMap[K, V], f func(v V, k K, m *OrderedMap[K, V]) R) ([]R, error) {
	if f == nil {
		return Trees.Map[K, V, R](m.tree, nil)
	}
	return Trees.Map(m.tree, func(k K, v V) R {
		return f(v, k, m)
	})
}

// Keys in ascending order.
func (u *OrderedMap[K, V]) Keys() iter.Seq[K] {
	return u.tree.Keys()
}

// Values in ascending key order.
func (u *OrderedMap[K, V]) Values() iter.Seq[V] {
	return u.tree.Values()
}

// Entries in ascending key order.
func (u *OrderedMap[K, V]) Entries() iter.Seq2[K, V] {
	return u.tree.All()
}

// All is the default iteration of the map, the same sequence as Entries.
func (u *OrderedMap[K, V]) All() iter.Seq2[K, V] {
	return u.tree.All()
}

// Iter returns an external iterator positioned before the smallest key.
func (u *OrderedMap[K, V]) Iter() *Trees.Iterator[K, V] {
	return u.tree.Iter()
}

// Export copies the underlying tree for diagnostics. Returns nil when empty.
func (u *OrderedMap[K, V]) Export() *Trees.Snapshot[K, V] {
	return u.tree.Export()
}

// Corrupt reports whether the underlying tree or the cached size is inconsistent.
// Time: O(n)
func (u *OrderedMap[K, V]) Corrupt() bool {
	n := 0
	for range u.tree.Keys() {
		n++
	}
	return n != u.size || u.tree.Corrupt()
}

// String formats the map like a Go map, in key order.
func (u *OrderedMap[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("map[")
	first := true
	for k, v := range u.tree.All() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v:%v", k, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
