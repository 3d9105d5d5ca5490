package Sets

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/g-m-twostay/ordered/Trees"
)

// OrderedSet is a set whose values are kept in ascending order by an AA-tree.
// Each value is stored as a tree key with an empty payload. The number of values
// is cached so Size is O(1).
// OrderedSet is not safe for concurrent use.
type OrderedSet[T any] struct {
	tree *Trees.Tree[T, struct{}]
	size int
}

// New returns an empty set ordered by the natural order of T.
func New[T cmp.Ordered]() *OrderedSet[T] {
	return &OrderedSet[T]{tree: Trees.New[T, struct{}]()}
}

// NewOf returns an empty set ordered by T's own Compare method.
func NewOf[T Trees.Comparable[T]]() *OrderedSet[T] {
	return &OrderedSet[T]{tree: Trees.NewOf[T, struct{}]()}
}

// NewFunc returns an empty set ordered by c. It panics if c is nil.
func NewFunc[T any](c func(T, T) int) *OrderedSet[T] {
	return &OrderedSet[T]{tree: Trees.NewFunc[T, struct{}](c)}
}

// NewDynamic returns an empty set accepting values of any type, ordered by Trees.Dynamic.
func NewDynamic() *OrderedSet[any] {
	return NewFunc[any](Trees.Dynamic)
}

// From builds a set from values in order.
func From[T cmp.Ordered](values iter.Seq[T]) *OrderedSet[T] {
	s := New[T]()
	for v := range values {
		s.Put(v)
	}
	return s
}

// FromFunc is From with an explicit comparator.
func FromFunc[T any](c func(T, T) int, values iter.Seq[T]) *OrderedSet[T] {
	s := NewFunc[T](c)
	for v := range values {
		s.Put(v)
	}
	return s
}

// Size of the set.
// Time: O(1)
func (u *OrderedSet[T]) Size() int {
	return u.size
}

// Has value v.
// Time: O(log n)
func (u *OrderedSet[T]) Has(v T) bool {
	return u.tree.Has(v)
}

// Put v in the set. Returns true if v was not there before; an equal value is
// replaced by v.
// Time: O(log n)
func (u *OrderedSet[T]) Put(v T) bool {
	if u.tree.Insert(v, struct{}{}) {
		u.size++
		return true
	}
	return false
}

// Add is Put returning u for chaining.
func (u *OrderedSet[T]) Add(v T) *OrderedSet[T] {
	u.Put(v)
	return u
}

// Delete v. Returns true iff it was in the set.
// Time: O(log n)
func (u *OrderedSet[T]) Delete(v T) bool {
	if u.tree.Delete(v) {
		u.size--
		return true
	}
	return false
}

// Remove is Delete.
func (u *OrderedSet[T]) Remove(v T) bool {
	return u.Delete(v)
}

// Clear removes every value.
// Time: O(1)
func (u *OrderedSet[T]) Clear() {
	u.tree.Clear()
	u.size = 0
}

// Min is the smallest value.
func (u *OrderedSet[T]) Min() (T, bool) {
	v, _, ok := u.tree.Minimum()
	return v, ok
}

// Max is the greatest value.
func (u *OrderedSet[T]) Max() (T, bool) {
	v, _, ok := u.tree.Maximum()
	return v, ok
}

// Take removes and returns the smallest value.
// Time: O(log n)
func (u *OrderedSet[T]) Take() (T, bool) {
	v, _, ok := u.tree.Minimum()
	if ok {
		u.Delete(v)
	}
	return v, ok
}

// ForEach calls visitor with (value, set) for every value in ascending order.
// A nil visitor fails with Trees.ErrInvalidArgument and nothing is visited.
func (u *OrderedSet[T]) ForEach(visitor func(v T, s *OrderedSet[T])) error {
	if visitor == nil {
		return u.tree.ForEach(nil)
	}
	return u.tree.ForEach(func(v T, _ struct{}) {
		visitor(v, u)
	})
}

// Range calls f on values in ascending order until f returns false.
func (u *OrderedSet[T]) Range(f func(T) bool) {
	for it := u.tree.Iter(); it.Next(); {
		if !f(it.Key()) {
			return
		}
	}
}

// Values in ascending order.
func (u *OrderedSet[T]) Values() iter.Seq[T] {
	return u.tree.Keys()
}

// All is the default iteration of the set, the same sequence as Values.
func (u *OrderedSet[T]) All() iter.Seq[T] {
	return u.tree.Keys()
}

// InOrder returns a closure iterating over the values, see Trees.Tree.InOrder.
func (u *OrderedSet[T]) InOrder() func() (T, bool) {
	return u.tree.InOrder()
}

// Export copies the underlying tree without payloads. Returns nil when empty.
func (u *OrderedSet[T]) Export() *Trees.Snapshot[T, struct{}] {
	return u.tree.ExportKeys()
}

// Corrupt reports whether the underlying tree or the cached size is inconsistent.
// Time: O(n)
func (u *OrderedSet[T]) Corrupt() bool {
	n := 0
	for range u.tree.Keys() {
		n++
	}
	return n != u.size || u.tree.Corrupt()
}

// String formats the set as [v0 v1 ...] in ascending order.
func (u *OrderedSet[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for v := range u.tree.Keys() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&sb, v)
	}
	sb.WriteByte(']')
	return sb.String()
}
