package Trees

import "iter"

// Iterator walks a Tree in ascending key order with an explicit stack, so no
// recursion is involved however deep the tree is. Calling Next is like advancing
// a cursor: Key and Value are meaningful only after Next returned true. Once Next
// returned false it keeps returning false.
// The tree must not be modified during the iteration, otherwise the order of the
// remaining entries is undefined. There will be no panic if such cases happen.
type Iterator[K, V any] struct {
	st     []*node[K, V]
	cur    *node[K, V]
	nilPtr *node[K, V]
}

// Iter returns a fresh Iterator positioned before the smallest key. Iterators
// obtained from the same tree are independent of each other.
// Time: O(D); Space: O(D)
func (u *Tree[K, V]) Iter() *Iterator[K, V] {
	it := &Iterator[K, V]{cur: u.nilPtr, nilPtr: u.nilPtr}
	it.pushLeft(u.root)
	return it
}

// pushLeft pushes c and its left spine.
func (it *Iterator[K, V]) pushLeft(c *node[K, V]) {
	for ; c != it.nilPtr; c = c.l {
		it.st = append(it.st, c)
	}
}

// Next advances to the next entry and reports whether there is one.
// Time: amortized O(1); Space: O(D)
func (it *Iterator[K, V]) Next() bool {
	if len(it.st) == 0 {
		it.cur = it.nilPtr
		return false
	}
	it.cur, it.st = it.st[len(it.st)-1], it.st[:len(it.st)-1]
	it.pushLeft(it.cur.r)
	return true
}

// Key of the current entry.
func (it *Iterator[K, V]) Key() K {
	return it.cur.k
}

// Value of the current entry.
func (it *Iterator[K, V]) Value() V {
	return it.cur.v
}

// All returns the ascending sequence of entries. Each range over it starts a new
// traversal.
func (u *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := u.Iter(); it.Next(); {
			if !yield(it.cur.k, it.cur.v) {
				return
			}
		}
	}
}

// Keys returns the ascending sequence of keys.
func (u *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := u.Iter(); it.Next(); {
			if !yield(it.cur.k) {
				return
			}
		}
	}
}

// Values returns the sequence of payloads in ascending key order.
func (u *Tree[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := u.Iter(); it.Next(); {
			if !yield(it.cur.v) {
				return
			}
		}
	}
}

// InOrder returns A closure function f acting like an iterator over the keys.
// Calling f is like calling "Next()" of iterators: k, valid=f(). k is meaningful
// only if valid is true, valid can't turn true after it first became false.
func (u *Tree[K, V]) InOrder() func() (K, bool) {
	it := u.Iter()
	return func() (k K, ok bool) {
		if ok = it.Next(); ok {
			k = it.cur.k
		}
		return
	}
}

// ForEach calls f on every entry in ascending key order. A nil f is rejected
// with ErrInvalidArgument before the tree is touched.
// Time: O(n); Space: O(D)
func (u *Tree[K, V]) ForEach(f func(K, V)) error {
	if f == nil {
		return nilVisitor("ForEach")
	}
	for it := u.Iter(); it.Next(); {
		f(it.cur.k, it.cur.v)
	}
	return nil
}

// Map collects f applied to every entry of u in ascending key order. A nil f is
// rejected with ErrInvalidArgument before the tree is touched.
// Time: O(n); Space: O(n)
func Map[K, V, R any](u *Tree[K, V], f func(K, V) R) ([]R, error) {
	if f == nil {
		return nil, nilVisitor("Map")
	}
	var rs []R
	for it := u.Iter(); it.Next(); {
		rs = append(rs, f(it.cur.k, it.cur.v))
	}
	return rs, nil
}
