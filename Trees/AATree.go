package Trees

import (
	"cmp"
	"iter"

	"github.com/ansel1/merry"
)

// Tree is an AA-tree: a binary search tree with no repeated keys that keeps
// balance through levels and the two rotations skew and split.
// K is the type of the keys and V the type of the payload attached to each key;
// use struct{} as V for set-like usage.
// This struct holds a root pointer, the shared nilPtr used instead of nil (see
// sentinel) and the comparator resolved when the tree was made. A Tree must be
// created with New, NewOf or NewFunc, the zero value is meaningless.
// Every node of level > 1 has two children and left links are never horizontal,
// so the height D of the tree is at most 2*log2(n+1).
// Insert and Delete are recursive with depth D, every other method is iterative.
// Tree is not safe for concurrent mutation.
type Tree[K, V any] struct {
	root   *node[K, V]
	nilPtr *node[K, V]
	cmp    func(K, K) int
}

// New returns an empty Tree ordered by the natural order of K.
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](Natural[K])
}

// NewOf returns an empty Tree ordered by K's own Compare method.
func NewOf[K Comparable[K], V any]() *Tree[K, V] {
	return NewFunc[K, V](ByMethod[K])
}

// NewFunc returns an empty Tree ordered by c, which must be a strict three-way
// comparison. It panics with ErrInvalidArgument if c is nil.
func NewFunc[K, V any](c func(K, K) int) *Tree[K, V] {
	if c == nil {
		panic(merry.Here(ErrInvalidArgument).Append("nil comparator"))
	}
	z := sentinel[K, V]()
	return &Tree[K, V]{z, z, c}
}

// Compare exposes the comparator of u.
func (u *Tree[K, V]) Compare(a, b K) int {
	return u.cmp(a, b)
}

// Empty reports whether u has no node.
// Time: O(1); Space: O(1)
func (u *Tree[K, V]) Empty() bool {
	return u.root == u.nilPtr
}

// Clear the tree. Nodes are left to the garbage collector.
// Time: O(1); Space: O(1)
func (u *Tree[K, V]) Clear() {
	u.root = u.nilPtr
}

// insert k, v to the subtree rooting at cur recursively. cur is passed by
// reference. Returns true when a new node was made, false when an existing node
// with an equal key had its key and value overwritten in place.
func (u *Tree[K, V]) insert(curPtr **node[K, V], k K, v V) (added bool) {
	cur := *curPtr
	if cur == u.nilPtr {
		*curPtr = &node[K, V]{k, v, 1, u.nilPtr, u.nilPtr}
		return true
	}
	if c := u.cmp(k, cur.k); c < 0 {
		added = u.insert(&cur.l, k, v)
	} else if c > 0 {
		added = u.insert(&cur.r, k, v)
	} else {
		cur.k, cur.v = k, v
		return false
	}
	skew(curPtr)
	split(curPtr)
	return
}

// Insert k with payload v, replacing both key and payload of an equal key if
// present. Returns true if k was added, false if it was replaced. Recursive.
// Time: O(D)
func (u *Tree[K, V]) Insert(k K, v V) bool {
	return u.insert(&u.root, k, v)
}

// InsertAll inserts the pairs of seq in order, later duplicates win. Returns the
// number of keys added.
// Time: O(n*D)
func (u *Tree[K, V]) InsertAll(seq iter.Seq2[K, V]) (added int) {
	for k, v := range seq {
		if u.insert(&u.root, k, v) {
			added++
		}
	}
	return
}

// removal is the state shared by the frames of one remove call.
// last is the most recently visited node, deleted the last visited node whose
// key is not greater than the removed key.
type removal[K, V any] struct {
	last, deleted *node[K, V]
	ok            bool
}

// remove k from the subtree rooting at cur recursively. cur is passed by reference.
// The bottom frame moves the key and value of the in-order successor (or of the
// node itself) into the matching node and splices the bottom node out. Frames
// unwinding above it restore the levels with the fixed sequence skew(T),
// skew(T.r), skew(T.r.r), split(T), split(T.r). A miss changes nothing.
func (u *Tree[K, V]) remove(curPtr **node[K, V], k K, st *removal[K, V]) {
	cur := *curPtr
	if cur == u.nilPtr {
		return
	}
	st.last = cur
	if u.cmp(k, cur.k) < 0 {
		u.remove(&cur.l, k, st)
	} else {
		st.deleted = cur
		u.remove(&cur.r, k, st)
	}
	if cur == st.last && st.deleted != u.nilPtr && u.cmp(k, st.deleted.k) == 0 {
		st.deleted.k, st.deleted.v = cur.k, cur.v
		st.deleted = u.nilPtr
		*curPtr = cur.r
		st.ok = true
	} else if lv := cur.lv - 1; cur.l.lv < lv || cur.r.lv < lv {
		cur.lv = lv
		if cur.r.lv > lv {
			cur.r.lv = lv
		}
		skew(curPtr)
		skew(&(*curPtr).r)
		skew(&(*curPtr).r.r)
		split(curPtr)
		split(&(*curPtr).r)
	}
}

// Delete k from the tree. Returns true if a node was removed. Recursive.
// Time: O(D)
func (u *Tree[K, V]) Delete(k K) bool {
	st := removal[K, V]{u.nilPtr, u.nilPtr, false}
	u.remove(&u.root, k, &st)
	return st.ok
}

// lookup returns the node holding a key equal to k, or nilPtr.
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) lookup(k K) *node[K, V] {
	cur := u.root
	for cur != u.nilPtr {
		if c := u.cmp(k, cur.k); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			break
		}
	}
	return cur
}

// Has reports whether a key equal to k is in the tree.
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) Has(k K) bool {
	return u.lookup(k) != u.nilPtr
}

// Get the payload of k. The second return value is false on a miss, in which
// case the first is the zero value.
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) Get(k K) (V, bool) {
	n := u.lookup(k)
	return n.v, n != u.nilPtr
}

// Lookup is Get that also returns the stored key, which may differ from k when
// the comparator treats distinct values as equal.
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) Lookup(k K) (K, V, bool) {
	n := u.lookup(k)
	return n.k, n.v, n != u.nilPtr
}

// Minimum entry of the tree.
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) Minimum() (K, V, bool) {
	cur := u.root
	for cur.l != u.nilPtr {
		cur = cur.l
	}
	return cur.k, cur.v, cur != u.nilPtr
}

// Maximum entry of the tree.
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) Maximum() (K, V, bool) {
	cur := u.root
	for cur.r != u.nilPtr {
		cur = cur.r
	}
	return cur.k, cur.v, cur != u.nilPtr
}

// Predecessor returns the entry with the greatest key less than k.
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) Predecessor(k K) (K, V, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if u.cmp(k, cur.k) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.k, p.v, p != u.nilPtr
}

// Successor returns the entry with the smallest key greater than k.
// Time: O(D); Space: O(1)
func (u *Tree[K, V]) Successor(k K) (K, V, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if u.cmp(k, cur.k) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.k, p.v, p != u.nilPtr
}

// Height is the number of nodes on the longest path from the root to a leaf.
func (u *Tree[K, V]) Height() uint {
	return u.height(u.root)
}

func (u *Tree[K, V]) height(c *node[K, V]) uint {
	if c == u.nilPtr {
		return 0
	}
	return max(u.height(c.l), u.height(c.r)) + 1
}

// Corrupt reports whether any node breaks the AA level rules or the key order:
// leaves have level 1; a left child is exactly one level below its parent; a right
// child is at most one level below its parent and never above it; a right
// grandchild is strictly below its grandparent; nodes above level 1 have two
// children; in-order keys are strictly increasing.
func (u *Tree[K, V]) Corrupt() bool {
	return !u.valid(u.root, u.nilPtr, u.nilPtr)
}

// valid checks the subtree rooting at c, whose keys must lie strictly between
// lo and hi (nilPtr meaning unbounded).
func (u *Tree[K, V]) valid(c, lo, hi *node[K, V]) bool {
	if c == u.nilPtr {
		return true
	}
	switch {
	case lo != u.nilPtr && u.cmp(lo.k, c.k) >= 0, hi != u.nilPtr && u.cmp(c.k, hi.k) >= 0:
		return false
	case c.l == u.nilPtr && c.r == u.nilPtr && c.lv != 1:
		return false
	case c.l.lv+1 != c.lv:
		return false
	case c.r.lv != c.lv && c.r.lv+1 != c.lv:
		return false
	case c.r.r.lv >= c.lv:
		return false
	case c.lv > 1 && (c.l == u.nilPtr || c.r == u.nilPtr):
		return false
	}
	return u.valid(c.l, lo, c) && u.valid(c.r, c, hi)
}
