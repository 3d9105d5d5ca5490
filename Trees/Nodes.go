package Trees

import (
	"reflect"
	"sync"
)

// A node in the AATree.
// The zero value is meaningless. A node exclusively owns l and r. lv is the
// AA level of the subtree rooting at this node; only the sentinel has lv==0.
type node[K, V any] struct {
	k    K
	v    V
	lv   uint
	l, r *node[K, V]
}

// sentinels maps the reflect.Type of node[K, V] to its shared nil node.
var sentinels sync.Map

// sentinel returns the nil node shared by every tree of the (K, V) instantiation.
// Its level is 0 and both of its children point back to itself. It is never
// written to, so sharing it between trees is safe.
func sentinel[K, V any]() *node[K, V] {
	t := reflect.TypeFor[node[K, V]]()
	if z, ok := sentinels.Load(t); ok {
		return z.(*node[K, V])
	}
	z := new(node[K, V])
	z.l, z.r = z, z
	actual, _ := sentinels.LoadOrStore(t, z)
	return actual.(*node[K, V])
}

// skew removes a left horizontal link with a right rotation. n is passed by
// reference in order to modify its content. No-op on the sentinel.
// Time: O(1); Space: O(1)
func skew[K, V any](n **node[K, V]) {
	if cur := *n; cur.lv != 0 && cur.l.lv == cur.lv {
		lc := cur.l
		cur.l = lc.r
		lc.r = cur
		*n = lc
	}
}

// split removes two consecutive right horizontal links with a left rotation,
// promoting the middle node one level. n is passed by reference in order to
// modify its content. No-op on the sentinel.
// Time: O(1); Space: O(1)
func split[K, V any](n **node[K, V]) {
	if cur := *n; cur.lv != 0 && cur.r.r.lv == cur.lv {
		rc := cur.r
		cur.r = rc.l
		rc.l = cur
		rc.lv++
		*n = rc
	}
}
