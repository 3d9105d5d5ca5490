package Trees

// Snapshot is a plain nested copy of a subtree, meant for diagnostics and
// snapshot tests. It is not a stable persisted format.
type Snapshot[K, V any] struct {
	Key   K               `json:"key" yaml:"key"`
	Value *V              `json:"value,omitempty" yaml:"value,omitempty"`
	Left  *Snapshot[K, V] `json:"left,omitempty" yaml:"left,omitempty"`
	Right *Snapshot[K, V] `json:"right,omitempty" yaml:"right,omitempty"`
}

// Export copies the tree with payloads. Returns nil for an empty tree.
// Time: O(n); Space: O(n)
func (u *Tree[K, V]) Export() *Snapshot[K, V] {
	return u.export(u.root, true)
}

// ExportKeys copies the tree leaving every Value nil.
// Time: O(n); Space: O(n)
func (u *Tree[K, V]) ExportKeys() *Snapshot[K, V] {
	return u.export(u.root, false)
}

func (u *Tree[K, V]) export(c *node[K, V], values bool) *Snapshot[K, V] {
	if c == u.nilPtr {
		return nil
	}
	s := &Snapshot[K, V]{Key: c.k, Left: u.export(c.l, values), Right: u.export(c.r, values)}
	if values {
		v := c.v
		s.Value = &v
	}
	return s
}
