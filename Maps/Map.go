package Maps

import "iter"

// Map is an ordered key/value map. Misses are not errors: Get reports them
// through its second return value and Delete through its return value.
type Map[K, V any] interface {
	Put(K, V) bool
	Has(K) bool
	Get(K) (V, bool)
	Delete(K) bool
	Keys() iter.Seq[K]
	Values() iter.Seq[V]
	Entries() iter.Seq2[K, V]
	Size() int
	Clear()
}

var _ Map[int, int] = (*OrderedMap[int, int])(nil)
