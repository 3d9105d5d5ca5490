package Trees

import "iter"

// Sorted represents an ordered key/value container implemented using nodes.
// Receivers that have a bool as the last return value indicate whether the other
// return values are defined. For example, calling Minimum on an empty tree
// returns (k K, v V, false). In this case the values of k and v are the zero
// values of their types and shouldn't be used.
// Methods implemented recursively should be noted, otherwise methods are
// implemented iteratively.
type Sorted[K, V any] interface {
	//Insert k with payload v. Returning true if k was added, false if an equal
	//key was replaced.
	Insert(k K, v V) bool
	//Delete k. Returning true if k was in the container.
	Delete(k K) bool
	//Has key k.
	Has(k K) bool
	//Get the payload of k.
	Get(k K) (V, bool)
	//Minimum entry.
	Minimum() (K, V, bool)
	//Maximum entry.
	Maximum() (K, V, bool)
	//Predecessor returns the entry with the greatest key less than k.
	Predecessor(k K) (K, V, bool)
	//Successor returns the entry with the smallest key greater than k.
	Successor(k K) (K, V, bool)
	//All entries in ascending key order. Each range starts a new traversal.
	All() iter.Seq2[K, V]
	//Clear the container.
	Clear()
	//Corrupt returns whether the container has corrupt structures, when some node
	//violates the properties of that specific implementation.
	Corrupt() bool
}

var _ Sorted[int, struct{}] = (*Tree[int, struct{}])(nil)
