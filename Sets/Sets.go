package Sets

type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() int
	Take() (E, bool)
	Range(func(E) bool)
}

var _ Set[int] = (*OrderedSet[int])(nil)
