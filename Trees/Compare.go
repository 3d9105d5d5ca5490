package Trees

import (
	"cmp"
	"strings"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Comparable is implemented by key types that order themselves. Compare returns a
// negative number if u < other, 0 if they are equal and a positive number otherwise.
type Comparable[K any] interface {
	Compare(other K) int
}

// Comparer is the untyped Comparable, honoured by Dynamic.
type Comparer interface {
	Compare(other any) int
}

// Natural orders keys by the < operator of their type.
func Natural[K cmp.Ordered](a, b K) int {
	return cmp.Compare(a, b)
}

// ByMethod orders keys by their own Compare method.
func ByMethod[K Comparable[K]](a, b K) int {
	return a.Compare(b)
}

// Reverse returns the descending version of c.
func Reverse[K any](c func(K, K) int) func(K, K) int {
	return func(a, b K) int {
		return c(b, a)
	}
}

var _ utils.Comparator = Dynamic

// Dynamic orders keys whose type is only known at run time. A key implementing
// Comparer decides by itself. Otherwise keys are grouped by kind, numbers before
// strings before everything else, and only compared within a group: numbers of any
// built-in kind by value, strings lexicographically, the rest by their string form.
func Dynamic(a, b any) int {
	if x, ok := a.(Comparer); ok {
		return x.Compare(b)
	} else if y, ok := b.(Comparer); ok {
		return -y.Compare(a)
	}
	x, xk := classify(a)
	y, yk := classify(b)
	if xk != yk {
		return cmp.Compare(xk, yk)
	}
	switch xk {
	case gNumber:
		return x.compare(y)
	case gString:
		return strings.Compare(a.(string), b.(string))
	}
	return strings.Compare(utils.ToString(a), utils.ToString(b))
}

// groups of Dynamic, in ascending order.
const (
	gNumber byte = iota
	gString
	gOther
)

func classify(x any) (number, byte) {
	if n, ok := toNumber(x); ok {
		return n, gNumber
	}
	if _, ok := x.(string); ok {
		return number{}, gString
	}
	return number{}, gOther
}

const (
	kSigned byte = iota
	kUnsigned
	kFloat
)

// number is a widened built-in numeric value. Only the field matching kind is exact,
// f is always set.
type number struct {
	kind byte
	s    int64
	u    uint64
	f    float64
}

func signed[N constraints.Signed](n N) number {
	return number{kind: kSigned, s: int64(n), f: float64(n)}
}

func unsigned[N constraints.Unsigned](n N) number {
	return number{kind: kUnsigned, u: uint64(n), f: float64(n)}
}

func float[N constraints.Float](n N) number {
	return number{kind: kFloat, f: float64(n)}
}

func toNumber(x any) (number, bool) {
	switch n := x.(type) {
	case int:
		return signed(n), true
	case int8:
		return signed(n), true
	case int16:
		return signed(n), true
	case int32:
		return signed(n), true
	case int64:
		return signed(n), true
	case uint:
		return unsigned(n), true
	case uint8:
		return unsigned(n), true
	case uint16:
		return unsigned(n), true
	case uint32:
		return unsigned(n), true
	case uint64:
		return unsigned(n), true
	case uintptr:
		return unsigned(n), true
	case float32:
		return float(n), true
	case float64:
		return float(n), true
	}
	return number{}, false
}

// compare never overflows: integers of mixed signedness are compared without
// conversion to float, only a float on either side widens both to float64.
func (u number) compare(o number) int {
	switch {
	case u.kind == kFloat || o.kind == kFloat:
		return cmp.Compare(u.f, o.f)
	case u.kind == kSigned && o.kind == kSigned:
		return cmp.Compare(u.s, o.s)
	case u.kind == kUnsigned && o.kind == kUnsigned:
		return cmp.Compare(u.u, o.u)
	case u.kind == kSigned:
		if u.s < 0 {
			return -1
		}
		return cmp.Compare(uint64(u.s), o.u)
	default:
		if o.s < 0 {
			return 1
		}
		return cmp.Compare(u.u, uint64(o.s))
	}
}
