package Sets

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/ansel1/merry"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/g-m-twostay/ordered/Trees"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rg = *rand.New(rand.NewSource(0))

func TestOrderedSet_Ascending(t *testing.T) {
	S := New[int]()
	for _, v := range []int{4, 1, 5, 3, 0, 6, 2} {
		if !S.Put(v) {
			t.Error("wrong put 1")
		}
		if S.Put(v) {
			t.Error("wrong put 2")
		}
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, slices.Collect(S.Values()))
	assert.Equal(t, slices.Collect(S.Values()), slices.Collect(S.All()))
	assert.Equal(t, 7, S.Size())
	assert.Equal(t, "[0 1 2 3 4 5 6]", S.String())
	assert.False(t, S.Corrupt())
}

func TestOrderedSet_All(t *testing.T) {
	S := New[int]()
	for i := 0; i < 10; i++ {
		S.Add(i)
	}
	for i := 0; i < 10; i++ {
		if !S.Has(i) {
			t.Error("wrong has 1")
		}
	}
	for i := 0; i < 5; i++ {
		if !S.Remove(i) {
			t.Error("wrong remove 1")
		}
		if S.Delete(i) {
			t.Error("wrong remove 2")
		}
	}
	for i := 0; i < 5; i++ {
		if S.Has(i) {
			t.Error("wrong has 2")
		}
	}
	assert.Equal(t, 5, S.Size())
}

// rank orders values by n only, so the tag never decides the order.
type rank struct {
	n   int
	tag string
}

func (u rank) Compare(o rank) int {
	return u.n - o.n
}

func TestOrderedSet_Comparable(t *testing.T) {
	S := NewOf[rank]()
	for _, r := range []rank{{30, "a"}, {10, "c"}, {20, "b"}} {
		S.Add(r)
	}
	var tags []string
	for r := range S.Values() {
		tags = append(tags, r.tag)
	}
	assert.Equal(t, []string{"c", "b", "a"}, tags)
	assert.True(t, S.Has(rank{n: 20}))
	assert.False(t, S.Put(rank{20, "d"}))
	assert.Equal(t, 3, S.Size())
}

func TestOrderedSet_TreeSetOracle(t *testing.T) {
	S := New[int]()
	ts := treeset.NewWithIntComparator()
	for range 20000 {
		v := rg.Intn(1500)
		if rg.Intn(3) == 0 {
			had := ts.Contains(v)
			ts.Remove(v)
			require.Equal(t, had, S.Delete(v), "delete %d", v)
		} else {
			had := ts.Contains(v)
			ts.Add(v)
			require.Equal(t, !had, S.Put(v), "put %d", v)
		}
		require.Equal(t, ts.Size(), S.Size())
	}
	var want []int
	for _, v := range ts.Values() {
		want = append(want, v.(int))
	}
	assert.Equal(t, want, slices.Collect(S.Values()))
	assert.False(t, S.Corrupt())
}

func TestOrderedSet_RoundTripEmpty(t *testing.T) {
	S := From(slices.Values(rg.Perm(500)))
	require.Equal(t, 500, S.Size())
	for _, v := range rg.Perm(500) {
		require.True(t, S.Delete(v))
	}
	assert.Equal(t, 0, S.Size())
	assert.Nil(t, S.Export())
	assert.Empty(t, slices.Collect(S.Values()))
}

func TestOrderedSet_Take(t *testing.T) {
	S := From(slices.Values([]string{"c", "a", "b"}))
	for _, want := range []string{"a", "b", "c"} {
		v, ok := S.Take()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	_, ok := S.Take()
	assert.False(t, ok)
	assert.Equal(t, 0, S.Size())
}

func TestOrderedSet_Range(t *testing.T) {
	S := From(slices.Values([]int{5, 3, 9, 1}))
	var got []int
	S.Range(func(v int) bool {
		got = append(got, v)
		return v < 5
	})
	assert.Equal(t, []int{1, 3, 5}, got)

	f := S.InOrder()
	v, ok := f()
	assert.Equal(t, []any{1, true}, []any{v, ok})
}

func TestOrderedSet_ForEach(t *testing.T) {
	S := From(slices.Values([]int{2, 1}))
	var got []int
	require.NoError(t, S.ForEach(func(v int, s *OrderedSet[int]) {
		assert.Same(t, S, s)
		got = append(got, v)
	}))
	assert.Equal(t, []int{1, 2}, got)
	assert.True(t, merry.Is(S.ForEach(nil), Trees.ErrInvalidArgument))
}

func TestOrderedSet_Clear(t *testing.T) {
	S := From(slices.Values([]int{2, 1, 3}))
	S.Clear()
	assert.Equal(t, 0, S.Size())
	assert.False(t, S.Has(1))
	_, ok := S.Min()
	assert.False(t, ok)
}

func TestOrderedSet_Dynamic(t *testing.T) {
	S := NewDynamic().Add("x").Add(3).Add(-1.5).Add(uint16(2))
	assert.Equal(t, []any{-1.5, uint16(2), 3, "x"}, slices.Collect(S.Values()))
	lo, _ := S.Min()
	hi, _ := S.Max()
	assert.Equal(t, -1.5, lo)
	assert.Equal(t, "x", hi)
}

func TestOrderedSet_DynamicInsertOrder(t *testing.T) {
	want := []any{9, 10, "10", "9"}
	for _, order := range [][]any{{9, "9", 10, "10"}, {10, "9", 9, "10"}, {"10", "9", 10, 9}, {"9", 9, "10", 10}} {
		S := NewDynamic()
		for _, v := range order {
			S.Add(v)
		}
		assert.Equal(t, want, slices.Collect(S.Values()), "inserted as %v", order)
		assert.Equal(t, 4, S.Size())
		assert.True(t, S.Has(9))
		assert.True(t, S.Has("9"))
		assert.False(t, S.Corrupt())
	}
	assert.Equal(t, 1, NewDynamic().Add(9).Add(uint8(9)).Add(9.0).Size())
}

func TestOrderedSet_Descending(t *testing.T) {
	S := FromFunc(Trees.Reverse(Trees.Natural[int]), slices.Values([]int{1, 3, 2}))
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(S.Values()))
	assert.Equal(t, &Trees.Snapshot[int, struct{}]{Key: 2,
		Left:  &Trees.Snapshot[int, struct{}]{Key: 3},
		Right: &Trees.Snapshot[int, struct{}]{Key: 1}}, S.Export())
}
