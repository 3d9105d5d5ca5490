package Trees

import (
	"slices"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	oOpN        = 20000
	oOpValRange = 3000
)

// TestTree_RedBlackOracle runs the same random inserts and deletes on a Tree and on
// a gods red-black tree and compares every answer.
func TestTree_RedBlackOracle(t *testing.T) {
	tree := New[int, int]()
	rb := redblacktree.NewWithIntComparator()
	for i := range oOpN {
		k := rg.Intn(oOpValRange)
		if rg.Intn(3) == 0 {
			_, found := rb.Get(k)
			rb.Remove(k)
			require.Equal(t, found, tree.Delete(k), "delete %d", k)
		} else {
			_, found := rb.Get(k)
			rb.Put(k, i)
			require.Equal(t, !found, tree.Insert(k, i), "insert %d", k)
		}
	}
	var keys, vals []int
	for _, k := range rb.Keys() {
		keys = append(keys, k.(int))
	}
	for _, v := range rb.Values() {
		vals = append(vals, v.(int))
	}
	assert.Equal(t, keys, slices.Collect(tree.Keys()))
	assert.Equal(t, vals, slices.Collect(tree.Values()))
	assert.False(t, tree.Corrupt())
}

func TestTree_BTreeOracle(t *testing.T) {
	tree := New[int, struct{}]()
	bt := btree.NewOrderedG[int](8)
	for range oOpN {
		k := rg.Intn(oOpValRange)
		if rg.Intn(2) == 0 {
			_, found := bt.Delete(k)
			require.Equal(t, found, tree.Delete(k), "delete %d", k)
		} else {
			_, replaced := bt.ReplaceOrInsert(k)
			require.Equal(t, !replaced, tree.Insert(k, struct{}{}), "insert %d", k)
		}
	}
	want := make([]int, 0, bt.Len())
	bt.Ascend(func(k int) bool {
		want = append(want, k)
		return true
	})
	assert.Equal(t, want, slices.Collect(tree.Keys()))
	for k := range oOpValRange {
		_, found := bt.Get(k)
		require.Equal(t, found, tree.Has(k), "has %d", k)
	}
	lo, lok := bt.Min()
	k, _, ok := tree.Minimum()
	assert.Equal(t, []any{lo, lok}, []any{k, ok})
	hi, hok := bt.Max()
	k, _, ok = tree.Maximum()
	assert.Equal(t, []any{hi, hok}, []any{k, ok})
}

func TestTree_LLRBOracle(t *testing.T) {
	tree := New[int, struct{}]()
	lt := llrb.New()
	for range oOpN {
		k := rg.Intn(oOpValRange)
		if rg.Intn(3) == 0 {
			require.Equal(t, lt.Delete(llrb.Int(k)) != nil, tree.Delete(k), "delete %d", k)
		} else {
			require.Equal(t, lt.ReplaceOrInsert(llrb.Int(k)) == nil, tree.Insert(k, struct{}{}), "insert %d", k)
		}
	}
	var want []int
	lt.AscendGreaterOrEqual(llrb.Inf(-1), func(i llrb.Item) bool {
		want = append(want, int(i.(llrb.Int)))
		return true
	})
	assert.Equal(t, want, slices.Collect(tree.Keys()))
	assert.Equal(t, lt.Len(), len(want))
}
