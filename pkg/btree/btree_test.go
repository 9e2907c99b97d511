package btree

import (
	"fmt"
	"math/rand"
	"testing"

	"go-trees/pkg/treemap"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, degree int) *BTree[int, int] {
	t.Helper()
	tree, err := New[int, int](&Options{Degree: degree})
	require.NoError(t, err)
	return tree
}

// requireInvariants checks the B-tree structural invariants: strictly
// increasing entries inside every node, node capacity, children count on
// internal nodes, key ranges between separators, uniform leaf depth and
// the maintained size/height counters.
func requireInvariants(t *testing.T, tree *BTree[int, int]) {
	t.Helper()

	if tree.root == nil {
		require.Zero(t, tree.size)
		require.Zero(t, tree.height)
		return
	}

	leafDepth := -1
	count := 0

	var walk func(n *node[int, int], depth int, lo, hi *int)
	walk = func(n *node[int, int], depth int, lo, hi *int) {
		require.LessOrEqual(t, len(n.entries), tree.degree-1, "node over capacity")
		if n != tree.root {
			require.GreaterOrEqual(t, len(n.entries), (tree.degree+1)/2-1, "node under minimum fill")
		}

		count += len(n.entries)
		for i, e := range n.entries {
			if i > 0 {
				require.Less(t, n.entries[i-1].key, e.key, "entries out of order")
			}
			if lo != nil {
				require.Greater(t, e.key, *lo)
			}
			if hi != nil {
				require.Less(t, e.key, *hi)
			}
		}

		if n.isLeaf() {
			if leafDepth == -1 {
				leafDepth = depth
			}
			require.Equal(t, leafDepth, depth, "leaves at unequal depth")
			return
		}

		require.Equal(t, len(n.entries)+1, len(n.children), "children count mismatch")
		for i, child := range n.children {
			childLo, childHi := lo, hi
			if i > 0 {
				childLo = &n.entries[i-1].key
			}
			if i < len(n.entries) {
				childHi = &n.entries[i].key
			}
			walk(child, depth+1, childLo, childHi)
		}
	}
	walk(tree.root, 1, nil, nil)

	require.Equal(t, count, tree.size, "size counter mismatch")
	require.Equal(t, leafDepth, tree.height, "height counter mismatch")
}

func TestNewRejectsSmallDegree(t *testing.T) {
	for _, degree := range []int{-1, 0, 1, 2} {
		_, err := New[int, int](&Options{Degree: degree})
		require.Error(t, err, "degree %d", degree)
		require.True(t, errors.Is(err, treemap.ErrInvalidDegree))
	}

	_, err := New[int, int](&Options{Degree: 3})
	require.NoError(t, err)
}

func TestNewNilOptions(t *testing.T) {
	tree, err := New[int, int](nil)
	require.NoError(t, err)
	require.Equal(t, defaultOptions.Degree, tree.degree)
}

func TestEmpty(t *testing.T) {
	tree := mustNew(t, 4)

	require.Zero(t, tree.Size())
	require.True(t, tree.IsEmpty())
	require.Zero(t, tree.Height())

	_, ok := tree.Get(42)
	require.False(t, ok)
	_, ok = tree.Min()
	require.False(t, ok)
	_, ok = tree.Max()
	require.False(t, ok)
}

func TestPutGet(t *testing.T) {
	tree := mustNew(t, 3)
	tree.Put(1, 10)
	tree.Put(2, 20)
	tree.Put(3, 30)

	require.Equal(t, 3, tree.Size())
	for k := 1; k <= 3; k++ {
		v, ok := tree.Get(k)
		require.True(t, ok)
		require.Equal(t, k*10, v)
	}
	require.False(t, tree.Contains(4))
}

func TestOverwriteKeepsSize(t *testing.T) {
	tree := mustNew(t, 3)
	for k := 1; k <= 20; k++ {
		tree.Put(k, k)
	}

	// overwrite an entry that lives in an internal node and one in a leaf
	tree.Put(4, 400)
	tree.Put(1, 100)

	require.Equal(t, 20, tree.Size())
	v, _ := tree.Get(4)
	require.Equal(t, 400, v)
	v, _ = tree.Get(1)
	require.Equal(t, 100, v)
	requireInvariants(t, tree)
}

func TestInvariantsAfterEveryPut(t *testing.T) {
	sequences := map[string][]int{
		"sorted":  ascending(200),
		"reverse": descending(200),
		"random":  rand.New(rand.NewSource(17)).Perm(200),
	}

	for _, degree := range []int{3, 4, 7} {
		degree := degree
		for name, seq := range sequences {
			t.Run(fmt.Sprintf("%s-degree-%d", name, degree), func(t *testing.T) {
				tree := mustNew(t, degree)
				for i, k := range seq {
					tree.Put(k, k)

					requireInvariants(t, tree)
					require.Equal(t, i+1, tree.Size())
				}
			})
		}
	}
}

func TestRootSplitGrowsHeightByOne(t *testing.T) {
	tree := mustNew(t, 3)

	tree.Put(1, 1)
	require.Equal(t, 1, tree.Height())

	tree.Put(2, 2)
	require.Equal(t, 1, tree.Height())

	// third entry overflows the root leaf
	tree.Put(3, 3)
	require.Equal(t, 2, tree.Height())
	requireInvariants(t, tree)
}

func TestHeightStaysLogarithmic(t *testing.T) {
	tree := mustNew(t, 16)
	for i := 1; i <= 10000; i++ {
		tree.Put(i, i)
	}

	require.Equal(t, 10000, tree.Size())
	// order 16 keeps at least 7 entries per non-root node
	require.LessOrEqual(t, tree.Height(), 5)
	requireInvariants(t, tree)
}

func TestMinMax(t *testing.T) {
	tree := mustNew(t, 4)
	for _, k := range rand.New(rand.NewSource(23)).Perm(300) {
		tree.Put(k, k)
	}

	min, ok := tree.Min()
	require.True(t, ok)
	require.Equal(t, 0, min)

	max, ok := tree.Max()
	require.True(t, ok)
	require.Equal(t, 299, max)
}

func TestDeleteUnsupported(t *testing.T) {
	tree := mustNew(t, 3)
	tree.Put(1, 1)

	err := tree.Delete(1)
	require.Error(t, err)
	require.True(t, errors.Is(err, treemap.ErrUnsupported))
	require.Equal(t, 1, tree.Size())
	require.True(t, tree.Contains(1))
}

func TestStringKeys(t *testing.T) {
	tree, err := New[string, int](&Options{Degree: 3})
	require.NoError(t, err)

	for i, k := range []string{"cherry", "apple", "banana", "elder", "date"} {
		tree.Put(k, i)
	}

	min, _ := tree.Min()
	max, _ := tree.Max()
	require.Equal(t, "apple", min)
	require.Equal(t, "elder", max)
	require.True(t, tree.Contains("date"))
}

func ascending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func descending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - i
	}
	return out
}

func BenchmarkPutAscending(b *testing.B) {
	for i := 0; i < b.N; i++ {
		tree, _ := New[int, int](nil)
		for k := 1; k <= 1000; k++ {
			tree.Put(k, k+1)
		}
	}
}

func BenchmarkPutRandom(b *testing.B) {
	keys := rand.New(rand.NewSource(1)).Perm(1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree, _ := New[int, int](nil)
		for _, k := range keys {
			tree.Put(k, k+1)
		}
	}
}

func BenchmarkGet(b *testing.B) {
	tree, _ := New[int, int](nil)
	keys := rand.New(rand.NewSource(1)).Perm(1000)
	for _, k := range keys {
		tree.Put(k, k+1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Get(keys[i%len(keys)])
	}
}
