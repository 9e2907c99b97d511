// Package rbtree implements a left-leaning red-black tree: a balanced
// binary search tree whose height is bounded by 2*ceil(log2(n+1)). Red
// links lean left only and no two red links appear in a row, which keeps
// every insertion fix-up to three local cases.
package rbtree

import (
	"go-trees/pkg/treemap"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// New returns an empty tree.
func New[K constraints.Ordered, V any]() *RBTree[K, V] {
	return &RBTree[K, V]{}
}

// RBTree is a left-leaning red-black tree. Each instance exclusively owns
// its nodes; not safe for concurrent use.
type RBTree[K constraints.Ordered, V any] struct {
	root *node[K, V]
}

var _ treemap.TreeTraversal[int, any] = (*RBTree[int, any])(nil)

// Size returns the number of keys stored. O(1), maintained per node.
func (t *RBTree[K, V]) Size() int {
	return t.root.count()
}

// IsEmpty reports whether the tree holds no keys.
func (t *RBTree[K, V]) IsEmpty() bool {
	return t.Size() == 0
}

// Height returns the number of nodes on the longest root-to-leaf path,
// counting both red and black links.
func (t *RBTree[K, V]) Height() int {
	return t.root.height()
}

// Contains reports whether key is present.
func (t *RBTree[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Get returns the value bound to key, or false when absent. Search
// ignores colors entirely.
func (t *RBTree[K, V]) Get(key K) (V, bool) {
	for n := t.root; n != nil; {
		switch {
		case key < n.key:
			n = n.left
		case key > n.key:
			n = n.right
		default:
			return n.val, true
		}
	}

	var zero V
	return zero, false
}

// Put inserts key with val, or overwrites the existing binding, then
// restores the red-black invariants on the way back up the insertion
// path. The root is forced black after every put.
func (t *RBTree[K, V]) Put(key K, val V) {
	t.root = t.root.put(key, val)
	t.root.color = black
}

// Min returns the leftmost key, false on an empty tree.
func (t *RBTree[K, V]) Min() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}

	n := t.root
	for n.left != nil {
		n = n.left
	}
	return n.key, true
}

// Max returns the rightmost key, false on an empty tree.
func (t *RBTree[K, V]) Max() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}

	n := t.root
	for n.right != nil {
		n = n.right
	}
	return n.key, true
}

// Delete is not implemented; it always fails with treemap.ErrUnsupported
// and leaves the tree untouched. Red-black deletion needs the full
// move-red-left/move-red-right machinery and is a known gap.
func (t *RBTree[K, V]) Delete(key K) error {
	return errors.Wrap(treemap.ErrUnsupported, "rbtree: delete")
}

// PreOrder returns a lazy iterator emitting each node before its subtrees.
func (t *RBTree[K, V]) PreOrder() treemap.Iterator[K, V] {
	return treemap.NewPreOrder[K, V](t.rootNode())
}

// InOrder returns a lazy iterator yielding entries in strictly increasing
// key order.
func (t *RBTree[K, V]) InOrder() treemap.Iterator[K, V] {
	return treemap.NewInOrder[K, V](t.rootNode())
}

// PostOrder returns a lazy iterator emitting each node after its subtrees.
func (t *RBTree[K, V]) PostOrder() treemap.Iterator[K, V] {
	return treemap.NewPostOrder[K, V](t.rootNode())
}

// LevelOrder returns a lazy breadth-first iterator.
func (t *RBTree[K, V]) LevelOrder() treemap.Iterator[K, V] {
	return treemap.NewLevelOrder[K, V](t.rootNode())
}

func (t *RBTree[K, V]) rootNode() treemap.BinaryNode[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root
}
