// Package bst implements an unbalanced binary search tree satisfying the
// ordered-map and traversal contracts. Keys arriving in sorted order
// degenerate the tree into a chain; use the rbtree engine when a height
// guarantee matters.
package bst

import (
	"go-trees/pkg/treemap"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// New returns an empty tree.
func New[K constraints.Ordered, V any]() *BST[K, V] {
	return &BST[K, V]{}
}

// BST is an unbalanced binary search tree. Each instance exclusively owns
// its nodes; not safe for concurrent use.
type BST[K constraints.Ordered, V any] struct {
	root *node[K, V]
}

var _ treemap.TreeTraversal[int, any] = (*BST[int, any])(nil)

// Size returns the number of keys stored. O(1), maintained per node.
func (t *BST[K, V]) Size() int {
	return t.root.count()
}

// IsEmpty reports whether the tree holds no keys.
func (t *BST[K, V]) IsEmpty() bool {
	return t.Size() == 0
}

// Height returns the number of nodes on the longest root-to-leaf path.
// Worst case equals Size when keys were inserted in sorted order.
func (t *BST[K, V]) Height() int {
	return t.root.height()
}

// Contains reports whether key is present.
func (t *BST[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Get returns the value bound to key, or false when absent.
func (t *BST[K, V]) Get(key K) (V, bool) {
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

// Put inserts key with val, or overwrites the existing binding. Subtree
// sizes are recomputed on the way back up the insertion path.
func (t *BST[K, V]) Put(key K, val V) {
	t.root = t.root.put(key, val)
}

// Min returns the leftmost key, false on an empty tree.
func (t *BST[K, V]) Min() (K, bool) {
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
func (t *BST[K, V]) Max() (K, bool) {
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
// and leaves the tree untouched.
func (t *BST[K, V]) Delete(key K) error {
	return errors.Wrap(treemap.ErrUnsupported, "bst: delete")
}

// Invert mirrors the tree in place by swapping every node's children.
// Key order is no longer a search-tree order afterwards; traversals still
// work on the mirrored shape.
func (t *BST[K, V]) Invert() {
	t.root.invert()
}

// PreOrder returns a lazy iterator emitting each node before its subtrees.
func (t *BST[K, V]) PreOrder() treemap.Iterator[K, V] {
	return treemap.NewPreOrder[K, V](t.rootNode())
}

// InOrder returns a lazy iterator yielding entries in strictly increasing
// key order.
func (t *BST[K, V]) InOrder() treemap.Iterator[K, V] {
	return treemap.NewInOrder[K, V](t.rootNode())
}

// PostOrder returns a lazy iterator emitting each node after its subtrees.
func (t *BST[K, V]) PostOrder() treemap.Iterator[K, V] {
	return treemap.NewPostOrder[K, V](t.rootNode())
}

// LevelOrder returns a lazy breadth-first iterator.
func (t *BST[K, V]) LevelOrder() treemap.Iterator[K, V] {
	return treemap.NewLevelOrder[K, V](t.rootNode())
}

func (t *BST[K, V]) rootNode() treemap.BinaryNode[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root
}
