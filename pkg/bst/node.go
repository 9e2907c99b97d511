package bst

import (
	"go-trees/pkg/treemap"
	"go-trees/util/helpers"

	"golang.org/x/exp/constraints"
)

type node[K constraints.Ordered, V any] struct {
	key   K
	val   V
	size  int
	left  *node[K, V]
	right *node[K, V]
}

// count is nil-safe so size bookkeeping needs no branching at call sites.
func (n *node[K, V]) count() int {
	if n == nil {
		return 0
	}
	return n.size
}

func (n *node[K, V]) height() int {
	if n == nil {
		return 0
	}
	return 1 + helpers.Max(n.left.height(), n.right.height())
}

func (n *node[K, V]) put(key K, val V) *node[K, V] {
	if n == nil {
		return &node[K, V]{key: key, val: val, size: 1}
	}

	switch {
	case key < n.key:
		n.left = n.left.put(key, val)
	case key > n.key:
		n.right = n.right.put(key, val)
	default:
		n.val = val
	}

	n.size = 1 + n.left.count() + n.right.count()
	return n
}

func (n *node[K, V]) invert() {
	if n == nil {
		return
	}
	n.left.invert()
	n.right.invert()
	n.left, n.right = n.right, n.left
}

// treemap.BinaryNode implementation for the traversal iterators.

func (n *node[K, V]) Item() treemap.Entry[K, V] {
	return treemap.Entry[K, V]{Key: n.key, Val: n.val}
}

func (n *node[K, V]) Left() treemap.BinaryNode[K, V] {
	if n.left == nil {
		return nil
	}
	return n.left
}

func (n *node[K, V]) Right() treemap.BinaryNode[K, V] {
	if n.right == nil {
		return nil
	}
	return n.right
}
