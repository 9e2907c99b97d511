package rbtree

import (
	"go-trees/pkg/treemap"
	"go-trees/util/helpers"

	"golang.org/x/exp/constraints"
)

type color uint8

const (
	red color = iota
	black
)

type node[K constraints.Ordered, V any] struct {
	key   K
	val   V
	color color
	size  int
	left  *node[K, V]
	right *node[K, V]
}

// isRed treats nil links as black.
func (n *node[K, V]) isRed() bool {
	return n != nil && n.color == red
}

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

// put descends as in a plain BST, coloring the new leaf red, then applies
// the left-leaning fix-up cases in order on the way back up:
//
//	1. red right child, non-red left child  -> rotate left
//	2. red left child with red left-left    -> rotate right
//	3. both children red                    -> flip colors
//
// Case 3 may push a red link to the parent, cascading the fix-up one
// level up.
func (n *node[K, V]) put(key K, val V) *node[K, V] {
	if n == nil {
		return &node[K, V]{key: key, val: val, color: red, size: 1}
	}

	switch {
	case key < n.key:
		n.left = n.left.put(key, val)
	case key > n.key:
		n.right = n.right.put(key, val)
	default:
		n.val = val
	}

	if n.right.isRed() && !n.left.isRed() {
		n = n.rotateLeft()
	}
	if n.left.isRed() && n.left.left.isRed() {
		n = n.rotateRight()
	}
	if n.left.isRed() && n.right.isRed() {
		n.flipColors()
	}

	n.size = 1 + n.left.count() + n.right.count()
	return n
}

// rotateLeft re-parents a red right link to lean left. Rotating a black
// link would change black heights, so that is a fatal internal bug.
func (n *node[K, V]) rotateLeft() *node[K, V] {
	x := n.right
	if !x.isRed() {
		panic("rbtree: rotating a black right link")
	}

	n.right = x.left
	x.left = n
	x.color = n.color
	n.color = red
	x.size = n.size
	n.size = 1 + n.left.count() + n.right.count()
	return x
}

// rotateRight breaks up two consecutive red left links.
func (n *node[K, V]) rotateRight() *node[K, V] {
	x := n.left
	if !x.isRed() {
		panic("rbtree: rotating a black left link")
	}

	n.left = x.right
	x.right = n
	x.color = n.color
	n.color = red
	x.size = n.size
	n.size = 1 + n.left.count() + n.right.count()
	return x
}

// flipColors splits a temporary 4-node, passing redness to the parent.
func (n *node[K, V]) flipColors() {
	n.color = red
	n.left.color = black
	n.right.color = black
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
