package treemap

import (
	"go-trees/pkg/queue"
	"go-trees/pkg/stack"

	"golang.org/x/exp/constraints"
)

// Iterator yields entries one at a time. Iterators are lazy and
// single-pass: once Next returns false the iterator stays exhausted, and
// another pass requires a new iterator from the engine. Mutating the tree
// while an iterator is live is undefined.
type Iterator[K constraints.Ordered, V any] interface {
	Next() (Entry[K, V], bool)
}

// Collect drains the iterator into a slice. Handy in tests and demos,
// though it defeats the laziness of the iterator.
func Collect[K constraints.Ordered, V any](it Iterator[K, V]) []Entry[K, V] {
	var out []Entry[K, V]
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		out = append(out, e)
	}
	return out
}

// NewPreOrder returns an iterator emitting each node before its subtrees.
// Auxiliary space is O(height).
func NewPreOrder[K constraints.Ordered, V any](root BinaryNode[K, V]) Iterator[K, V] {
	it := &preOrder[K, V]{s: stack.New[BinaryNode[K, V]](8)}
	if root != nil {
		it.s.Push(root)
	}
	return it
}

type preOrder[K constraints.Ordered, V any] struct {
	s stack.Stack[BinaryNode[K, V]]
}

func (it *preOrder[K, V]) Next() (Entry[K, V], bool) {
	n, ok := it.s.Pop()
	if !ok {
		var zero Entry[K, V]
		return zero, false
	}

	// right first so that left is emitted first
	if r := n.Right(); r != nil {
		it.s.Push(r)
	}
	if l := n.Left(); l != nil {
		it.s.Push(l)
	}
	return n.Item(), true
}

// NewInOrder returns an iterator emitting the left subtree, the node,
// then the right subtree. On a search tree the resulting key sequence is
// strictly increasing. Auxiliary space is O(height).
func NewInOrder[K constraints.Ordered, V any](root BinaryNode[K, V]) Iterator[K, V] {
	it := &inOrder[K, V]{s: stack.New[BinaryNode[K, V]](8)}
	it.pushLeftSpine(root)
	return it
}

type inOrder[K constraints.Ordered, V any] struct {
	s stack.Stack[BinaryNode[K, V]]
}

func (it *inOrder[K, V]) pushLeftSpine(n BinaryNode[K, V]) {
	for n != nil {
		it.s.Push(n)
		n = n.Left()
	}
}

func (it *inOrder[K, V]) Next() (Entry[K, V], bool) {
	n, ok := it.s.Pop()
	if !ok {
		var zero Entry[K, V]
		return zero, false
	}

	it.pushLeftSpine(n.Right())
	return n.Item(), true
}

// NewPostOrder returns an iterator emitting each node after its subtrees.
// Auxiliary space is O(height).
func NewPostOrder[K constraints.Ordered, V any](root BinaryNode[K, V]) Iterator[K, V] {
	it := &postOrder[K, V]{s: stack.New[postFrame[K, V]](8)}
	if root != nil {
		it.s.Push(postFrame[K, V]{node: root})
	}
	return it
}

// postFrame tracks whether a node's subtrees are already on the stack.
type postFrame[K constraints.Ordered, V any] struct {
	node     BinaryNode[K, V]
	expanded bool
}

type postOrder[K constraints.Ordered, V any] struct {
	s stack.Stack[postFrame[K, V]]
}

func (it *postOrder[K, V]) Next() (Entry[K, V], bool) {
	for {
		f, ok := it.s.Pop()
		if !ok {
			var zero Entry[K, V]
			return zero, false
		}

		if f.expanded {
			return f.node.Item(), true
		}

		it.s.Push(postFrame[K, V]{node: f.node, expanded: true})
		if r := f.node.Right(); r != nil {
			it.s.Push(postFrame[K, V]{node: r})
		}
		if l := f.node.Left(); l != nil {
			it.s.Push(postFrame[K, V]{node: l})
		}
	}
}

// NewLevelOrder returns an iterator emitting nodes breadth-first, left to
// right within each level. All nodes at depth d come out before any node
// at depth d+1. Auxiliary space is O(width of the widest level).
func NewLevelOrder[K constraints.Ordered, V any](root BinaryNode[K, V]) Iterator[K, V] {
	it := &levelOrder[K, V]{q: queue.New[BinaryNode[K, V]](8)}
	if root != nil {
		it.q.Push(root)
	}
	return it
}

type levelOrder[K constraints.Ordered, V any] struct {
	q queue.Queue[BinaryNode[K, V]]
}

func (it *levelOrder[K, V]) Next() (Entry[K, V], bool) {
	n, ok := it.q.Pop()
	if !ok {
		var zero Entry[K, V]
		return zero, false
	}

	if l := n.Left(); l != nil {
		it.q.Push(l)
	}
	if r := n.Right(); r != nil {
		it.q.Push(r)
	}
	return n.Item(), true
}
