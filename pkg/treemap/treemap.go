// Package treemap defines the contracts shared by the tree engines: the
// ordered-map capability every engine satisfies, the traversal capability
// of the binary engines, and the entry type flowing between them.
package treemap

import "golang.org/x/exp/constraints"

// Entry is a single key-value pair. Traversal iterators emit entries by
// value, so an entry obtained from an iterator never aliases tree state.
type Entry[K constraints.Ordered, V any] struct {
	Key K
	Val V
}

// Map is the uniform ordered-map contract implemented by all engines.
// Engines are not safe for concurrent use; callers needing shared access
// must serialize externally.
type Map[K constraints.Ordered, V any] interface {
	// Size returns the number of distinct keys stored.
	Size() int

	// IsEmpty reports whether the map holds no keys.
	IsEmpty() bool

	// Height returns the length of the longest root-to-leaf path,
	// counting nodes. 0 for an empty tree.
	Height() int

	// Contains reports whether key is present.
	Contains(key K) bool

	// Get returns the value bound to key. The second result is false
	// when the key is absent. Get never mutates the tree.
	Get(key K) (V, bool)

	// Put inserts key with val, or overwrites the value bound to an
	// existing key. Size grows only on genuine insertion.
	Put(key K, val V)

	// Min returns the smallest key, false when the map is empty.
	Min() (K, bool)

	// Max returns the largest key, false when the map is empty.
	Max() (K, bool)

	// Delete is a known gap across all engines: it always returns an
	// error satisfying errors.Is(err, ErrUnsupported) and leaves the
	// tree untouched.
	Delete(key K) error
}

// TreeTraversal is the traversal capability of the binary engines. Each
// method returns a fresh lazy iterator over the whole tree. The B-tree
// engine does not satisfy this interface: its nodes hold multiple entries,
// so binary traversal semantics do not carry over.
type TreeTraversal[K constraints.Ordered, V any] interface {
	Map[K, V]

	// PreOrder emits each node before its subtrees.
	PreOrder() Iterator[K, V]

	// InOrder emits the left subtree, the node, then the right subtree.
	// On a search tree this yields entries in strictly increasing key
	// order.
	InOrder() Iterator[K, V]

	// PostOrder emits each node after its subtrees.
	PostOrder() Iterator[K, V]

	// LevelOrder emits nodes breadth-first, left to right within a level.
	LevelOrder() Iterator[K, V]
}

// BinaryNode is the minimal node view the traversal iterators walk. Left
// and Right must return a nil interface value for an absent child, never
// a typed nil wrapped in a non-nil interface.
type BinaryNode[K constraints.Ordered, V any] interface {
	Item() Entry[K, V]
	Left() BinaryNode[K, V]
	Right() BinaryNode[K, V]
}
