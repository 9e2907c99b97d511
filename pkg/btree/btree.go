// Package btree implements an in-memory B-tree of fixed order M: a
// multi-way balanced search tree where every node holds up to M-1 sorted
// entries, every leaf sits at the same depth, and height is bounded by
// O(log_M n). Overfull nodes split at the median, promoting it to the
// parent; a root split is the only way the tree grows taller.
//
// The traversal capability is intentionally not implemented here: B-tree
// nodes hold multiple entries, so binary traversal semantics do not
// apply.
package btree

import (
	"go-trees/pkg/treemap"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Options configures a B-tree at construction time.
type Options struct {
	// Degree is the tree order M: the maximum number of children per
	// internal node. Nodes hold at most Degree-1 entries. Must be >= 3.
	Degree int
}

var defaultOptions = Options{Degree: 8}

// New returns an empty tree of the configured order. If nil options are
// provided, defaultOptions will be used. Construction misuse fails here,
// not on first insertion.
func New[K constraints.Ordered, V any](opts *Options) (*BTree[K, V], error) {
	if opts == nil {
		opts = &defaultOptions
	}
	if opts.Degree < 3 {
		return nil, errors.Wrapf(
			treemap.ErrInvalidDegree,
			"btree: order must be at least 3, got %d", opts.Degree,
		)
	}

	return &BTree[K, V]{degree: opts.Degree}, nil
}

// BTree is a fixed-order in-memory B-tree. Each instance exclusively owns
// its nodes; not safe for concurrent use.
type BTree[K constraints.Ordered, V any] struct {
	root   *node[K, V]
	degree int
	size   int
	height int
}

var _ treemap.Map[int, any] = (*BTree[int, any])(nil)

// Size returns the number of keys stored. O(1), maintained counter.
func (t *BTree[K, V]) Size() int {
	return t.size
}

// IsEmpty reports whether the tree holds no keys.
func (t *BTree[K, V]) IsEmpty() bool {
	return t.size == 0
}

// Height returns the root-to-leaf depth in nodes. 0 when empty. Every
// leaf sits at this depth; the counter moves only on root splits.
func (t *BTree[K, V]) Height() int {
	return t.height
}

// Contains reports whether key is present.
func (t *BTree[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Get returns the value bound to key, or false when absent. Descends
// with an in-node binary search at every level.
func (t *BTree[K, V]) Get(key K) (V, bool) {
	for n := t.root; n != nil; {
		idx, found := n.search(key)
		if found {
			return n.entries[idx].val, true
		}
		if n.isLeaf() {
			break
		}
		n = n.children[idx]
	}

	var zero V
	return zero, false
}

// Put inserts key with val, or overwrites the existing binding. The new
// entry lands in the unique leaf whose range contains the key; overfull
// nodes are split on the way back up, and a root split adds one level.
func (t *BTree[K, V]) Put(key K, val V) {
	if t.root == nil {
		t.root = &node[K, V]{entries: []entry[K, V]{{key: key, val: val}}}
		t.size = 1
		t.height = 1
		return
	}

	if t.root.put(key, val, t.degree) {
		t.size++
	}

	if t.root.overfull(t.degree) {
		newRoot := &node[K, V]{children: []*node[K, V]{t.root}}
		newRoot.splitChild(0)
		t.root = newRoot
		t.height++
	}
}

// Min returns the first entry of the leftmost leaf, false when empty.
func (t *BTree[K, V]) Min() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}

	n := t.root
	for !n.isLeaf() {
		n = n.children[0]
	}
	return n.entries[0].key, true
}

// Max returns the last entry of the rightmost leaf, false when empty.
func (t *BTree[K, V]) Max() (K, bool) {
	if t.root == nil {
		var zero K
		return zero, false
	}

	n := t.root
	for !n.isLeaf() {
		n = n.children[len(n.children)-1]
	}
	return n.entries[len(n.entries)-1].key, true
}

// Delete is not implemented; it always fails with treemap.ErrUnsupported
// and leaves the tree untouched. Underflow handling (merge/borrow) is a
// known gap.
func (t *BTree[K, V]) Delete(key K) error {
	return errors.Wrap(treemap.ErrUnsupported, "btree: delete")
}
