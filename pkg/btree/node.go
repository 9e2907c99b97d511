package btree

import "golang.org/x/exp/constraints"

type entry[K constraints.Ordered, V any] struct {
	key K
	val V
}

// node is an internal or leaf node. Leaves have no children slice;
// internal nodes keep len(children) == len(entries)+1.
type node[K constraints.Ordered, V any] struct {
	entries  []entry[K, V]
	children []*node[K, V]
}

func (n *node[K, V]) isLeaf() bool {
	return len(n.children) == 0
}

// overfull reports whether the node exceeded its M-1 entry capacity and
// must be split by the caller.
func (n *node[K, V]) overfull(degree int) bool {
	return len(n.entries) >= degree
}

// search performs a binary search in the node entries for the given key
// and returns its index when found, otherwise the index of the child to
// descend into.
func (n *node[K, V]) search(key K) (idx int, found bool) {
	left, right := 0, len(n.entries)-1

	for left <= right {
		mid := (left + right) / 2

		switch {
		case key > n.entries[mid].key:
			left = mid + 1
		case key < n.entries[mid].key:
			right = mid - 1
		default:
			return mid, true
		}
	}

	return left, false
}

// put inserts into the subtree rooted at n and reports whether a new key
// was added. Overfull children are split on the unwind; the caller is
// responsible for splitting n itself.
func (n *node[K, V]) put(key K, val V, degree int) bool {
	idx, found := n.search(key)
	if found {
		n.entries[idx].val = val
		return false
	}

	if n.isLeaf() {
		n.insertEntry(idx, entry[K, V]{key: key, val: val})
		return true
	}

	added := n.children[idx].put(key, val, degree)
	if n.children[idx].overfull(degree) {
		n.splitChild(idx)
	}
	return added
}

// splitChild splits the overfull child at idx into two halves, promoting
// its median entry into n and attaching the upper half as a new child
// right of idx.
func (n *node[K, V]) splitChild(idx int) {
	child := n.children[idx]
	if len(child.entries) < 3 {
		panic("btree: splitting a node too small to have a median")
	}

	mid := len(child.entries) / 2
	median := child.entries[mid]

	right := &node[K, V]{}
	right.entries = append(right.entries, child.entries[mid+1:]...)
	if !child.isLeaf() {
		right.children = append(right.children, child.children[mid+1:]...)
		child.children = child.children[:mid+1]
	}
	child.entries = child.entries[:mid]

	n.insertEntry(idx, median)
	n.insertChild(idx+1, right)
}

// insertEntry inserts the entry at the given index, shifting the tail.
func (n *node[K, V]) insertEntry(idx int, e entry[K, V]) {
	n.entries = append(n.entries, entry[K, V]{})
	copy(n.entries[idx+1:], n.entries[idx:])
	n.entries[idx] = e
}

// insertChild adds the given child at the appropriate location under the
// node.
func (n *node[K, V]) insertChild(idx int, child *node[K, V]) {
	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = child
}
