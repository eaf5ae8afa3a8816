// Package rbtree provides the persistent ordered container backing the
// tagged map and tagged set. It is a red-black tree whose update operations
// never mutate existing nodes: Insert and Remove copy the path from the root
// to the affected node and share every untouched subtree with the previous
// version. Old versions therefore remain valid forever, which is what lets
// the containers built on top hand out new values while leaving their inputs
// untouched, and share any version across goroutines without locking.
//
// Red-black trees enforce the following properties to maintain balance:
//  1. Every node is either red or black
//  2. The root is always black
//  3. All leaves (nil nodes) are considered black
//  4. Red nodes cannot have red children (no two consecutive red nodes on any path)
//  5. Every path from root to leaf contains the same number of black nodes
//
// These properties keep the tree approximately balanced, so Insert, Remove,
// and Get all run in O(log n) time and Insert/Remove allocate O(log n) nodes.
// Balancing uses the functional formulation of the algorithms: the insertion
// rebalance is Okasaki's, the deletion rebalance is Kahrs'.
package rbtree

import (
	"iter"

	"github.com/amp-labs/tagged/sortable"
	"github.com/amp-labs/tagged/zero"
)

// color represents the color of a red-black tree node.
type color bool

const (
	// black and red are the two node colors in a red-black tree.
	// Black is represented as true for a default zero-value of black.
	black, red color = true, false
)

// String returns a human-readable representation of the node color.
func (c color) String() string {
	switch c {
	case true:
		return "Black"
	default:
		return "Red"
	}
}

// node is a single immutable node of the tree. Nodes are never modified
// after construction; rebalancing builds replacements instead.
type node[K sortable.Sortable[K], V any] struct {
	key   K
	value V
	color color
	left  *node[K, V]
	right *node[K, V]
}

func newNode[K sortable.Sortable[K], V any](
	c color, key K, value V, left, right *node[K, V],
) *node[K, V] {
	return &node[K, V]{key: key, value: value, color: c, left: left, right: right}
}

// recolor returns this node with the given color, reusing the node itself
// when the color already matches.
func (n *node[K, V]) recolor(c color) *node[K, V] {
	if n.color == c {
		return n
	}

	return newNode(c, n.key, n.value, n.left, n.right)
}

// isRed returns true if the node is red. Nil nodes are considered black
// by red-black tree convention.
func isRed[K sortable.Sortable[K], V any](n *node[K, V]) bool {
	if n == nil {
		return false
	}

	return n.color == red
}

// isBlackNode returns true if the node exists and is black.
// Unlike isRed's convention, nil does not count here: the deletion
// rebalance needs to distinguish a black node from an empty subtree.
func isBlackNode[K sortable.Sortable[K], V any](n *node[K, V]) bool {
	if n == nil {
		return false
	}

	return n.color == black
}

// Tree is a persistent ordered map from K to V. The zero value is the empty
// tree. Tree is a small value type; copying it copies two words and shares
// the underlying nodes, which is safe because nodes are immutable.
type Tree[K sortable.Sortable[K], V any] struct {
	root *node[K, V]
	size int
}

// Empty returns an empty tree.
func Empty[K sortable.Sortable[K], V any]() Tree[K, V] {
	return Tree[K, V]{}
}

// Len returns the number of entries in the tree. O(1).
func (t Tree[K, V]) Len() int {
	return t.size
}

// IsEmpty returns true if the tree contains no entries.
func (t Tree[K, V]) IsEmpty() bool {
	return t.root == nil
}

// Get retrieves the value associated with the given key.
// Returns (value, true) if found, (zero, false) otherwise. O(log n).
func (t Tree[K, V]) Get(key K) (V, bool) {
	for n := t.root; n != nil; {
		switch {
		case key.Equals(n.key):
			return n.value, true
		case key.LessThan(n.key):
			n = n.left
		default:
			n = n.right
		}
	}

	return zero.Value[V](), false
}

// Member returns true if the key exists in the tree. O(log n).
func (t Tree[K, V]) Member(key K) bool {
	_, found := t.Get(key)

	return found
}

// Insert returns a tree with the key bound to the value. If the key already
// exists its value is replaced (the stored key is kept). The receiver is
// unchanged. O(log n) time and allocation.
func (t Tree[K, V]) Insert(key K, value V) Tree[K, V] {
	root, added := insert(t.root, key, value)

	size := t.size
	if added {
		size++
	}

	return Tree[K, V]{root: root.recolor(black), size: size}
}

// insert rebuilds the path to the insertion point. At black nodes the rebuilt
// node goes through balance, which resolves any red-red violation introduced
// below; at red nodes the violation is left for the black ancestor to fix.
// Returns the new subtree and whether a new key was added.
func insert[K sortable.Sortable[K], V any](
	n *node[K, V], key K, value V,
) (*node[K, V], bool) {
	if n == nil {
		return newNode(red, key, value, nil, nil), true
	}

	switch {
	case key.Equals(n.key):
		return newNode(n.color, n.key, value, n.left, n.right), false
	case key.LessThan(n.key):
		left, added := insert(n.left, key, value)
		if n.color == black {
			return balance(left, n.key, n.value, n.right), added
		}

		return newNode(red, n.key, n.value, left, n.right), added
	default:
		right, added := insert(n.right, key, value)
		if n.color == black {
			return balance(n.left, n.key, n.value, right), added
		}

		return newNode(red, n.key, n.value, n.left, right), added
	}
}

// balance builds a black node with the given children, rotating and
// recoloring when a child carries a red-red violation. This is the single
// rebalancing primitive shared by insertion and deletion.
func balance[K sortable.Sortable[K], V any](
	left *node[K, V], key K, value V, right *node[K, V],
) *node[K, V] {
	switch {
	case isRed(left) && isRed(right):
		return newNode(red, key, value, left.recolor(black), right.recolor(black))
	case isRed(left) && isRed(left.left):
		return newNode(red, left.key, left.value,
			left.left.recolor(black),
			newNode(black, key, value, left.right, right))
	case isRed(left) && isRed(left.right):
		pivot := left.right

		return newNode(red, pivot.key, pivot.value,
			newNode(black, left.key, left.value, left.left, pivot.left),
			newNode(black, key, value, pivot.right, right))
	case isRed(right) && isRed(right.right):
		return newNode(red, right.key, right.value,
			newNode(black, key, value, left, right.left),
			right.right.recolor(black))
	case isRed(right) && isRed(right.left):
		pivot := right.left

		return newNode(red, pivot.key, pivot.value,
			newNode(black, key, value, left, pivot.left),
			newNode(black, right.key, right.value, pivot.right, right.right))
	default:
		return newNode(black, key, value, left, right)
	}
}

// Remove returns a tree without the given key. If the key is absent the
// receiver is returned as-is. O(log n) time and allocation.
func (t Tree[K, V]) Remove(key K) Tree[K, V] {
	if !t.Member(key) {
		return t
	}

	root := del(t.root, key)
	if root != nil {
		root = root.recolor(black)
	}

	return Tree[K, V]{root: root, size: t.size - 1}
}

// del removes the key from the subtree. The key is known to be present, so
// every recursive step descends into the subtree that contains it. When the
// removed path loses a black node, balLeft/balRight restore the black-height
// invariant on the way back up.
func del[K sortable.Sortable[K], V any](n *node[K, V], key K) *node[K, V] {
	switch {
	case key.Equals(n.key):
		return join(n.left, n.right)
	case key.LessThan(n.key):
		left := del(n.left, key)
		if isBlackNode(n.left) {
			return balLeft(left, n.key, n.value, n.right)
		}

		return newNode(red, n.key, n.value, left, n.right)
	default:
		right := del(n.right, key)
		if isBlackNode(n.right) {
			return balRight(n.left, n.key, n.value, right)
		}

		return newNode(red, n.key, n.value, n.left, right)
	}
}

// balLeft rebuilds a node whose left subtree is one black level short,
// borrowing from the right sibling to even the heights out.
func balLeft[K sortable.Sortable[K], V any](
	left *node[K, V], key K, value V, right *node[K, V],
) *node[K, V] {
	switch {
	case isRed(left):
		return newNode(red, key, value, left.recolor(black), right)
	case isBlackNode(right):
		return balance(left, key, value, right.recolor(red))
	default:
		// right is red with a black left child
		pivot := right.left

		return newNode(red, pivot.key, pivot.value,
			newNode(black, key, value, left, pivot.left),
			balance(pivot.right, right.key, right.value, right.right.recolor(red)))
	}
}

// balRight is the mirror image of balLeft: the right subtree is one black
// level short.
func balRight[K sortable.Sortable[K], V any](
	left *node[K, V], key K, value V, right *node[K, V],
) *node[K, V] {
	switch {
	case isRed(right):
		return newNode(red, key, value, left, right.recolor(black))
	case isBlackNode(left):
		return balance(left.recolor(red), key, value, right)
	default:
		// left is red with a black right child
		pivot := left.right

		return newNode(red, pivot.key, pivot.value,
			balance(left.left.recolor(red), left.key, left.value, pivot.left),
			newNode(black, key, value, pivot.right, right))
	}
}

// join concatenates two subtrees whose keys are already ordered
// (every key in left precedes every key in right) and whose black heights
// are equal. Used to splice out a deleted node.
func join[K sortable.Sortable[K], V any](left, right *node[K, V]) *node[K, V] {
	switch {
	case left == nil:
		return right
	case right == nil:
		return left
	case isRed(left) && isRed(right):
		middle := join(left.right, right.left)
		if isRed(middle) {
			return newNode(red, middle.key, middle.value,
				newNode(red, left.key, left.value, left.left, middle.left),
				newNode(red, right.key, right.value, middle.right, right.right))
		}

		return newNode(red, left.key, left.value, left.left,
			newNode(red, right.key, right.value, middle, right.right))
	case isBlackNode(left) && isBlackNode(right):
		middle := join(left.right, right.left)
		if isRed(middle) {
			return newNode(red, middle.key, middle.value,
				newNode(black, left.key, left.value, left.left, middle.left),
				newNode(black, right.key, right.value, middle.right, right.right))
		}

		return balLeft(left.left, left.key, left.value,
			newNode(black, right.key, right.value, middle, right.right))
	case isRed(right):
		return newNode(red, right.key, right.value, join(left, right.left), right.right)
	default:
		return newNode(red, left.key, left.value, left.left, join(left.right, right))
	}
}

// Seq returns an iterator over the tree's entries in ascending key order.
// This enables range-based iteration: for k, v := range t.Seq() { ... }.
func (t Tree[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		seqAsc(t.root, yield)
	}
}

// SeqDesc returns an iterator over the tree's entries in descending key order.
func (t Tree[K, V]) SeqDesc() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		seqDesc(t.root, yield)
	}
}

// seqAsc traverses the subtree in-order, yielding each entry.
// Traversal stops early if yield returns false.
func seqAsc[K sortable.Sortable[K], V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	return seqAsc(n.left, yield) && yield(n.key, n.value) && seqAsc(n.right, yield)
}

// seqDesc traverses the subtree in reverse order, yielding each entry.
func seqDesc[K sortable.Sortable[K], V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	return seqDesc(n.right, yield) && yield(n.key, n.value) && seqDesc(n.left, yield)
}
