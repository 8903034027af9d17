// Copyright 2023 Peter Hebert. Licensed under the MIT license.

// Package trie implements a LOUDS-backed trie: an ordered set of keys over
// an arbitrary ordered alphabet T, built by inserting keys one at a time
// into a mutable [Vec] and then freezing it into a read-only, rank/select
// indexed [Louds].
package trie

import (
	"cmp"
	"iter"
	"slices"

	"github.com/oleiade/lane/v2"
)

// Edge is one outgoing edge of a [Node]: a label and the node it leads to.
type Edge[T cmp.Ordered] struct {
	Label T
	Child *Node[T]
}

// Node is a node of a mutable trie. Children are kept sorted ascending by
// label, mirroring the byte-sorted children of the TrieNode in
// github.com/peterheb/gotoken's gen/trie.go, generalized from byte to any
// ordered alphabet.
type Node[T cmp.Ordered] struct {
	children []Edge[T]
	terminal bool
}

// Children returns node's outgoing edges, sorted ascending by label.
func (n *Node[T]) Children() []Edge[T] { return n.children }

// Terminal reports whether a key ends at node (as opposed to merely passing
// through it on the way to a longer key).
func (n *Node[T]) Terminal() bool { return n.terminal }

// Vec is a mutable trie: keys are inserted one at a time, in any order, and
// the result can be queried directly or frozen into a [Louds] for compact,
// read-only storage. The zero value is an empty trie, ready to use.
type Vec[T cmp.Ordered] struct {
	root Node[T]
}

// Insert adds key to the trie. Inserting the same key more than once leaves
// the trie structurally unchanged.
func (v *Vec[T]) Insert(key []T) {
	cur := &v.root
	for _, c := range key {
		pos, found := slices.BinarySearchFunc(cur.children, c, func(e Edge[T], c T) int {
			return cmp.Compare(e.Label, c)
		})
		if !found {
			cur.children = slices.Insert(cur.children, pos, Edge[T]{Label: c, Child: &Node[T]{}})
		}
		cur = cur.children[pos].Child
	}
	cur.terminal = true
}

// Has reports whether key was inserted into the trie. It walks the mutable
// representation directly, without going through a frozen [Louds].
func (v *Vec[T]) Has(key []T) bool {
	cur := &v.root
	for _, c := range key {
		pos, found := slices.BinarySearchFunc(cur.children, c, func(e Edge[T], c T) int {
			return cmp.Compare(e.Label, c)
		})
		if !found {
			return false
		}
		cur = cur.children[pos].Child
	}
	return cur.terminal
}

// BFS returns an iterator over every node of the trie in breadth-first
// order, starting at the (unlabeled) root. [Freeze] relies on this order
// matching the node numbering a [github.com/loudslib/louds.Louds] assigns
// as its bits are pushed in the same order.
func (v *Vec[T]) BFS() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		q := lane.NewQueue[*Node[T]]()
		q.Enqueue(&v.root)
		for !q.Empty() {
			n, ok := q.Dequeue()
			if !ok {
				return
			}
			if !yield(n) {
				return
			}
			for _, e := range n.children {
				q.Enqueue(e.Child)
			}
		}
	}
}
