// Copyright 2023 Peter Hebert. Licensed under the MIT license.

package trie

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/loudslib/louds"
	"github.com/loudslib/louds/internal/bitset"
)

// Louds is a frozen, read-only set of keys over alphabet T: a
// [github.com/loudslib/louds.Louds] tree plus a parallel array of edge
// labels and a terminal bitmap — together, a LOUDS-trie. Build one with
// [Freeze].
type Louds[T cmp.Ordered] struct {
	tree     *louds.Louds
	labels   []T // labels[s-1:e] are node i's child labels, for (s,e) = tree.RangeChildren(i)
	terminal bitset.BitSet
}

// Freeze builds a Louds from v's current contents. v is not modified and
// can go on being used (or frozen again) independently of the result.
//
// Nodes are numbered in the same breadth-first order in both v and the
// result: Freeze pushes v's nodes to a [github.com/loudslib/louds.Louds]
// builder in [Vec.BFS] order, the same order that builder assigns node ids
// in, so a frozen node's id can be used directly to index labels and
// terminal.
func Freeze[T cmp.Ordered](v *Vec[T]) (*Louds[T], error) {
	tree := louds.New()
	var labels []T
	var terminal bitset.BitSet

	i := uint(0)
	for n := range v.BFS() {
		for _, e := range n.Children() {
			tree.PushBit(true)
			labels = append(labels, e.Label)
		}
		tree.PushBit(false)
		if n.Terminal() {
			terminal.Set(i)
		}
		i++
	}

	if err := tree.Freeze(); err != nil {
		return nil, fmt.Errorf("trie: freezing node shape: %w", err)
	}
	return &Louds[T]{tree: tree, labels: labels, terminal: terminal}, nil
}

// Has reports whether key is a member of the trie, in O(len(key)·log b)
// time where b bounds a node's branching factor: one rank/select-backed
// child-range lookup per symbol, plus one binary search over that range's
// labels. This is the generalized, LOUDS-backed equivalent of the Lookup in
// github.com/peterheb/gotoken's internal/serializedTrie.go.
func (l *Louds[T]) Has(key []T) bool {
	i := 0
	for _, c := range key {
		s, e, ok := l.tree.RangeChildren(i)
		if !ok {
			return false
		}
		siblingLabels := l.labels[s-1 : e]
		pos, found := slices.BinarySearchFunc(siblingLabels, c, cmp.Compare)
		if !found {
			return false
		}
		i = s + pos
	}
	return l.terminal.Test(uint(i))
}

// NumNodes returns the number of nodes in the trie, including the root.
func (l *Louds[T]) NumNodes() int {
	return l.tree.NumNodes()
}
