// SPDX-License-Identifier: MIT

package aggregate

import "github.com/katalvlaran/lvlabel/confusion"

// noChild marks the missing children of a leaf.
const noChild = -1

// Node is one element of the combinator arena.
//
//   - Op == OpLeaf: LF indexes the labeling function; Left/Right are -1.
//   - Otherwise:    Left/Right index child nodes in the same arena; LF is -1.
//
// Matrix is the node's confusion matrix on the gold labels it was built from.
type Node struct {
	Op     Op
	LF     int
	Left   int
	Right  int
	Matrix confusion.Matrix
}

// Forest is an append-only arena of nodes shared by all generations of one search.
// Only candidates that survive ranking are appended.
type Forest struct {
	nodes []Node
}

// add appends n and returns its index.
func (f *Forest) add(n Node) int {
	f.nodes = append(f.nodes, n)
	return len(f.nodes) - 1
}

// Len returns the number of nodes in the arena.
func (f *Forest) Len() int { return len(f.nodes) }

// Node returns the node at index i.
func (f *Forest) Node(i int) (Node, error) {
	if i < 0 || i >= len(f.nodes) {
		return Node{}, ErrOutOfRange
	}
	return f.nodes[i], nil
}

// compact copies the subtree rooted at root into a fresh slice in post-order
// (children before parents) and returns it with the new root index. Shared
// subtrees, e.g. AND(a, a), are copied once.
//
// Complexity: O(size of the subtree).
func (f *Forest) compact(root int) ([]Node, int) {
	var (
		out   []Node
		remap = make(map[int]int)
		visit func(i int) int
	)
	visit = func(i int) int {
		if j, done := remap[i]; done {
			return j
		}
		n := f.nodes[i]
		if n.Op != OpLeaf {
			// Rewrite child references into the compacted index space.
			n.Left = visit(n.Left)
			n.Right = visit(n.Right)
		}
		out = append(out, n)
		remap[i] = len(out) - 1
		return len(out) - 1
	}
	newRoot := visit(root)
	return out, newRoot
}
