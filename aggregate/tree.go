// SPDX-License-Identifier: MIT

package aggregate

import (
	"strings"

	"github.com/katalvlaran/lvlabel/confusion"
	"github.com/katalvlaran/lvlabel/label"
)

// Tree is the compacted winner of a search: node structure and confusion
// matrices only, no cached vectors. It evaluates fresh data by calling the
// labeling functions through its leaves.
//
// A Tree is immutable and safe for concurrent Apply calls provided the labeling
// functions are.
type Tree[T any] struct {
	lfs   []label.LabelingFunction[T]
	nodes []Node // post-order: children precede parents
	root  int
}

// Apply returns label.OK or label.KO for data, never label.Abstain.
func (t *Tree[T]) Apply(data T) label.Label {
	if t.eval(t.root, data) {
		return label.OK
	}
	return label.KO
}

// eval walks the node at index i. Both children are evaluated: labeling
// functions are side-effect free, so Op.Eval stays the single evaluator.
func (t *Tree[T]) eval(i int, data T) bool {
	n := t.nodes[i]
	if n.Op == OpLeaf {
		return t.lfs[n.LF].Apply(data) == label.OK
	}
	return n.Op.Eval(t.eval(n.Left, data), t.eval(n.Right, data))
}

// Root returns the root node.
func (t *Tree[T]) Root() Node { return t.nodes[t.root] }

// Matrix returns the root's confusion matrix on the gold labels used to fit it.
func (t *Tree[T]) Matrix() confusion.Matrix { return t.Root().Matrix }

// MCC is shorthand for Matrix().MCC().
func (t *Tree[T]) MCC() float64 { return t.Matrix().MCC() }

// Size returns the number of distinct nodes (shared subtrees count once).
func (t *Tree[T]) Size() int { return len(t.nodes) }

// Nodes returns a copy of the nodes in post-order.
func (t *Tree[T]) Nodes() []Node {
	out := make([]Node, len(t.nodes))
	copy(out, t.nodes)
	return out
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Depth() int {
	// Post-order lets one forward pass compute every depth from its children.
	depth := make([]int, len(t.nodes))
	for i, n := range t.nodes {
		if n.Op == OpLeaf {
			depth[i] = 1
			continue
		}
		depth[i] = 1 + max(depth[n.Left], depth[n.Right])
	}
	return depth[t.root]
}

// LabelingFunctions returns the names of the labeling functions the tree
// consults, in first-seen post-order, without duplicates.
func (t *Tree[T]) LabelingFunctions() []string {
	var (
		seen = make(map[int]bool)
		out  []string
	)
	for _, n := range t.nodes {
		if n.Op == OpLeaf && !seen[n.LF] {
			seen[n.LF] = true
			out = append(out, t.lfs[n.LF].Name())
		}
	}
	return out
}

// String renders the tree, e.g. AND_NOT(OR(a, b), c).
func (t *Tree[T]) String() string {
	var sb strings.Builder
	t.write(&sb, t.root)
	return sb.String()
}

func (t *Tree[T]) write(sb *strings.Builder, i int) {
	n := t.nodes[i]
	if n.Op == OpLeaf {
		sb.WriteString(t.lfs[n.LF].Name())
		return
	}
	sb.WriteString(n.Op.String())
	sb.WriteByte('(')
	t.write(sb, n.Left)
	sb.WriteString(", ")
	t.write(sb, n.Right)
	sb.WriteByte(')')
}
