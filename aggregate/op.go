// SPDX-License-Identifier: MIT

package aggregate

// Op tags a node of the combinator tree.
type Op uint8

const (
	// OpLeaf wraps one labeling function.
	OpLeaf Op = iota
	// OpAnd is OK iff both children are OK.
	OpAnd
	// OpOr is OK iff either child is OK.
	OpOr
	// OpAndNot is OK iff the left child is OK and the right one is not.
	OpAndNot
)

// combinators lists the binary ops in enumeration (tie-break) order.
var combinators = [...]Op{OpAnd, OpOr, OpAndNot}

// String returns LEAF, AND, OR, AND_NOT.
func (o Op) String() string {
	switch o {
	case OpLeaf:
		return "LEAF"
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	case OpAndNot:
		return "AND_NOT"
	default:
		return "UNKNOWN"
	}
}

// IsCombinator reports whether o is AND, OR or AND_NOT.
func (o Op) IsCombinator() bool {
	return o == OpAnd || o == OpOr || o == OpAndNot
}

// Eval applies o to the children's decisions (true means OK).
// OpLeaf passes l through; unknown ops evaluate to false.
func (o Op) Eval(l, r bool) bool {
	switch o {
	case OpLeaf:
		return l
	case OpAnd:
		return l && r
	case OpOr:
		return l || r
	case OpAndNot:
		return l && !r
	default:
		return false
	}
}

// evalWord is Eval over 64 packed decisions at once.
// Callers only pass combinators; anything else is a programmer error.
func (o Op) evalWord(l, r uint64) uint64 {
	switch o {
	case OpAnd:
		return l & r
	case OpOr:
		return l | r
	case OpAndNot:
		return l &^ r
	default:
		panic("aggregate: evalWord on non-combinator " + o.String())
	}
}
