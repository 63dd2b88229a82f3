// SPDX-License-Identifier: MIT

// Package aggregate combines labeling functions into a single binary classifier:
// a tree of boolean combinators searched greedily to maximize the Matthews
// Correlation Coefficient (MCC) against gold labels.
//
// 🚀 Representation
//
//	Every predictor is a tagged node {LEAF, AND, OR, AND_NOT}:
//
//	  LEAF(lf)       OK iff lf votes OK (ABSTAIN and KO both map to KO)
//	  AND(a, b)      OK iff a and b are OK
//	  OR(a, b)       OK iff a or b is OK
//	  AND_NOT(a, b)  OK iff a is OK and b is not
//
//	Nodes live in a Forest arena and reference children by index. Predicted
//	label vectors are bit-packed and owned by a round-scoped Generation; once a
//	search round is superseded its Generation is released as a whole while the
//	forest keeps node structure and confusion matrices.
//
// ✨ Search (Fit)
//
//  1. Generation 0: one leaf per labeling function, scored on the gold labels.
//  2. Expand G0 × G0 into AND/OR/AND_NOT candidates, drop non-finite MCC,
//     rank by MCC descending. The top candidate is the current best.
//  3. Repeat: expand (current pool) × G0 keeping candidates with
//     MCC ≥ best; continue while the new top strictly beats the best.
//  4. The best candidate is compacted into a vector-free Tree.
//
// Ties are broken by enumeration order: left-pool index, then right-pool index,
// then AND < OR < AND_NOT. Results never depend on Options.Workers.
//
// ⚙️ Usage:
//
//	res, err := aggregate.Fit(lfs, golds, aggregate.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Tree, res.Tree.MCC())
//	vote := res.Tree.Apply(x) // always label.OK or label.KO
//
// Complexity: each round scores |pool|·|G0|·3 candidates in O(|golds|/64) words.
package aggregate
