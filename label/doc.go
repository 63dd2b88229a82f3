// SPDX-License-Identifier: MIT

// Package label defines the vocabulary shared by every other lvlabel package:
// the tri-state Label value, the LabelingFunction contract and the GoldLabel record.
//
// 🚀 What is a labeling function?
//
//	A labeling function (LF) is a cheap, noisy heuristic that looks at one data
//	point and votes OK, KO or ABSTAIN ("no opinion"). Many LFs are combined by the
//	aggregate package into a single binary classifier.
//
// ✨ Contracts:
//   - Apply must be deterministic and side-effect free for a fixed input.
//   - Name identifies the LF; names are unique inside one model.
//   - Matches (optional) returns the substrings that triggered the vote; it is
//     used for explainability only.
//   - Weight (optional) is advisory, in [0,1], default 1.
//
// Gold labels carry the ground truth used for fitting. Their binary class is OK iff
// the record is flagged as a true positive or a false negative, KO otherwise.
//
// ⚙️ Usage:
//
//	isEven := label.NewFunc("isEven", func(n int) label.Label {
//	    if n%2 == 0 {
//	        return label.OK
//	    }
//	    return label.KO
//	})
//	gold := label.NewGoldLabel("even", 4, true)
package label
