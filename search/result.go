package search

import (
	"github.com/katalvlaran/hilbertsearch/hilbert"
	"github.com/katalvlaran/hilbertsearch/permutation"
)

// Result bundles one evaluated permutation with its built index and
// score. Immutable once constructed.
type Result struct {
	// Permutation is the axis order this result was built from.
	Permutation permutation.Permutation

	// Index is the Hilbert index built under Permutation.
	Index hilbert.Index

	// Count is the estimated cluster count; lower is better.
	Count int

	// MergeSquareDistance is the widest gap actually taken within a
	// cluster. Carried for downstream consumers; does not participate
	// in ordering.
	MergeSquareDistance float64
}

// Score implements topk.Scored: lower Count is better, so Count is used
// directly as the score the pool ranks by.
func (r Result) Score() int { return r.Count }

// IsBetterThan is the strict-less comparator: a result is better than
// another iff its Count is strictly less.
func (r Result) IsBetterThan(other Result) bool {
	return r.Count < other.Count
}
