// Package hilbertsearch is your toolkit for clustering high-dimensional
// integer point sets by exploiting a space-filling (Hilbert) curve.
//
// 🚀 What is this?
//
//	Points are mapped through a Hilbert curve into a single linear order
//	that tends to place spatially-near points near one another. Clusters
//	are recovered by scanning that order and cutting it where consecutive
//	points are "too far apart." The quality of the recovered clusters
//	depends strongly on which permutation of the coordinate axes is used
//	when constructing the curve — different permutations yield curves
//	with different degrees of fragmentation (the same true cluster being
//	revisited multiple times along the curve).
//
// ✨ The core: Optimal Index Search
//
//	github.com/katalvlaran/hilbertsearch/search implements a parallel,
//	iterative optimizer that searches the space of axis permutations for
//	one that minimizes a fragmentation metric, maintains a bounded top-K
//	pool of the best permutations seen, and exits under convergence
//	criteria.
//
// Under the hood, the module is organized as small, composable packages:
//
//   - point          — the input data model (points, dimensionality, bit width)
//   - hilbert        — the Hilbert-curve encoding collaborator
//   - permutation    — axis-order bijections and their mutation
//   - fragmentation  — the cluster-count metric driving the search
//   - schedule       — the cooling schedule for permutation mutation
//   - topk           — a bounded max-heap of best-so-far results
//   - rng            — deterministic, per-worker pseudo-random derivation
//   - search         — the Optimal Index Search itself (Trial + Loop + Result)
//
// None of the collaborator packages (hilbert, topk) are required reading to
// use search.Loop — see search's doc comment for the two public entry
// points, Search and SearchMany.
package hilbertsearch
