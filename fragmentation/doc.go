// Package fragmentation implements the cluster-count metric that scores a
// Hilbert-sorted point sequence: it estimates how many clusters the
// sequence appears to contain and the widest gap actually taken within a
// cluster, by deriving a merge threshold from the distribution of
// consecutive-pair gap distances and cutting the sequence wherever a gap
// exceeds it.
//
// The exact threshold statistic is implementation-defined by the problem
// this package solves (any rule that correlates monotonically with curve
// fragmentation is valid); this package fixes one rule — a 1.5x-scaled
// upper quartile of a stride-sampled, sorted gap baseline, computed via
// gonum.org/v1/gonum/stat — so that scores are deterministic and
// comparable across runs (see DESIGN.md for the rationale).
package fragmentation
