package hilbert

import (
	"errors"

	"github.com/katalvlaran/hilbertsearch/permutation"
	"github.com/katalvlaran/hilbertsearch/point"
)

// Sentinel errors for Hilbert index construction.
var (
	// ErrEmptyPoints indicates an empty point slice was given to BuildIndex.
	ErrEmptyPoints = errors.New("hilbert: no points to index")

	// ErrDimensionMismatch indicates a point's width does not match the
	// permutation's degree.
	ErrDimensionMismatch = errors.New("hilbert: point width does not match permutation degree")
)

// Index is a view over a set of points, exposing them in the total order
// induced by mapping each point through a Hilbert curve under a specific
// permutation. It is the only observable the search core needs.
type Index interface {
	// SortedPoints returns the input points in curve order. The returned
	// slice must not be mutated by callers; implementations may return
	// the same backing array on repeated calls.
	SortedPoints() []point.Point
}

// Builder constructs an Index over points under a given axis permutation.
// Implementations must be deterministic: the same (points, perm) pair
// always yields the same curve order.
type Builder interface {
	BuildIndex(points []point.Point, perm permutation.Permutation) (Index, error)
}

// sortedIndex is the trivial Index implementation: a pre-sorted slice.
type sortedIndex struct {
	points []point.Point
}

func (s sortedIndex) SortedPoints() []point.Point { return s.points }
