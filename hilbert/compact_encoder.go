package hilbert

import (
	"math/big"
	"sort"

	"github.com/katalvlaran/hilbertsearch/permutation"
	"github.com/katalvlaran/hilbertsearch/point"
)

// CompactEncoder builds an Index using Skilling's axis-transposition
// algorithm for the compact multi-dimensional Hilbert curve (J. Skilling,
// "Programming the Hilbert Curve", AIP Conference Proceedings 707, 2004).
// It is deterministic and allocation-light: one permuted-coordinate
// buffer is reused across points.
type CompactEncoder struct {
	// BitsPerDimension is the number of bits each input coordinate is
	// drawn from. BuildIndex does not infer it and does not reject a zero
	// or negative value: such a value is treated as 1 bit, so only the
	// lowest bit of each coordinate is encoded. NewCompactEncoder sets it
	// explicitly.
	BitsPerDimension int
}

// NewCompactEncoder returns a CompactEncoder configured for points whose
// coordinates fit in bitsPerDimension bits each.
func NewCompactEncoder(bitsPerDimension int) *CompactEncoder {
	return &CompactEncoder{BitsPerDimension: bitsPerDimension}
}

// BuildIndex computes each point's Hilbert distance under perm (which
// reorders axes before encoding) and returns the points in ascending
// distance order, stably with respect to input order on ties.
//
// Complexity: O(n * D * bits) to encode n points of dimension D, plus
// O(n log n) to sort them by their big.Int distance.
func (e *CompactEncoder) BuildIndex(points []point.Point, perm permutation.Permutation) (Index, error) {
	if len(points) == 0 {
		return nil, ErrEmptyPoints
	}
	d := perm.Degree()
	for _, p := range points {
		if len(p) != d {
			return nil, ErrDimensionMismatch
		}
	}

	bits := e.BitsPerDimension
	if bits <= 0 {
		bits = 1
	}

	type keyed struct {
		dist *big.Int
		idx  int
	}
	entries := make([]keyed, len(points))
	coords := make([]uint32, d)

	for i, p := range points {
		for pos, axis := range perm {
			coords[pos] = p[axis]
		}
		entries[i] = keyed{dist: hilbertDistance(coords, bits), idx: i}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].dist.Cmp(entries[j].dist) < 0
	})

	sorted := make([]point.Point, len(points))
	for i, e := range entries {
		sorted[i] = points[e.idx]
	}

	return sortedIndex{points: sorted}, nil
}

// hilbertDistance computes the scalar Hilbert curve distance of a point
// given as axis-ordered coordinates, each bounded by bits bits, packing
// the transposed (Gray-coded, bit-interleaved) representation into a
// big.Int so dimensionality and bit width are unbounded by a machine
// word.
func hilbertDistance(coords []uint32, bits int) *big.Int {
	x := make([]uint32, len(coords))
	copy(x, coords)
	transposeToHilbert(x, bits)

	return packTransposed(x, bits)
}

// transposeToHilbert converts axis coordinates x (mutated in place) into
// Skilling's transposed Hilbert representation: x[i]'s bit b, read across
// all i for a fixed b, forms one bit-plane of the final interleaved
// index, most-significant plane first.
func transposeToHilbert(x []uint32, bits int) {
	n := len(x)
	m := uint32(1) << uint(bits-1)

	// Inverse undo: unpack excess work from the standard coordinate form.
	for q := m; q > 1; q >>= 1 {
		p := q - 1
		for i := 0; i < n; i++ {
			if x[i]&q != 0 {
				x[0] ^= p
			} else {
				t := (x[0] ^ x[i]) & p
				x[0] ^= t
				x[i] ^= t
			}
		}
	}

	// Gray encode.
	for i := 1; i < n; i++ {
		x[i] ^= x[i-1]
	}

	var t uint32
	for q := m; q > 1; q >>= 1 {
		if x[n-1]&q != 0 {
			t ^= q - 1
		}
	}
	for i := range x {
		x[i] ^= t
	}
}

// packTransposed folds a transposed coordinate array into a single
// big.Int, bit-plane by bit-plane from the most significant bit down,
// and within each plane dimension by dimension, yielding the canonical
// interleaved Hilbert index.
func packTransposed(x []uint32, bits int) *big.Int {
	out := new(big.Int)
	one := big.NewInt(1)

	for b := bits - 1; b >= 0; b-- {
		for i := range x {
			out.Lsh(out, 1)
			if (x[i]>>uint(b))&1 != 0 {
				out.Or(out, one)
			}
		}
	}

	return out
}
