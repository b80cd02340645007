package hilbert_test

import (
	"fmt"

	"github.com/katalvlaran/hilbertsearch/hilbert"
	"github.com/katalvlaran/hilbertsearch/permutation"
	"github.com/katalvlaran/hilbertsearch/point"
)

// ExampleCompactEncoder_BuildIndex shows building a curve order over a
// handful of 2D points under the identity permutation. The exact order
// depends on the curve's internal bit packing, so this example is
// documentation only (no Output: assertion).
func ExampleCompactEncoder_BuildIndex() {
	pts := []point.Point{
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
		{2, 2}, {3, 2}, {3, 3}, {2, 3},
	}
	perm, _ := permutation.New(2)
	enc := hilbert.NewCompactEncoder(2)

	idx, err := enc.BuildIndex(pts, perm)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, p := range idx.SortedPoints() {
		fmt.Println(p)
	}
}
