package fragmentation

import (
	"sort"

	"github.com/katalvlaran/hilbertsearch/point"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Scorer is the capability interface the search core depends on: score a
// Hilbert-sorted point sequence into an estimated cluster count and the
// widest gap actually taken within a cluster. Modeled as a small
// interface (rather than requiring a concrete Metric type) so the
// threshold-selection rule can vary independently of the search loop.
type Scorer interface {
	Score(points []point.Point) (estimatedClusterCount int, maxGap float64, err error)
}

// Metric is the default Scorer: see package doc for its threshold rule.
type Metric struct {
	Options
}

// New returns a Metric configured with opts.
func New(opts Options) Metric {
	return Metric{Options: opts}
}

// Score implements Scorer.
//
// Complexity: O(n log n) (dominated by sorting the gap distribution).
func (m Metric) Score(points []point.Point) (int, float64, error) {
	n := len(points)
	if n < 2 {
		return 0, 0, ErrTooFewPoints
	}

	gaps := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		gaps[i] = squaredDistance(points[i], points[i+1])
	}

	threshold := mergeThreshold(gaps, m.NoiseSkipBy)

	clusterSizes, inClusterGaps := walk(gaps, threshold)

	outlierSize := m.OutlierSize
	count := 0
	for _, size := range clusterSizes {
		if size > outlierSize {
			count++
		}
	}

	maxGap := 0.0
	if len(inClusterGaps) > 0 {
		maxGap = floats.Max(inClusterGaps)
	}

	return count, maxGap, nil
}

// walk scans the gap sequence, cutting a new cluster wherever a gap
// exceeds threshold, and returns each cluster's point count along with
// every gap that stayed within a cluster (i.e. did not cut).
func walk(gaps []float64, threshold float64) (clusterSizes []int, inClusterGaps []float64) {
	size := 1
	for _, g := range gaps {
		if g <= threshold {
			size++
			inClusterGaps = append(inClusterGaps, g)

			continue
		}
		clusterSizes = append(clusterSizes, size)
		size = 1
	}
	clusterSizes = append(clusterSizes, size)

	return clusterSizes, inClusterGaps
}

// mergeThreshold derives T from the distribution of gaps: every skipBy-th
// gap in the sorted distribution forms a baseline, smoothing out isolated
// noise spikes, and T is thresholdScale times the baseline's
// thresholdQuantile-quantile.
func mergeThreshold(gaps []float64, skipBy int) float64 {
	if skipBy < 1 {
		skipBy = 1
	}

	sorted := make([]float64, len(gaps))
	copy(sorted, gaps)
	sort.Float64s(sorted)

	baseline := make([]float64, 0, len(sorted)/skipBy+1)
	for i := 0; i < len(sorted); i += skipBy {
		baseline = append(baseline, sorted[i])
	}
	if len(baseline) == 0 {
		baseline = sorted
	}

	q := stat.Quantile(thresholdQuantile, stat.LinInterp, baseline, nil)

	return thresholdScale * q
}

// squaredDistance computes the squared Euclidean distance between two
// points of equal dimensionality.
func squaredDistance(a, b point.Point) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}

	return sum
}
