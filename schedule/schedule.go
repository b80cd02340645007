package schedule

import (
	"math/rand"

	"github.com/katalvlaran/hilbertsearch/permutation"
)

// maxRefineAxes is the floor on how few axes a late-iteration scramble
// touches: never zero, so the search never stalls into a no-op mutation.
const maxRefineAxes = 5

// Scheduler decides, per iteration, how many axes to scramble and
// returns the resulting candidate permutation.
type Scheduler interface {
	Next(prev permutation.Permutation, iteration int, r *rand.Rand) (permutation.Permutation, error)
}

// Default is the schedule described by the core: k = max(min(D, 5), D >> iteration).
type Default struct{}

// Next implements Scheduler.
func (Default) Next(prev permutation.Permutation, iteration int, r *rand.Rand) (permutation.Permutation, error) {
	d := prev.Degree()
	k := ScrambleCount(d, iteration)

	return prev.Scramble(k, r)
}

// ScrambleCount computes k = max(min(d, maxRefineAxes), d >> iteration)
// for a domain of size d at the given zero-based iteration.
func ScrambleCount(d, iteration int) int {
	floor := d
	if maxRefineAxes < floor {
		floor = maxRefineAxes
	}

	shift := iteration
	if shift < 0 {
		shift = 0
	}
	cooled := d >> uint(shift)

	if floor > cooled {
		return floor
	}

	return cooled
}
