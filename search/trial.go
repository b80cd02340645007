package search

import (
	"math/rand"

	"github.com/katalvlaran/hilbertsearch/permutation"
	"github.com/katalvlaran/hilbertsearch/point"
)

// runTrial derives one candidate permutation from base via the
// scheduler, builds a Hilbert index under it, and scores the result.
// r is the trial's private RNG (see package rng); runTrial never reads
// or mutates shared state outside of the builder/scorer it calls.
func (l *Loop) runTrial(points point.Set, base permutation.Permutation, iteration int, r *rand.Rand) (Result, error) {
	candidate, err := l.sched.Next(base, iteration, r)
	if err != nil {
		return Result{}, err
	}

	return l.evaluate(points, candidate)
}
