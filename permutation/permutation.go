package permutation

import (
	"errors"
	"math/rand"
)

// Sentinel errors for permutation construction and validation.
var (
	// ErrInvalidDegree indicates a non-positive degree was requested.
	ErrInvalidDegree = errors.New("permutation: degree must be positive")

	// ErrBadScrambleCount indicates k is outside [1, D].
	ErrBadScrambleCount = errors.New("permutation: scramble count out of range")

	// ErrNotBijection indicates a slice is not a valid permutation of its own domain.
	ErrNotBijection = errors.New("permutation: not a bijection on {0, ..., D-1}")
)

// Permutation is a bijection on {0, ..., D-1}: Permutation[i] is the axis
// that occupies position i. Instances are immutable after construction;
// Scramble always returns a new value.
type Permutation []int

// New returns the identity permutation of degree d.
func New(d int) (Permutation, error) {
	if d <= 0 {
		return nil, ErrInvalidDegree
	}
	p := make(Permutation, d)
	for i := range p {
		p[i] = i
	}

	return p, nil
}

// Degree returns D, the size of the domain p is a bijection over.
func (p Permutation) Degree() int {
	return len(p)
}

// Clone returns an independent copy of p.
func (p Permutation) Clone() Permutation {
	out := make(Permutation, len(p))
	copy(out, p)

	return out
}

// Validate reports whether p is a genuine bijection on {0, ..., len(p)-1}.
func (p Permutation) Validate() error {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) || seen[v] {
			return ErrNotBijection
		}
		seen[v] = true
	}

	return nil
}

// Scramble returns a new Permutation differing from the receiver in at
// most k positions: k distinct positions are chosen uniformly at random,
// then the values occupying those positions are shuffled among
// themselves via Fisher-Yates. The receiver is never mutated.
//
// Contract: 1 <= k <= p.Degree(); the random source r must be non-nil and
// must not be shared with a concurrent caller (*rand.Rand is not
// goroutine-safe — see package rng for per-worker derivation).
func (p Permutation) Scramble(k int, r *rand.Rand) (Permutation, error) {
	d := p.Degree()
	if k < 1 || k > d {
		return nil, ErrBadScrambleCount
	}

	out := p.Clone()

	// Choose k distinct positions via a partial Fisher-Yates draw over a
	// scratch index array, then shuffle the chosen positions' values.
	idx := make([]int, d)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + r.Intn(d-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	chosen := idx[:k]

	for i := k - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		out[chosen[i]], out[chosen[j]] = out[chosen[j]], out[chosen[i]]
	}

	return out, nil
}
