package search_test

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/hilbertsearch/permutation"
	"github.com/katalvlaran/hilbertsearch/point"
	"github.com/katalvlaran/hilbertsearch/schedule"
	"github.com/katalvlaran/hilbertsearch/search"
	"github.com/stretchr/testify/require"
)

func tightCluster() point.Set {
	pts := make([]point.Point, 0, 12)
	for i := uint32(0); i < 12; i++ {
		pts = append(pts, point.Point{i, i})
	}

	return point.Set{Points: pts, Dim: 2, BitsPerDimension: 8}
}

func TestSearch_TooFewPoints(t *testing.T) {
	ps := point.Set{
		Points:           []point.Point{{0, 0}, {1, 1}},
		Dim:              2,
		BitsPerDimension: 8,
	}

	loop := search.New(search.DefaultConfig())
	_, err := loop.Search(ps)
	require.ErrorIs(t, err, point.ErrTooFewPoints)
}

func TestSearchMany_RejectsNonPositiveK(t *testing.T) {
	loop := search.New(search.DefaultConfig())
	_, err := loop.SearchMany(tightCluster(), 0)
	require.ErrorIs(t, err, search.ErrNonPositiveK)
}

// TestSearch_ZeroIterationsReturnsSeedOnly exercises S4: with
// MaxIterations=0 no round ever runs, so the only Result Record is the
// seed permutation's own evaluation, and the returned pool has exactly
// one entry.
func TestSearch_ZeroIterationsReturnsSeedOnly(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.MaxIterations = 0

	loop := search.New(cfg)
	results, err := loop.SearchMany(tightCluster(), 3)
	require.NoError(t, err)
	require.Len(t, results, 1)

	identity, err := permutation.New(2)
	require.NoError(t, err)
	require.Equal(t, identity, results[0].Permutation)
}

// TestSearch_Deterministic exercises S5: identical Config.Seed and
// identical inputs reproduce identical results.
func TestSearch_Deterministic(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.Seed = 42
	cfg.MaxIterations = 4

	ps := tightCluster()

	loop1 := search.New(cfg)
	r1, err := loop1.Search(ps)
	require.NoError(t, err)

	loop2 := search.New(cfg)
	r2, err := loop2.Search(ps)
	require.NoError(t, err)

	require.Equal(t, r1.Permutation, r2.Permutation)
	require.Equal(t, r1.Count, r2.Count)
}

func TestSearch_ResultPermutationIsValidBijection(t *testing.T) {
	loop := search.New(search.DefaultConfig())
	r, err := loop.Search(tightCluster())
	require.NoError(t, err)
	require.NoError(t, r.Permutation.Validate())
}

func TestSearchMany_BestFirstOrdering(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.MaxIterations = 6
	cfg.ParallelTrials = 4

	loop := search.New(cfg)
	results, err := loop.SearchMany(tightCluster(), 3)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	for i := 1; i < len(results); i++ {
		require.LessOrEqual(t, results[i-1].Count, results[i].Count)
	}
}

// flakyScheduler fails every other call, exercising the property that a
// failing trial is absorbed and logged rather than aborting the search
// (S6: trial-failure absorption).
type flakyScheduler struct {
	mu    sync.Mutex
	calls int
}

var errFlaky = errors.New("search_test: injected trial failure")

func (f *flakyScheduler) Next(prev permutation.Permutation, iteration int, r *rand.Rand) (permutation.Permutation, error) {
	f.mu.Lock()
	f.calls++
	fail := f.calls%2 == 0
	f.mu.Unlock()

	if fail {
		return nil, errFlaky
	}

	var d schedule.Default

	return d.Next(prev, iteration, r)
}

func TestSearch_AbsorbsTrialFailures(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.MaxIterations = 5
	cfg.ParallelTrials = 4

	var loggedCount int
	var mu sync.Mutex
	cfg.Logger = func(format string, args ...any) {
		mu.Lock()
		loggedCount++
		mu.Unlock()
	}

	loop := search.New(cfg, search.WithScheduler(&flakyScheduler{}))
	result, err := loop.Search(tightCluster())
	require.NoError(t, err)
	require.NoError(t, result.Permutation.Validate())

	mu.Lock()
	defer mu.Unlock()
	require.Greater(t, loggedCount, 0)
}

func TestSearch_SingleParallelTrial(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.ParallelTrials = 1
	cfg.MaxIterations = 3

	loop := search.New(cfg)
	_, err := loop.Search(tightCluster())
	require.NoError(t, err)
}

func TestNewBuilder_ProducesWorkingLoop(t *testing.T) {
	loop := search.NewBuilder(1, 8, 40, 3)
	_, err := loop.Search(tightCluster())
	require.NoError(t, err)
}

// stagnantScheduler returns the base unchanged, so no trial can ever
// strictly improve on the seed and every round is fruitless.
type stagnantScheduler struct {
	mu         sync.Mutex
	iterations map[int]int
}

func (s *stagnantScheduler) Next(prev permutation.Permutation, iteration int, r *rand.Rand) (permutation.Permutation, error) {
	s.mu.Lock()
	if s.iterations == nil {
		s.iterations = make(map[int]int)
	}
	s.iterations[iteration]++
	s.mu.Unlock()

	return prev.Clone(), nil
}

// TestSearch_EarlyStopAfterExactStreak pins the early-stop accounting:
// with a scheduler that can never improve on the seed, the loop must run
// exactly MaxIterationsWithoutImprovement rounds and then exit, well
// short of MaxIterations.
func TestSearch_EarlyStopAfterExactStreak(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.MaxIterations = 10
	cfg.MaxIterationsWithoutImprovement = 3
	cfg.ParallelTrials = 2

	sched := &stagnantScheduler{}
	loop := search.New(cfg, search.WithScheduler(sched))
	_, err := loop.Search(tightCluster())
	require.NoError(t, err)

	sched.mu.Lock()
	defer sched.mu.Unlock()
	require.Len(t, sched.iterations, 3)
	for iteration, calls := range sched.iterations {
		require.Less(t, iteration, 3)
		require.Equal(t, 2, calls, "iteration %d", iteration)
	}
}

// baseRecordingScheduler records which base permutation each call
// observed, keyed by iteration.
type baseRecordingScheduler struct {
	mu    sync.Mutex
	bases map[int][]permutation.Permutation
}

func (s *baseRecordingScheduler) Next(prev permutation.Permutation, iteration int, r *rand.Rand) (permutation.Permutation, error) {
	s.mu.Lock()
	if s.bases == nil {
		s.bases = make(map[int][]permutation.Permutation)
	}
	s.bases[iteration] = append(s.bases[iteration], prev.Clone())
	s.mu.Unlock()

	var d schedule.Default

	return d.Next(prev, iteration, r)
}

// TestSearch_AllTrialsInARoundShareOneBase checks that every trial of a
// given round mutates from the same base permutation: the base is
// captured once at the start of the round, and within-round improvements
// never re-seed it.
func TestSearch_AllTrialsInARoundShareOneBase(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.MaxIterations = 5
	cfg.ParallelTrials = 4
	cfg.Seed = 11

	sched := &baseRecordingScheduler{}
	loop := search.New(cfg, search.WithScheduler(sched))
	_, err := loop.Search(tightCluster())
	require.NoError(t, err)

	sched.mu.Lock()
	defer sched.mu.Unlock()
	require.NotEmpty(t, sched.bases)
	for iteration, seen := range sched.bases {
		require.Len(t, seen, 4, "iteration %d", iteration)
		for _, b := range seen[1:] {
			require.Equal(t, seen[0], b, "iteration %d", iteration)
		}
	}
}

func TestSearch_StartingPermutationIsRespectedWhenNoRoundsRun(t *testing.T) {
	cfg := search.DefaultConfig()
	cfg.MaxIterations = 0

	start, err := permutation.New(2)
	require.NoError(t, err)
	start, err = start.Scramble(2, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	loop := search.New(cfg)
	result, err := loop.Search(tightCluster(), start)
	require.NoError(t, err)
	require.Equal(t, start, result.Permutation)
}
