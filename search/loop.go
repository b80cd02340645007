package search

import (
	"sync"

	"github.com/katalvlaran/hilbertsearch/fragmentation"
	"github.com/katalvlaran/hilbertsearch/permutation"
	"github.com/katalvlaran/hilbertsearch/point"
	"github.com/katalvlaran/hilbertsearch/rng"
	"github.com/katalvlaran/hilbertsearch/schedule"
	"github.com/katalvlaran/hilbertsearch/topk"
)

// Loop runs the Optimal Index Search. Its state machine is
// Seeded -> Iterating -> {Converged | Exhausted}. The zero value is not
// usable; construct via New or NewBuilder.
type Loop struct {
	cfg        Config
	scorer     fragmentation.Scorer
	sched      schedule.Scheduler
	newBuilder BuilderFactory

	// mu guards pool and best together: one critical section covers the
	// insert-into-pool, compare-to-best-so-far, conditionally-update
	// sequence, so admissions are totally ordered and best is monotonic.
	mu   sync.Mutex
	pool *topk.Pool[Result]
	best *Result
}

// New constructs a Loop from cfg, applying any Options on top of the
// default scorer/scheduler/builder (fragmentation.Metric with default
// tuning, schedule.Default, hilbert.CompactEncoder).
func New(cfg Config, opts ...Option) *Loop {
	if cfg.Logger == nil {
		cfg.Logger = noopLogger
	}

	l := &Loop{
		cfg:        cfg,
		scorer:     fragmentation.New(fragmentation.DefaultOptions()),
		sched:      schedule.Default{},
		newBuilder: defaultBuilderFactory,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// NewBuilder is the builder form from the core's external interface:
// outlierSize and noiseSkipBy configure the fragmentation metric;
// maxTrials and maxIterationsWithoutImprovement bound the search.
// ParallelTrials is fixed at 4 and MaxIterations is derived as
// ceil(maxTrials / 4).
func NewBuilder(outlierSize, noiseSkipBy, maxTrials, maxIterationsWithoutImprovement int) *Loop {
	cfg := DefaultConfig()
	cfg.ParallelTrials = DefaultParallelTrials
	cfg.MaxIterations = ceilDiv(maxTrials, cfg.ParallelTrials)
	cfg.MaxIterationsWithoutImprovement = maxIterationsWithoutImprovement

	return New(cfg, WithScorer(fragmentation.New(fragmentation.Options{
		OutlierSize: outlierSize,
		NoiseSkipBy: noiseSkipBy,
	})))
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}

	return (a + b - 1) / b
}

// Search is the single-best convenience form: K=1. startingPermutation, if
// given, seeds the search; otherwise the identity permutation is used.
func (l *Loop) Search(points point.Set, startingPermutation ...permutation.Permutation) (Result, error) {
	results, err := l.SearchMany(points, 1, startingPermutation...)
	if err != nil {
		return Result{}, err
	}

	return results[0], nil
}

// SearchMany runs the full protocol and returns up to k Result Records,
// best first.
func (l *Loop) SearchMany(points point.Set, k int, startingPermutation ...permutation.Permutation) ([]Result, error) {
	if k <= 0 {
		return nil, ErrNonPositiveK
	}
	if err := points.Validate(); err != nil {
		return nil, err
	}

	start, err := startOrIdentity(points.Dim, startingPermutation)
	if err != nil {
		return nil, err
	}

	l.pool = topk.New[Result](k)
	l.best = nil

	seed, err := l.evaluate(points, start)
	if err != nil {
		return nil, err
	}
	l.offer(seed)

	noImprovementStreak := 0
	for iteration := 0; iteration < l.cfg.MaxIterations; iteration++ {
		l.mu.Lock()
		base := l.best.Permutation
		l.mu.Unlock()

		improvements := l.runRound(points, base, iteration)

		if improvements == 0 {
			noImprovementStreak++
		} else {
			noImprovementStreak = 0
		}
		if noImprovementStreak >= l.cfg.MaxIterationsWithoutImprovement {
			break
		}
	}

	worstFirst := l.pool.RemoveAll()
	bestFirst := make([]Result, len(worstFirst))
	for i, r := range worstFirst {
		bestFirst[len(worstFirst)-1-i] = r
	}

	return bestFirst, nil
}

// runRound launches Config.ParallelTrials trials concurrently, all
// mutating from the same base permutation, and folds each non-failing
// result into the pool/best-so-far. It returns how many trials strictly
// improved best-so-far.
//
// Completed trials are admitted in trial-index order, not completion
// order: goroutine completion order varies run to run, and admitting in
// a scheduler-dependent order would make the pool's tie ordering (and
// hence the drained output) irreproducible under a fixed seed.
func (l *Loop) runRound(points point.Set, base permutation.Permutation, iteration int) int {
	trials := l.cfg.ParallelTrials
	if trials < 1 {
		trials = 1
	}

	results := make([]Result, trials)
	failures := make([]error, trials)
	var wg sync.WaitGroup
	wg.Add(trials)

	for t := 0; t < trials; t++ {
		go func(trialIndex int) {
			defer wg.Done()

			r := rng.Derive(l.cfg.Seed, iteration, trialIndex)
			results[trialIndex], failures[trialIndex] = l.runTrial(points, base, iteration, r)
		}(t)
	}
	wg.Wait()

	improvements := 0
	for t := 0; t < trials; t++ {
		if failures[t] != nil {
			l.cfg.Logger("hilbertsearch: trial failed, treated as non-improving: %v", failures[t])

			continue
		}
		if l.offer(results[t]) {
			improvements++
		}
	}

	return improvements
}

// offer inserts res into the pool and conditionally updates best-so-far,
// atomically with respect to other offer calls. It returns whether res
// strictly improved best-so-far.
func (l *Loop) offer(res Result) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pool.AddRemove(res)

	if l.best == nil || res.IsBetterThan(*l.best) {
		r := res
		l.best = &r

		return true
	}

	return false
}

// evaluate builds a Hilbert index under perm and scores it, without
// touching the pool or best-so-far — used for the initial seed, which is
// installed via offer by the caller once built.
func (l *Loop) evaluate(points point.Set, perm permutation.Permutation) (Result, error) {
	builder := l.newBuilder(points.BitsPerDimension)
	idx, err := builder.BuildIndex(points.Points, perm)
	if err != nil {
		return Result{}, err
	}

	count, gap, err := l.scorer.Score(idx.SortedPoints())
	if err != nil {
		return Result{}, err
	}

	return Result{
		Permutation:         perm,
		Index:               idx,
		Count:               count,
		MergeSquareDistance: gap,
	}, nil
}

func startOrIdentity(dim int, given []permutation.Permutation) (permutation.Permutation, error) {
	if len(given) > 0 {
		return given[0], nil
	}

	return permutation.New(dim)
}
