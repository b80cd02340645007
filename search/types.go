package search

import (
	"errors"

	"github.com/katalvlaran/hilbertsearch/fragmentation"
	"github.com/katalvlaran/hilbertsearch/hilbert"
	"github.com/katalvlaran/hilbertsearch/schedule"
)

// Sentinel errors. Invalid-input errors surface to the caller immediately
// with no partial results; trial failures never reach this surface (they
// are absorbed and logged — see Loop.runRound).
var (
	// ErrNonPositiveK indicates SearchMany was asked to retain zero results.
	ErrNonPositiveK = errors.New("search: k must be positive")
)

// Default tuning, named per the builder table in the core's design.
const (
	DefaultParallelTrials                  = 4
	DefaultMaxIterations                   = 10
	DefaultMaxIterationsWithoutImprovement = 3
)

// Logger is the injection point for trial-failure diagnostics; it is the
// library's only "logging" surface, deliberately not a hard dependency on
// any particular logging package (see DESIGN.md). The default is a no-op.
type Logger func(format string, args ...any)

func noopLogger(string, ...any) {}

// Config configures one Loop.
type Config struct {
	// ParallelTrials is how many Trials run per round.
	ParallelTrials int

	// MaxIterations caps the number of rounds.
	MaxIterations int

	// MaxIterationsWithoutImprovement is the early-stop threshold: this
	// many consecutive fruitless rounds terminate the search.
	MaxIterationsWithoutImprovement int

	// Seed is the master seed for deterministic per-trial RNG derivation
	// (package rng). Zero is a valid, deterministic default.
	Seed int64

	// Logger receives one call per absorbed trial failure. Defaults to a
	// no-op when left nil.
	Logger Logger
}

// DefaultConfig returns the standard tuning: ParallelTrials=4,
// MaxIterations=10, MaxIterationsWithoutImprovement=3. The pool capacity
// is not part of Config — it is the k argument of SearchMany (Search
// always uses 1).
func DefaultConfig() Config {
	return Config{
		ParallelTrials:                  DefaultParallelTrials,
		MaxIterations:                   DefaultMaxIterations,
		MaxIterationsWithoutImprovement: DefaultMaxIterationsWithoutImprovement,
		Seed:                            0,
		Logger:                          noopLogger,
	}
}

// BuilderFactory constructs a hilbert.Builder sized for the given bit
// width; Loop calls it once per trial (and once for seeding) rather than
// holding a single stateful encoder, since CompactEncoder is a cheap,
// stateless value type.
type BuilderFactory func(bitsPerDimension int) hilbert.Builder

func defaultBuilderFactory(bits int) hilbert.Builder {
	return hilbert.NewCompactEncoder(bits)
}

// Option configures a Loop beyond Config's plain data fields.
type Option func(*Loop)

// WithScorer overrides the fragmentation.Scorer used to score each trial.
func WithScorer(s fragmentation.Scorer) Option {
	return func(l *Loop) { l.scorer = s }
}

// WithScheduler overrides the schedule.Scheduler used to derive candidate
// permutations.
func WithScheduler(s schedule.Scheduler) Option {
	return func(l *Loop) { l.sched = s }
}

// WithBuilderFactory overrides how Hilbert indices are built.
func WithBuilderFactory(f BuilderFactory) Option {
	return func(l *Loop) { l.newBuilder = f }
}
