// Package search implements the Optimal Index Search: a parallel,
// iterative optimizer over axis permutations that minimizes a
// fragmentation metric (package fragmentation), maintains a bounded
// top-K pool of the best permutations seen (package topk), and exits
// under convergence criteria.
//
// 🚀 Usage
//
//	loop := search.New(search.DefaultConfig())
//	best, err := loop.Search(pointSet)
//	// best.Permutation is the winning axis order;
//	// best.Index.SortedPoints() is the points in that curve's order.
//
// Use SearchMany to retain the K best permutations instead of only one:
//
//	results, err := loop.SearchMany(pointSet, 8)
//
// ⚙️ Concurrency
//
//	Each round launches Config.ParallelTrials independent goroutines (the
//	round itself is a synchronization barrier: round i+1's trials all
//	mutate from the best-so-far observed after round i completes). Each
//	trial derives its own private, deterministic math/rand.Rand via
//	package rng rather than contending on a shared generator — see rng's
//	doc comment for how each (round, trial) stream is derived from
//	Config.Seed, which keeps a run reproducible under a fixed seed
//	without any RNG lock. The pool and best-so-far are
//	still serialized behind one mutex per trial admission, covering the
//	combined insert/compare/update critical section.
package search
