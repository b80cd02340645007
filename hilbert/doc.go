// Package hilbert is the Hilbert-curve encoding collaborator the search
// core consumes but does not implement itself: given a permutation of
// coordinate axes and a list of integer points, it produces each point's
// scalar position along the corresponding Hilbert curve, and exposes the
// points in that order.
//
// The interfaces (Index, Builder) are the contract search.Loop depends
// on. CompactEncoder is the one concrete Builder this module ships, using
// Skilling's axis-transposition algorithm for the compact multi-dimensional
// Hilbert curve. It is provided so the repository is runnable end-to-end;
// package search constructs it only in its default BuilderFactory and
// otherwise works through the Builder interface.
package hilbert
