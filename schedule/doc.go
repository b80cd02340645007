// Package schedule implements the mutation cooling schedule: given the
// previous permutation, its degree, and the current (zero-based)
// iteration, it decides how many axes to scramble next. Early iterations
// explore broadly (up to a full scramble); later iterations refine
// locally (floored at five axes, never zero).
//
// Modeled as a small capability interface per the core's design notes,
// alongside fragmentation.Scorer, so either variation point can be
// swapped without touching the search loop.
package schedule
