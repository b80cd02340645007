// Package permutation implements axis-order bijections over {0, ..., D-1}
// and their randomized mutation.
//
// A Permutation is immutable once constructed: Scramble always returns a
// new Permutation rather than mutating the receiver, so a Permutation
// referenced by a pool entry or a best-so-far record can never be changed
// out from under its holder.
package permutation
