// Package point defines the input data model consumed by the rest of
// hilbertsearch: a Point is a fixed-width vector of non-negative integers,
// and a Set bundles a slice of Points with the shared dimensionality and
// bit width that give them meaning.
//
// Set.Validate is the one input check the search core performs: a
// minimum point count plus basic shape invariants, nothing more.
package point
