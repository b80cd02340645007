// Package topk implements a bounded max-heap priority queue: it retains
// the K best (lowest-scoring) items offered to it, evicting the current
// worst item whenever a (K+1)-th item arrives.
//
// It is built as a container/heap.Interface over a backing slice,
// wrapped by a small typed API, but inverted relative to the usual
// min-heap: Pool is a max-heap over score, so the worst survivor is
// always at the root and is the one evicted on overflow.
//
// Pool is not internally synchronized, exactly like container/heap
// itself. Its only caller in this module, search.Loop, serializes all
// Pool access behind the same mutex that guards best-so-far.
package topk
