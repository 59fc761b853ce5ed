// Package wave implements a deterministic sliding-window summary over a
// stream of timestamped, non-negative integer increments. Given a window
// length N, a relative error ε, and a per-item value bound R, a Wave
// ingests increments and answers approximate-sum queries over the last N
// units of the stream in O(|L|) = O((1/ε)·log(εNR)) time and
// O((1/ε)·log(εNR)) space, independent of stream length.
//
// The scheme is the deterministic "wave" sliding-window sum structure of
// Gibbons and Tirthapura's sum-of-bounded-integers extension: items are
// filed into O(log εNR) levels by a rank computed from the running total's
// bit pattern, each level bounded to O(1/ε) items, with every live item
// also threaded through one global order list so queries can read off its
// head and the largest discarded partial sum.
//
// Wave is not safe for concurrent use; callers serialize access to a
// given instance themselves (§5 of the design: single-threaded,
// event-driven, no background work).
package wave
