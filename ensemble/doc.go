// Package ensemble stores a stack of R stochastic realisations of a 2-D
// model section (R × D1 × D2) in one flat buffer and projects it into the
// observation sets consumed by package entropy.
//
// Layout: offset(k, i, j) = k*D1*D2 + i*D2 + j, realisation-major, so one
// realisation is a contiguous D1×D2 block.
//
// A Stack is mutable through Set only; once filled it may be shared
// read-only across goroutines without locking.
package ensemble
