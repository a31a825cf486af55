// Package hspace quantifies uncertainty in geological model sections from
// an ensemble of stochastic realisations, using Shannon entropy and joint
// (multivariate) entropy.
//
// 🚀 What is hspace?
//
//	A small, pure-Go toolkit that brings together:
//		• entropy/  — sort-based (joint) entropy of an observation set, plus a
//		              frequency-table estimator as cross-check
//		• ensemble/ — R × D1 × D2 realisation stack with cell and position projections
//		• grid/     — dense 2-D float grids for entropy maps and realisation slices
//		• section/  — per-cell entropy maps over a section, parallel and memoized
//
// ✨ Why sorting?
//
//   - No hashing, no binning: any alphabet, exact value equality
//   - Joint entropy over many positions costs one stable sort per position
//   - Deterministic and independent of realisation order
//
// Quick ASCII example (4 realisations of one cell):
//
//	1 1 2 2  →  sorted runs [1 1][2 2]  →  p = ½, ½  →  H = 1 bit
//
// See examples/section_uncertainty.go for an end-to-end layered section.
//
//	go get github.com/katalvlaran/hspace
package hspace
