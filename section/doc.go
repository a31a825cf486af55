// Package section maps the entropy engine over every cell of a model
// section and assembles the results into a 2-D entropy map.
//
// 🚀 What:
//
//	Given a stack of R realisations of a D1×D2 section, Section computes for
//	each cell (i, j) the entropy of the R values observed there. With fixed
//	positions configured, it computes instead the joint entropy of the cell
//	together with those positions, which highlights where uncertainty is
//	shared with (or independent of) a reference location.
//
// ⚙️ Usage:
//
//	stack, _ := ensemble.FromSlices(realisations)
//	sec, _ := section.New(stack,
//	    section.WithWorkers(runtime.GOMAXPROCS(0)),
//	    section.WithPositions([]entropy.Position{{Row: 4, Col: 10}}),
//	)
//	h, err := sec.Entropy(ctx) // *grid.Dense, D1×D2
//
// Concurrency:
//
//   - Each cell reads a disjoint projection of the shared stack and writes a
//     disjoint output cell, so cells run in parallel without locks.
//   - Results are placed by index; completion order does not matter.
//   - The first failing cell cancels the remaining work.
//
// Memoization:
//
//   - Entropy computes once and returns clones of the cached map.
//   - Compute always recomputes; Reset drops the cache.
package section
