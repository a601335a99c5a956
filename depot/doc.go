// Package depot selects depot vertices by greedy maximum coverage.
//
// What
//
//   - Select consumes a coverage.Map and repeatedly picks the vertex whose
//     coverage set adds the most not-yet-covered vertices, until everything
//     is covered or no candidate adds anything.
//   - Ties break toward the lowest vertex id, so results are reproducible
//     across runs and platforms.
//
// Why
//
//   - With failure scenarios, every vertex must lie within a fraction of
//     the battery range of some depot. Minimum set cover is NP-hard; the
//     greedy rule gives the standard ln(n)-approximation, which is all the
//     benchmark preparation needs.
//
// The selector is radius-agnostic: the caller derives the coverage radius
// (battery capacity divided by a safety factor) before computing coverage.
package depot
