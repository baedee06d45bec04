// Package analysis provides post-run analysis of computed planes and single
// orbits.
//
// The package includes:
//
//   - [Summarize]: per-kind cell counts and potential statistics of a plane
//   - [PotentialHistogram]: binned distribution of escape potentials
//   - [RowPotentials]: potential profile along one pixel row, for plotting
//   - [OrbitLyapunov]: Lyapunov exponent of a single orbit
//   - [BifurcationDiagram]: attractor sweep along a real parameter segment
//
// # Chaos Detection
//
// A positive Lyapunov exponent indicates a chaotic orbit:
//
//	lambda := analysis.OrbitLyapunov(fam, point, 1000)
//	if lambda > 0 {
//	    // Orbit is chaotic
//	}
package analysis
