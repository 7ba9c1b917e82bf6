// Package pm designs linear-phase FIR filters with the Parks–McClellan
// exchange algorithm.
//
// [Design] is the usual entry point: it takes the filter order and a flat
// band specification (normalized edges, edge amplitudes, band weights) and
// returns the minimax-optimal taps together with the final reference set,
// the levelled error δ and the convergence measure Q. [DesignRS] reaches
// the same filter by first solving a lower-degree problem and seeding the
// final exchange with a scaled copy of its reference, which usually saves
// iterations for long filters.
//
// [Exchange] runs the bare iteration on a caller-supplied reference and
// Chebyshev-space bands. Each iteration interpolates the levelled error on
// the current reference (barycentric form), fits a low-degree Chebyshev
// series to the weighted error on small sub-intervals, finds its critical
// points with the colleague-matrix rootfinder and exchanges the reference
// for k alternating extrema.
//
// Non-convergence is not an error: the result carries Q, the iteration
// count and a [Status]. Q below about 0.01 indicates an acceptable design.
// The only hard failure inside the iteration is a rootfinder failure.
package pm
