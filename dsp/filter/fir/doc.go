// Package fir runs and analyses FIR filters.
//
// A [Filter] applies a set of taps to an input stream using a
// circular-buffer delay line. Linear-phase (symmetric) tap sets, such as
// those produced by the minimax designer in fir/pm, are detected and
// processed with folded multiplies.
//
// [MagnitudeResponse] evaluates a tap set on a dense frequency grid with an
// FFT, and [BandDeviation] measures how far that response strays from a
// target inside a band.
package fir
