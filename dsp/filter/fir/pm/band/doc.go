// Package band describes the frequency bands of a minimax FIR design.
//
// A [Band] is a closed interval with a desired amplitude and a positive
// weight. Bands live either in angular-frequency space ([0, π], [SpaceFreq])
// or in the normalized Chebyshev space ([-1, 1], [SpaceCheby]) reached by
// the change of variable x = cos(ω). [Convert] moves a whole band
// collection between the two.
//
// Amplitude and weight are [Response] values. The package provides a
// closed set of shapes ([Constant], [Linear], [Func]); each non-constant
// shape remembers the space it was defined in and converts the abscissa
// when it is evaluated in the other one, so a converted band keeps
// describing the same response.
package band
