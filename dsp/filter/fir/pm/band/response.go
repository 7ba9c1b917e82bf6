package band

import (
	"github.com/cwbudde/algo-firpm/internal/numeric"
)

// Response evaluates a desired amplitude or a weight at x, where x is
// expressed in the given space.
type Response[T numeric.Real] interface {
	Eval(space Space, x T) T
}

// Constant is a response with the same value everywhere.
type Constant[T numeric.Real] struct {
	Value T
}

// Eval returns the constant value.
func (c Constant[T]) Eval(Space, T) T { return c.Value }

// Linear interpolates linearly between From at Start and To at Stop. Start
// and Stop are expressed in Space.
type Linear[T numeric.Real] struct {
	Space Space
	Start T
	Stop  T
	From  T
	To    T
}

// Eval returns the interpolated value at x.
func (l Linear[T]) Eval(space Space, x T) T {
	if l.From == l.To || l.Stop == l.Start {
		return l.From
	}

	x = toSpace(space, l.Space, x)

	return ((x-l.Start)*l.To - (x-l.Stop)*l.From) / (l.Stop - l.Start)
}

// Func wraps a pure function of the abscissa expressed in Space.
type Func[T numeric.Real] struct {
	Space Space
	F     func(x T) T
}

// Eval converts x to the function's space and calls it.
func (f Func[T]) Eval(space Space, x T) T {
	return f.F(toSpace(space, f.Space, x))
}

func toSpace[T numeric.Real](from, to Space, x T) T {
	switch {
	case from == to:
		return x
	case to == SpaceFreq:
		return numeric.Acos(x)
	default:
		return numeric.Cos(x)
	}
}
