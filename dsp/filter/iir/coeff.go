package iir

import (
	"errors"
	"fmt"
)

// Errors returned by coefficient validation.
var (
	ErrNoPoles       = errors.New("iir: at least one pole coefficient is required")
	ErrNoZeros       = errors.New("iir: at least one zero coefficient is required")
	ErrArityMismatch = errors.New("iir: replacement coefficients must match the constructed pole and zero counts")
)

// Coefficients holds the pole (denominator, a) and zero (numerator, b)
// vectors of a recursive filter:
//
//	H(z) = ( b0 + b1*z^-1 + ... + bM*z^-M ) / ( a0 + a1*z^-1 + ... + aN*z^-N )
//
// The leading pole a0 is stored explicitly and not assumed normalized. A
// zero a0 makes the difference equation undefined; the runtime then yields
// NaN (see [Filter.ProcessSample]).
type Coefficients struct {
	Poles []float64
	Zeros []float64
}

// Clone returns a deep copy whose slices share no memory with c.
func (c Coefficients) Clone() Coefficients {
	out := Coefficients{
		Poles: make([]float64, len(c.Poles)),
		Zeros: make([]float64, len(c.Zeros)),
	}
	copy(out.Poles, c.Poles)
	copy(out.Zeros, c.Zeros)

	return out
}

func (c Coefficients) validate() error {
	if len(c.Poles) == 0 {
		return ErrNoPoles
	}
	if len(c.Zeros) == 0 {
		return ErrNoZeros
	}

	return nil
}

func (c Coefficients) checkArity(poleCount, zeroCount int) error {
	if len(c.Poles) != poleCount || len(c.Zeros) != zeroCount {
		return fmt.Errorf("%w: got %d/%d, want %d/%d",
			ErrArityMismatch, len(c.Poles), len(c.Zeros), poleCount, zeroCount)
	}

	return nil
}
