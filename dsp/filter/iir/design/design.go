// Package design synthesizes biquad (second-order) pole/zero coefficient
// sets for the iir runtime, using the RBJ Audio EQ Cookbook formulas.
//
// The returned coefficients keep the unnormalized leading pole (a0 = 1+alpha
// for low/high-pass, a0 = 1 for the notch); the iir engine divides by a0 at
// runtime, and iir.Coefficients.NormalizeDCGain / NormalizeNyquistGain
// rescale the zeros when unity passband gain is required.
package design

import (
	"errors"
	"fmt"
	"math"

	"github.com/GeneralEmbeddedCLibraries/filter/dsp/filter/iir"
)

// Errors returned when design parameters are invalid.
var (
	ErrNyquist    = errors.New("design: cutoff must be strictly below half the sample rate")
	ErrPoleRadius = errors.New("design: pole radius must be in (0, 1)")
)

// Lowpass computes second-order low-pass coefficients at cutoff (Hz) with
// damping factor zeta for the given sample rate (Hz).
func Lowpass(cutoff, zeta, sampleRate float64) (iir.Coefficients, error) {
	alpha, cosOmega, err := angularTerms(cutoff, zeta, sampleRate)
	if err != nil {
		return iir.Coefficients{}, err
	}

	return iir.Coefficients{
		Zeros: []float64{
			(1 - cosOmega) / 2,
			1 - cosOmega,
			(1 - cosOmega) / 2,
		},
		Poles: []float64{
			1 + alpha,
			-2 * cosOmega,
			1 - alpha,
		},
	}, nil
}

// Highpass computes second-order high-pass coefficients at cutoff (Hz) with
// damping factor zeta for the given sample rate (Hz).
func Highpass(cutoff, zeta, sampleRate float64) (iir.Coefficients, error) {
	alpha, cosOmega, err := angularTerms(cutoff, zeta, sampleRate)
	if err != nil {
		return iir.Coefficients{}, err
	}

	return iir.Coefficients{
		Zeros: []float64{
			(1 + cosOmega) / 2,
			-(1 + cosOmega),
			(1 + cosOmega) / 2,
		},
		Poles: []float64{
			1 + alpha,
			-2 * cosOmega,
			1 - alpha,
		},
	}, nil
}

// Notch computes second-order band-stop coefficients centered at cutoff (Hz)
// for the given sample rate (Hz). r is the pole radius controlling the notch
// bandwidth and must lie strictly within (0, 1); typical values are
// 0.80 - 0.99, narrower as r approaches 1.
func Notch(cutoff, r, sampleRate float64) (iir.Coefficients, error) {
	if r <= 0 || r >= 1 {
		return iir.Coefficients{}, fmt.Errorf("%w: %g", ErrPoleRadius, r)
	}

	if !(cutoff < sampleRate/2) {
		return iir.Coefficients{}, fmt.Errorf("%w: %g Hz at %g Hz", ErrNyquist, cutoff, sampleRate)
	}

	cosOmega := math.Cos(2 * math.Pi * cutoff / sampleRate)

	return iir.Coefficients{
		Zeros: []float64{1, -2 * cosOmega, 1},
		Poles: []float64{1, -2 * r * cosOmega, r * r},
	}, nil
}

func angularTerms(cutoff, zeta, sampleRate float64) (alpha, cosOmega float64, err error) {
	if !(cutoff < sampleRate/2) {
		return 0, 0, fmt.Errorf("%w: %g Hz at %g Hz", ErrNyquist, cutoff, sampleRate)
	}

	omega := 2 * math.Pi * cutoff / sampleRate

	return math.Sin(omega) * zeta, math.Cos(omega), nil
}
