package iir

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// DCGain evaluates the steady-state gain at zero frequency (z = 1):
//
//	G = 1/a0 * ( b0 + b1 + ... + bM ) / ( 1 + ( a1 + a2 + ... + aN )/a0 )
//
// Returns NaN if the leading pole or the normalized pole sum is zero.
func (c Coefficients) DCGain() float64 {
	if len(c.Poles) == 0 {
		return math.NaN()
	}

	var poleSum, zeroSum float64
	for _, a := range c.Poles[1:] {
		poleSum += a
	}
	for _, b := range c.Zeros {
		zeroSum += b
	}

	return c.gain(poleSum, zeroSum)
}

// NyquistGain evaluates the steady-state gain at the Nyquist frequency
// (z = -1), i.e. against an alternating +1/-1 input. Odd-index coefficients
// enter with negated sign in both sums.
//
// Returns NaN if the leading pole or the normalized pole sum is zero.
func (c Coefficients) NyquistGain() float64 {
	var poleSum, zeroSum float64
	for i := 1; i < len(c.Poles); i++ {
		if i&1 == 1 {
			poleSum -= c.Poles[i]
		} else {
			poleSum += c.Poles[i]
		}
	}
	for i, b := range c.Zeros {
		if i&1 == 1 {
			zeroSum -= b
		} else {
			zeroSum += b
		}
	}

	return c.gain(poleSum, zeroSum)
}

func (c Coefficients) gain(poleSum, zeroSum float64) float64 {
	if len(c.Poles) == 0 || c.Poles[0] == 0 {
		return math.NaN()
	}

	poleSum = poleSum/c.Poles[0] + 1
	if poleSum == 0 {
		return math.NaN()
	}

	return (zeroSum / poleSum) / c.Poles[0]
}

// NormalizeDCGain rescales the zero coefficients in place so the filter has
// unity gain at DC. If the computed gain is not strictly positive the
// coefficients are left unchanged (a silent no-op, not an error): a NaN or
// non-positive gain means there is nothing meaningful to normalize against.
func (c Coefficients) NormalizeDCGain() {
	c.normalize(c.DCGain())
}

// NormalizeNyquistGain rescales the zero coefficients in place so the filter
// has unity gain at the Nyquist frequency. No-op on a non-positive gain.
func (c Coefficients) NormalizeNyquistGain() {
	c.normalize(c.NyquistGain())
}

func (c Coefficients) normalize(g float64) {
	if !(g > 0) {
		return
	}

	vecmath.ScaleBlock(c.Zeros, c.Zeros, 1/g)
}
