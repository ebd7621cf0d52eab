package iir

import (
	"fmt"
	"math"

	"github.com/GeneralEmbeddedCLibraries/filter/dsp/delayline"
)

// Filter implements the general recursive difference equation
//
//	y[n] = 1/a0 * ( sum_i b[i]*x[n-i] - sum_{i>=1} a[i]*y[n-i] )
//
// over two independent delay lines: one of capacity len(Zeros) for inputs,
// one of capacity len(Poles) for outputs. Pole and zero counts are fixed at
// construction; values may be replaced via SetCoefficients.
type Filter struct {
	coeff   Coefficients
	inputs  *delayline.Line
	outputs *delayline.Line
}

// New creates an IIR filter from the given coefficients. The coefficient
// vectors are copied; both sample histories start zero-filled.
//
// A zero leading pole is accepted here but makes every output NaN until the
// coefficients are corrected.
func New(c Coefficients) (*Filter, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	inputs, err := delayline.New(len(c.Zeros))
	if err != nil {
		return nil, fmt.Errorf("iir: input history: %w", err)
	}

	outputs, err := delayline.New(len(c.Poles))
	if err != nil {
		return nil, fmt.Errorf("iir: output history: %w", err)
	}

	return &Filter{
		coeff:   c.Clone(),
		inputs:  inputs,
		outputs: outputs,
	}, nil
}

// ProcessSample filters one input sample and returns the output.
//
// If the leading pole coefficient is zero the result is NaN, and the NaN is
// still pushed into the output history: the sentinel propagates through
// subsequent samples until the coefficients are corrected and the filter is
// reset. Downstream consumers detect the condition per-sample via math.IsNaN.
//
// Must be called once per sampling period.
func (f *Filter) ProcessSample(x float64) float64 {
	f.inputs.Push(x)

	var acc float64
	for i, b := range f.coeff.Zeros {
		acc += b * f.inputs.At(i)
	}
	for i := 1; i < len(f.coeff.Poles); i++ {
		acc -= f.coeff.Poles[i] * f.outputs.At(i-1)
	}

	var y float64
	if f.coeff.Poles[0] == 0 {
		y = math.NaN()
	} else {
		y = acc / f.coeff.Poles[0]
	}

	f.outputs.Push(y)

	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset zero-fills both sample histories. Coefficients are untouched.
func (f *Filter) Reset() {
	f.inputs.Reset()
	f.outputs.Reset()
}

// SetCoefficients replaces the pole and zero values in place. Both vectors
// must match the counts fixed at construction. Histories are retained;
// callers changing the filter character should Reset afterwards.
func (f *Filter) SetCoefficients(c Coefficients) error {
	if err := c.checkArity(len(f.coeff.Poles), len(f.coeff.Zeros)); err != nil {
		return err
	}

	copy(f.coeff.Poles, c.Poles)
	copy(f.coeff.Zeros, c.Zeros)

	return nil
}

// Coefficients returns a deep copy of the current coefficients.
func (f *Filter) Coefficients() Coefficients {
	return f.coeff.Clone()
}

// PoleCount returns the pole vector length fixed at construction.
func (f *Filter) PoleCount() int {
	return len(f.coeff.Poles)
}

// ZeroCount returns the zero vector length fixed at construction.
func (f *Filter) ZeroCount() int {
	return len(f.coeff.Zeros)
}
