package fir

import (
	"errors"
	"fmt"

	"github.com/GeneralEmbeddedCLibraries/filter/dsp/delayline"
)

// Errors returned by constructor and coefficient operations.
var (
	ErrNoTaps       = errors.New("fir: at least one tap coefficient is required")
	ErrTapCountDiff = errors.New("fir: replacement taps must match the constructed tap count")
)

// Filter convolves a fixed set of tap coefficients against a delay line of
// matching capacity:
//
//	y[n] = sum_{i=0}^{order-1} a[i] * x[n-i]
//
// The tap count (order) is fixed at construction; tap values may be replaced
// via SetCoefficients.
type Filter struct {
	taps []float64
	line *delayline.Line
}

// New creates a FIR filter from the given taps. The taps are copied; the
// sample history is seeded with order copies of initValue.
func New(taps []float64, initValue float64) (*Filter, error) {
	if len(taps) == 0 {
		return nil, ErrNoTaps
	}

	line, err := delayline.New(len(taps))
	if err != nil {
		return nil, fmt.Errorf("fir: %w", err)
	}
	line.Fill(initValue)

	c := make([]float64, len(taps))
	copy(c, taps)

	return &Filter{taps: c, line: line}, nil
}

// ProcessSample pushes one input sample into the history and returns the
// convolution of the taps against the most recent order samples.
//
// Must be called once per sampling period.
func (f *Filter) ProcessSample(x float64) float64 {
	f.line.Push(x)

	var y float64
	for i, a := range f.taps {
		y += a * f.line.At(i)
	}

	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset refills the sample history with value.
func (f *Filter) Reset(value float64) {
	f.line.Fill(value)
}

// SetCoefficients replaces the tap values in place. The tap count must match
// the constructed order. The retained history was produced under the old
// taps; callers are advised to Reset afterwards.
func (f *Filter) SetCoefficients(taps []float64) error {
	if len(taps) != len(f.taps) {
		return fmt.Errorf("%w: got %d, want %d", ErrTapCountDiff, len(taps), len(f.taps))
	}

	copy(f.taps, taps)

	return nil
}

// Coefficients returns a copy of the current taps.
func (f *Filter) Coefficients() []float64 {
	c := make([]float64, len(f.taps))
	copy(c, f.taps)

	return c
}

// Order returns the tap count fixed at construction.
func (f *Filter) Order() int {
	return len(f.taps)
}
