package cr

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by constructor and retune operations.
var (
	ErrOrder     = errors.New("cr: order must be at least 1")
	ErrFrequency = errors.New("cr: cutoff and sample rate must be positive")
	ErrNyquist   = errors.New("cr: cutoff must be strictly below half the sample rate")
)

// Filter is a cascade of first-order differencing high-pass sections, the
// discrete equivalent of N chained analog CR circuits. Each stage tracks its
// previous output and previous input.
type Filter struct {
	y          []float64
	x          []float64
	alpha      float64
	cutoff     float64
	sampleRate float64
}

// New creates an order-stage CR high-pass filter at cutoff (Hz) for the
// given sample rate (Hz). All stage histories start at zero. The sample rate
// and order are fixed for the lifetime of the filter.
func New(cutoff, sampleRate float64, order int) (*Filter, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: %d", ErrOrder, order)
	}

	alpha, err := smoothingFactor(cutoff, sampleRate)
	if err != nil {
		return nil, err
	}

	return &Filter{
		y:          make([]float64, order),
		x:          make([]float64, order),
		alpha:      alpha,
		cutoff:     cutoff,
		sampleRate: sampleRate,
	}, nil
}

// smoothingFactor computes alpha = tau / (1/fs + tau) with tau = 1/(2*pi*fc).
// Requires positive frequencies and the strict Nyquist condition.
func smoothingFactor(cutoff, sampleRate float64) (float64, error) {
	if cutoff <= 0 || sampleRate <= 0 {
		return 0, fmt.Errorf("%w: fc=%g Hz, fs=%g Hz", ErrFrequency, cutoff, sampleRate)
	}

	if !(cutoff < sampleRate/2) {
		return 0, fmt.Errorf("%w: %g Hz at %g Hz", ErrNyquist, cutoff, sampleRate)
	}

	tau := 1 / (2 * math.Pi * cutoff)

	return tau / (1/sampleRate + tau), nil
}

// ProcessSample filters one input sample and returns the last stage's output.
//
// Must be called once per sampling period (1/sampleRate).
func (f *Filter) ProcessSample(x float64) float64 {
	f.y[0] = f.alpha * (f.y[0] + x - f.x[0])
	f.x[0] = x
	for n := 1; n < len(f.y); n++ {
		f.y[n] = f.alpha * (f.y[n] + f.y[n-1] - f.x[n])
		f.x[n] = f.y[n-1]
	}

	return f.y[len(f.y)-1]
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset zeroes the output and input history of every stage.
func (f *Filter) Reset() {
	for i := range f.y {
		f.y[i] = 0
		f.x[i] = 0
	}
}

// SetCutoff retunes the filter to a new cutoff frequency at the fixed sample
// rate. On an invalid cutoff the filter state and tuning are left unchanged.
func (f *Filter) SetCutoff(cutoff float64) error {
	alpha, err := smoothingFactor(cutoff, f.sampleRate)
	if err != nil {
		return err
	}

	f.alpha = alpha
	f.cutoff = cutoff

	return nil
}

// Cutoff returns the current cutoff frequency in Hz.
func (f *Filter) Cutoff() float64 {
	return f.cutoff
}

// SampleRate returns the fixed sample rate in Hz.
func (f *Filter) SampleRate() float64 {
	return f.sampleRate
}

// Order returns the number of cascaded stages.
func (f *Filter) Order() int {
	return len(f.y)
}

// Alpha returns the current smoothing factor.
func (f *Filter) Alpha() float64 {
	return f.alpha
}
