package rc

import (
	"errors"
	"fmt"
	"math"
)

// Errors returned by constructor and retune operations.
var (
	ErrOrder   = errors.New("rc: order must be at least 1")
	ErrNyquist = errors.New("rc: cutoff must be strictly below half the sample rate")
)

// Filter is a cascade of first-order exponential smoothing sections sharing
// one smoothing factor. Each section keeps only its previous output, so an
// order-N filter carries exactly N floats of state.
type Filter struct {
	stages     []float64
	alpha      float64
	cutoff     float64
	sampleRate float64
}

// New creates an order-stage RC low-pass filter at cutoff (Hz) for the given
// sample rate (Hz). Every stage is seeded with initValue. The sample rate and
// order are fixed for the lifetime of the filter.
func New(cutoff, sampleRate float64, order int, initValue float64) (*Filter, error) {
	if order < 1 {
		return nil, fmt.Errorf("%w: %d", ErrOrder, order)
	}

	alpha, err := smoothingFactor(cutoff, sampleRate)
	if err != nil {
		return nil, err
	}

	stages := make([]float64, order)
	for i := range stages {
		stages[i] = initValue
	}

	return &Filter{
		stages:     stages,
		alpha:      alpha,
		cutoff:     cutoff,
		sampleRate: sampleRate,
	}, nil
}

// smoothingFactor computes alpha = 1 / (1 + fs/(2*pi*fc)) after checking the
// Nyquist condition. For any valid cutoff, alpha lies in (0, 1).
func smoothingFactor(cutoff, sampleRate float64) (float64, error) {
	if !(cutoff < sampleRate/2) {
		return 0, fmt.Errorf("%w: %g Hz at %g Hz", ErrNyquist, cutoff, sampleRate)
	}

	return 1 / (1 + sampleRate/(2*math.Pi*cutoff)), nil
}

// ProcessSample filters one input sample and returns the last stage's output.
//
// Must be called once per sampling period (1/sampleRate).
func (f *Filter) ProcessSample(x float64) float64 {
	f.stages[0] += f.alpha * (x - f.stages[0])
	for n := 1; n < len(f.stages); n++ {
		f.stages[n] += f.alpha * (f.stages[n-1] - f.stages[n])
	}

	return f.stages[len(f.stages)-1]
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// Reset sets every cascade stage to value.
func (f *Filter) Reset(value float64) {
	for i := range f.stages {
		f.stages[i] = value
	}
}

// SetCutoff retunes the filter to a new cutoff frequency at the fixed sample
// rate. On a Nyquist violation the filter state and tuning are left
// unchanged.
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
	return len(f.stages)
}

// Alpha returns the current smoothing factor.
func (f *Filter) Alpha() float64 {
	return f.alpha
}
