// Package debounce provides a boolean debounce filter: an order-1 RC
// low-pass on the {0,1} signal followed by a Schmitt-trigger comparator.
//
// The comparator trip levels sit symmetrically around 0.5: with level 0.1
// the output switches on once the smoothed signal reaches 0.9 and off once
// it falls back to 0.1. Glitches shorter than the RC time constant never
// reach a trip level, so contact bounce and sensor chatter are absorbed.
package debounce

import (
	"errors"
	"fmt"

	"github.com/GeneralEmbeddedCLibraries/filter/dsp/filter/rc"
)

// ErrLevel is returned when the comparator trip level is outside (0, 0.4).
var ErrLevel = errors.New("debounce: comparator level must be in (0, 0.4)")

// Filter debounces a boolean input stream.
type Filter struct {
	lpf   *rc.Filter
	level float64
	state bool
}

// New creates a debounce filter with an RC cutoff (Hz) at the given sample
// rate (Hz) and a comparator trip level in (0, 0.4). The output starts off.
func New(cutoff, sampleRate, level float64) (*Filter, error) {
	if level <= 0 || level >= 0.4 {
		return nil, fmt.Errorf("%w: %g", ErrLevel, level)
	}

	lpf, err := rc.New(cutoff, sampleRate, 1, 0)
	if err != nil {
		return nil, fmt.Errorf("debounce: %w", err)
	}

	return &Filter{lpf: lpf, level: level}, nil
}

// ProcessSample feeds one boolean sample and returns the debounced output.
//
// Must be called once per sampling period.
func (f *Filter) ProcessSample(in bool) bool {
	var x float64
	if in {
		x = 1
	}

	y := f.lpf.ProcessSample(x)

	switch {
	case !f.state && y >= 1-f.level:
		f.state = true
	case f.state && y <= f.level:
		f.state = false
	}

	return f.state
}

// Reset clears the smoothing state and forces the output off.
func (f *Filter) Reset() {
	f.lpf.Reset(0)
	f.state = false
}

// SetCutoff retunes the underlying low-pass; rejected retunes leave the
// filter unchanged.
func (f *Filter) SetCutoff(cutoff float64) error {
	return f.lpf.SetCutoff(cutoff)
}

// Cutoff returns the low-pass cutoff frequency in Hz.
func (f *Filter) Cutoff() float64 {
	return f.lpf.Cutoff()
}

// SampleRate returns the fixed sample rate in Hz.
func (f *Filter) SampleRate() float64 {
	return f.lpf.SampleRate()
}

// Level returns the comparator trip level.
func (f *Filter) Level() float64 {
	return f.level
}
