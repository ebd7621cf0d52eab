// Package response measures and evaluates the frequency response of
// streaming filters.
//
// [Measure] treats a filter as a black box: it drives a unit impulse
// through it, forward-transforms the recorded impulse response and returns
// the magnitude per frequency bin. [Theoretical] evaluates H(e^jw) directly
// from pole/zero coefficients. The two agree up to impulse-response
// truncation, which makes them useful cross-checks in tests and tuning
// tools.
package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/GeneralEmbeddedCLibraries/filter/dsp/filter/iir"
)

// Errors returned by Measure.
var (
	ErrLength     = errors.New("response: length must be a power of two, at least 2")
	ErrSampleRate = errors.New("response: sample rate must be positive")
)

// SampleProcessor is the per-sample surface shared by all filter engines in
// this module.
type SampleProcessor interface {
	ProcessSample(x float64) float64
}

// ImpulseResponse drives a unit impulse followed by n-1 zeros through f and
// returns the n output samples. The filter is mutated; pass a freshly
// constructed or reset instance.
func ImpulseResponse(f SampleProcessor, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		var x float64
		if i == 0 {
			x = 1
		}
		out[i] = f.ProcessSample(x)
	}

	return out
}

// Measure returns the measured magnitude response of f at the n/2+1 bin
// frequencies k*sampleRate/n, k = 0..n/2, computed from an n-sample impulse
// response. n must be a power of two, at least 2.
//
// For recursive filters the impulse response is truncated at n samples, so
// the result converges to the true response as n grows; n >= 1024 is
// plenty for well-damped biquads.
func Measure(f SampleProcessor, n int, sampleRate float64) (freqs, mags []float64, err error) {
	if n < 2 || n&(n-1) != 0 {
		return nil, nil, fmt.Errorf("%w: %d", ErrLength, n)
	}

	if sampleRate <= 0 {
		return nil, nil, fmt.Errorf("%w: %g", ErrSampleRate, sampleRate)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, nil, fmt.Errorf("response: fft plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range ImpulseResponse(f, n) {
		in[i] = complex(v, 0)
	}

	spectrum := make([]complex128, n)
	if err := plan.Forward(spectrum, in); err != nil {
		return nil, nil, fmt.Errorf("response: forward fft: %w", err)
	}

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(spectrum[k])
		im[k] = imag(spectrum[k])
	}

	mags = make([]float64, bins)
	vecmath.Magnitude(mags, re, im)

	freqs = make([]float64, bins)
	for k := range freqs {
		freqs[k] = float64(k) * sampleRate / float64(n)
	}

	return freqs, mags, nil
}

// Theoretical evaluates the transfer function of the given pole/zero
// coefficients at freqHz:
//
//	H(e^jw) = sum_k b[k]*e^-jwk / sum_k a[k]*e^-jwk
func Theoretical(c iir.Coefficients, freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate

	var num, den complex128
	for k, b := range c.Zeros {
		num += complex(b, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	for k, a := range c.Poles {
		den += complex(a, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}

	return num / den
}

// MagnitudeDB returns the theoretical magnitude response in dB at freqHz.
func MagnitudeDB(c iir.Coefficients, freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(Theoretical(c, freqHz, sampleRate)))
}
