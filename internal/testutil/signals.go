// Package testutil provides deterministic signal generators and tolerance
// assertions shared by the filter package tests.
package testutil

import "math"

// Sine generates a deterministic sine wave at freqHz sampled at sampleRate.
func Sine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Step generates a signal that is zero before pos and value from pos on.
func Step(value float64, length, pos int) []float64 {
	out := make([]float64, length)
	for i := pos; i < length; i++ {
		if i >= 0 {
			out[i] = value
		}
	}
	return out
}

// Alternating generates the Nyquist-rate test signal +a, -a, +a, ...
func Alternating(amplitude float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i&1 == 0 {
			out[i] = amplitude
		} else {
			out[i] = -amplitude
		}
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
