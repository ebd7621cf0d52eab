// Package fir provides a direct-form FIR filter over a fixed-capacity
// delay line.
//
// A [Filter] applies pre-computed tap coefficients to an input stream one
// sample at a time. This package provides the processing runtime only;
// coefficient design (windowed-sinc, moving average, etc.) is the caller's
// concern.
package fir
