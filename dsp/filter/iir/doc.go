// Package iir provides the general recursive (infinite impulse response)
// filter engine and the gain analysis that goes with it.
//
// A [Filter] runs an arbitrary pole/zero difference equation one sample at a
// time over two fixed-capacity delay lines. [Coefficients] carries the
// pole/zero vectors and offers steady-state gain evaluation at DC (z = 1)
// and Nyquist (z = -1) plus unity-gain normalization of the zeros, following
// "The Scientist and Engineer's Guide to Digital Signal Processing".
//
// Biquad coefficient synthesis (low-pass, high-pass, notch) lives in the
// design subpackage.
package iir
