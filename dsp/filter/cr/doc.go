// Package cr provides a cascaded first-order differencing high-pass filter,
// the discrete equivalent of N chained analog CR circuits.
//
// Each stage implements y = alpha*(y + x - xPrev) with
// alpha = tau/(1/fs + tau), tau = 1/(2*pi*fc): steps pass through and decay,
// constant input is rejected. Typical use is DC removal and drift rejection
// ahead of further processing.
package cr
