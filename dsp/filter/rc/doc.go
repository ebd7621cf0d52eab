// Package rc provides a cascaded first-order exponential low-pass filter,
// the discrete equivalent of N chained analog RC circuits.
//
// The per-stage recurrence is y += alpha*(x - y) with
// alpha = 1/(1 + fs/(2*pi*fc)). Higher orders steepen the roll-off at the
// cost of group delay. State is a handful of floats; nothing allocates after
// construction, making the filter suitable for per-sample use in tight
// control loops.
package rc
