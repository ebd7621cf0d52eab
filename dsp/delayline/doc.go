// Package delayline provides the fixed-capacity sample history used by the
// FIR and IIR filter engines.
//
// A [Line] is a circular buffer addressed by recency rather than absolute
// position: offset 0 is always the most recently pushed sample. Offsets are
// validated against the capacity at the interface, so callers never deal
// with wraparound arithmetic.
package delayline
