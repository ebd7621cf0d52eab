package delayline

import "fmt"

// Line is a fixed-capacity history of scalar samples addressed by recency.
// Pushing into a full Line overwrites the oldest sample, so a Line is always
// full: it is born zero-filled and holds exactly Cap samples at all times.
//
// Storage is allocated once at construction; no operation allocates.
type Line struct {
	buf []float64
	pos int // next write slot
}

// New creates a Line holding capacity samples, all zero.
func New(capacity int) (*Line, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("delayline: capacity must be at least 1: %d", capacity)
	}

	return &Line{buf: make([]float64, capacity)}, nil
}

// Push stores v as the newest sample, overwriting the oldest.
func (l *Line) Push(v float64) {
	l.buf[l.pos] = v
	l.pos++
	if l.pos == len(l.buf) {
		l.pos = 0
	}
}

// At returns the sample offset positions back from the newest: At(0) is the
// most recently pushed sample, At(Cap()-1) the oldest.
//
// At panics if offset is negative or not below Cap, mirroring slice indexing.
func (l *Line) At(offset int) float64 {
	if offset < 0 || offset >= len(l.buf) {
		panic(fmt.Sprintf("delayline: offset %d out of range [0,%d)", offset, len(l.buf)))
	}

	i := l.pos - 1 - offset
	if i < 0 {
		i += len(l.buf)
	}

	return l.buf[i]
}

// Fill overwrites every stored sample with v.
func (l *Line) Fill(v float64) {
	for i := range l.buf {
		l.buf[i] = v
	}
}

// Reset overwrites every stored sample with zero.
func (l *Line) Reset() {
	l.Fill(0)
}

// Len returns the number of stored samples. A Line is always full, so Len
// equals Cap.
func (l *Line) Len() int {
	return len(l.buf)
}

// Cap returns the fixed capacity chosen at construction.
func (l *Line) Cap() int {
	return len(l.buf)
}
