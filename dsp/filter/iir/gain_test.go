package iir

import (
	"math"
	"testing"
)

// Biquad LPF designed at fc=1000 Hz, fs=8000 Hz, zeta=0.707
// (omega = 0.7854 rad, cos = 0.70711, alpha = 0.5).
func lpfFixture() Coefficients {
	return Coefficients{
		Poles: []float64{1.5, -1.41421, 0.5},
		Zeros: []float64{0.14645, 0.29289, 0.14645},
	}
}

func TestDCGain_LPFFixture(t *testing.T) {
	c := lpfFixture()

	// G = (sum b / (1 + sum a'/a0)) / a0 with a0 = 1.5.
	zeroSum := 0.14645 + 0.29289 + 0.14645
	poleSum := (-1.41421+0.5)/1.5 + 1
	want := (zeroSum / poleSum) / 1.5

	if got := c.DCGain(); math.Abs(got-want) > 1e-12 {
		t.Errorf("DCGain: got %v, want %v", got, want)
	}
}

func TestDCGain_Undefined(t *testing.T) {
	// Zero leading pole.
	c := Coefficients{Poles: []float64{0, 1}, Zeros: []float64{1}}
	if got := c.DCGain(); !math.IsNaN(got) {
		t.Errorf("zero leading pole: got %v, want NaN", got)
	}

	// Pole sum cancels to zero: 1 + (a1)/a0 = 0.
	c = Coefficients{Poles: []float64{1, -1}, Zeros: []float64{1}}
	if got := c.DCGain(); !math.IsNaN(got) {
		t.Errorf("zero pole sum: got %v, want NaN", got)
	}
}

func TestNyquistGain_AlternatingSigns(t *testing.T) {
	// For a0=1 and no feedback, the Nyquist gain is b0 - b1 + b2.
	c := Coefficients{Poles: []float64{1}, Zeros: []float64{1, -2, 1}}
	if got, want := c.NyquistGain(), 4.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("NyquistGain: got %v, want %v", got, want)
	}

	// Feedback path: denominator at z=-1 is a0 - a1 + a2.
	c = Coefficients{Poles: []float64{1, 0.5, 0.25}, Zeros: []float64{1}}
	want := 1.0 / ((0.25-0.5)/1 + 1)
	if got := c.NyquistGain(); math.Abs(got-want) > 1e-12 {
		t.Errorf("NyquistGain with feedback: got %v, want %v", got, want)
	}
}

func TestNyquistGain_MatchesAlternatingInput(t *testing.T) {
	// Drive the runtime with +1/-1 and compare the settled amplitude
	// against the analytic Nyquist gain.
	c := Coefficients{Poles: []float64{1, 0.3, 0.1}, Zeros: []float64{0.4, 0.2, 0.4}}
	want := c.NyquistGain()

	f, err := New(c)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	var y float64
	sign := 1.0
	for range 500 {
		y = f.ProcessSample(sign) * sign
		sign = -sign
	}
	if math.Abs(y-want) > 1e-9 {
		t.Errorf("settled alternating response: got %v, want %v", y, want)
	}
}

func TestNormalizeDCGain(t *testing.T) {
	c := lpfFixture()
	c.NormalizeDCGain()

	if got := c.DCGain(); math.Abs(got-1) > 1e-9 {
		t.Errorf("post-normalization DCGain: got %v, want 1", got)
	}
	// Poles are never touched by normalization.
	if c.Poles[0] != 1.5 || c.Poles[1] != -1.41421 || c.Poles[2] != 0.5 {
		t.Errorf("normalization changed poles: %v", c.Poles)
	}
}

func TestNormalizeNyquistGain(t *testing.T) {
	// Biquad HPF at the same design point.
	c := Coefficients{
		Poles: []float64{1.5, -1.41421, 0.5},
		Zeros: []float64{0.85355, -1.70711, 0.85355},
	}
	c.NormalizeNyquistGain()

	if got := c.NyquistGain(); math.Abs(got-1) > 1e-9 {
		t.Errorf("post-normalization NyquistGain: got %v, want 1", got)
	}
}

func TestNormalize_NoOpOnUndefinedGain(t *testing.T) {
	c := Coefficients{Poles: []float64{0, 1}, Zeros: []float64{2, 3}}
	c.NormalizeDCGain()
	if c.Zeros[0] != 2 || c.Zeros[1] != 3 {
		t.Errorf("normalize with NaN gain changed zeros: %v", c.Zeros)
	}

	// Negative gain is likewise left alone.
	c = Coefficients{Poles: []float64{1}, Zeros: []float64{-1}}
	c.NormalizeDCGain()
	if c.Zeros[0] != -1 {
		t.Errorf("normalize with negative gain changed zeros: %v", c.Zeros)
	}
}
