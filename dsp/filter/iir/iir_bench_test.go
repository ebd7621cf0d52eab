package iir

import "testing"

func BenchmarkProcessSample_Biquad(b *testing.B) {
	f, err := New(Coefficients{
		Poles: []float64{1.5, -1.41421, 0.5},
		Zeros: []float64{0.14645, 0.29289, 0.14645},
	})
	if err != nil {
		b.Fatalf("New: %v", err)
	}

	var y float64
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		y = f.ProcessSample(float64(i & 0xff))
	}
	_ = y
}
