package rc

import (
	"fmt"
	"testing"
)

func BenchmarkProcessSample(b *testing.B) {
	for _, order := range []int{1, 2, 4} {
		b.Run(fmt.Sprintf("order%d", order), func(b *testing.B) {
			f, err := New(100, 48000, order, 0)
			if err != nil {
				b.Fatalf("New: %v", err)
			}

			var y float64
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y = f.ProcessSample(float64(i & 0xff))
			}
			_ = y
		})
	}
}
