package iir_test

import (
	"fmt"

	"github.com/GeneralEmbeddedCLibraries/filter/dsp/filter/iir"
)

// Build a unity-gain biquad low-pass from raw cookbook coefficients and
// run it sample by sample.
func Example() {
	c := iir.Coefficients{
		Poles: []float64{1.5, -1.41421, 0.5},
		Zeros: []float64{0.14645, 0.29289, 0.14645},
	}
	c.NormalizeDCGain()

	f, err := iir.New(c)
	if err != nil {
		panic(err)
	}

	var y float64
	for range 200 {
		y = f.ProcessSample(1)
	}

	fmt.Printf("DC gain: %.4f\n", c.DCGain())
	fmt.Printf("settled step response: %.4f\n", y)
	// Output:
	// DC gain: 1.0000
	// settled step response: 1.0000
}
