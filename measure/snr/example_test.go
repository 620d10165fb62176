package snr_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/signalnoise/dsp/core"
	"github.com/cwbudde/signalnoise/measure/snr"
)

func ExampleDB() {
	ref := []float64{1, -1, 1, -1}
	noisy := []float64{1.1, -0.9, 1.1, -0.9}

	db, err := snr.DB(ref, noisy)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.1f dB\n", db)

	// Output:
	// 20.0 dB
}

func ExampleWithPolicy() {
	x := []float64{1, 2, 3}

	db, _ := snr.DB(x, x)
	fmt.Println(db)

	_, err := snr.DB(x, x, snr.WithPolicy(snr.PolicyError))
	fmt.Println(errors.Is(err, core.ErrDegenerateInput))

	// Output:
	// +Inf
	// true
}
