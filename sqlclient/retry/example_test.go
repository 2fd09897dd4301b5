package retry_test

import (
	"fmt"
	"time"

	"github.com/opentds/lib-sqlclient/sqlclient/retry"
)

func ExampleNewExponential() {
	// Zero randomness pins every draw to the gap, so the sequence is
	// deterministic: min + (n²−1)·gap until a candidate would pass max.
	iv, err := retry.NewExponential(time.Second, 20*time.Second, 5*time.Second, retry.WithRandomness(0))
	if err != nil {
		panic(err)
	}

	for iv.MoveNext() {
		fmt.Println(iv.Current())
	}

	// Output:
	// 5s
	// 8s
	// 13s
	// 20s
}

func ExampleNewIncremental() {
	iv, err := retry.NewIncremental(time.Second, 8*time.Second, 5*time.Second, retry.WithRandomness(0))
	if err != nil {
		panic(err)
	}

	for iv.MoveNext() {
		fmt.Println(iv.Current())
	}

	// Output:
	// 5s
	// 6s
	// 7s
	// 8s
}
