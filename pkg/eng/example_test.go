package eng_test

import (
	"fmt"

	"github.com/matzehuels/mres/pkg/eng"
)

func ExampleFormat() {
	for _, x := range []float64{1500, 0.001, 160e-9, 0} {
		v, err := eng.Format(x)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Printf("%q\n", v.String())
	}

	_, err := eng.Format(1e30)
	fmt.Println(err)
	// Output:
	// "1.5 k"
	// "1.0 m"
	// "160.0 n"
	// "0.0 "
	// OUT_OF_RANGE: magnitude 1e+30 is outside the supported range 1e-24 to 1e27
}
