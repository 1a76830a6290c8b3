package material_test

import (
	"fmt"

	"github.com/matzehuels/mres/pkg/material"
)

func ExampleCatalog_Find() {
	c := material.Default()

	e, ok := c.Find("metal2")
	fmt.Println(ok, e.Kind, e.Metal.MinWidth)

	e, ok = c.Find("topvia1")
	fmt.Println(ok, e.Kind, e.Via.Resistance)

	_, ok = c.Find("poly")
	fmt.Println(ok)
	// Output:
	// true metal 200
	// true via 0.4
	// false
}
