package math_test

import (
	"fmt"

	"github.com/cockroachdb/apd"

	"github.com/decalc/decmath"
	"github.com/decalc/decmath/context"
	"github.com/decalc/decmath/math"
)

func ExampleSin() {
	c := context.New(34, "")
	z, err := math.Sin(c, new(apd.Decimal), decmath.New(1, 0))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(z)
	// Output:
	// 0.8414709848078965066525023216302990
}

func ExampleAsin() {
	c := context.New(10, "")
	_, err := math.Asin(c, new(apd.Decimal), decmath.MustParse("1.5"))
	fmt.Println(err)
	// Output:
	// decmath: asin: argument 1.5 out of domain
}

func ExampleAtan2() {
	c := context.New(20, "")
	for _, p := range [][2]int64{{1, 1}, {1, -1}, {-1, -1}, {0, -1}} {
		z, _ := math.Atan2(c, new(apd.Decimal), decmath.New(p[0], 0), decmath.New(p[1], 0))
		fmt.Printf("atan2(%d, %d) = %s\n", p[0], p[1], z)
	}
	// Output:
	// atan2(1, 1) = 0.78539816339744830962
	// atan2(1, -1) = 2.3561944901923449288
	// atan2(-1, -1) = -2.3561944901923449288
	// atan2(0, -1) = 3.1415926535897932385
}
