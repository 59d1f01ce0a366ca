package cmplx_test

import (
	"fmt"

	"github.com/decalc/decmath/cmplx"
	"github.com/decalc/decmath/context"
)

func ExampleComplex_Div() {
	c := context.New(16, "")
	z, err := cmplx.NewInt64(3, 4).Div(c, cmplx.NewInt64(1, 2))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(z)
	// Output:
	// (2.2-0.4i)
}

func ExampleSqrt() {
	c := context.New(16, "")
	for _, s := range []string{"-4", "3+4i"} {
		z, err := cmplx.Sqrt(c, cmplx.MustParse(s))
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(z)
	}
	// Output:
	// (0+2i)
	// (2+1i)
}

func ExampleComplex_Log() {
	c := context.New(16, "")
	_, err := cmplx.Complex{}.Log(c)
	fmt.Println(err)
	// Output:
	// decmath: log: argument (0+0i) out of domain
}

func ExampleComplex_Text() {
	z := cmplx.MustParse("(2.71828182845904523536-0.5i)")
	fmt.Println(z.Text(5))
	fmt.Println(z)
	// Output:
	// (2.7183-0.5i)
	// (2.71828182845904523536-0.5i)
}
