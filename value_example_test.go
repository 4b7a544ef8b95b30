// Copyright 2026 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"fmt"
)

func ExampleValue() {
	// u8q3: unsigned, 8 bits, 3 of them fractional. Step 0.125, range [0, 31.875].
	f := MustNew(8, false, 3)

	v1 := FromRaw(f, 4) // raw bits, no scaling: 4 * 2^-3
	fmt.Printf("v1 = %v (raw %d, format %v)\n", v1.Float64(), v1.Raw(), v1.Format())

	v2 := MustFromInt(2) // derives the smallest format holding the integer 2
	fmt.Printf("v2 = %v (format %v)\n", v2.Float64(), v2.Format())

	sum := v1.Add(v2) // v2 is reformatted into v1's layout first
	fmt.Printf("v1 + v2 = %v (format %v)\n", sum.Float64(), sum.Format())

	prod := v1.Mul(v2) // the product format widens, nothing overflows
	fmt.Printf("v1 * v2 = %v (format %v)\n", prod.Float64(), prod.Format())

	wide := v1.Reformat(MustNew(16, true, 8))
	fmt.Printf("v1 as s16q8 = %v (raw %d)", wide.Float64(), wide.Raw())

	// Output:
	// v1 = 0.5 (raw 4, format u8q3)
	// v2 = 2 (format u2q0)
	// v1 + v2 = 2.5 (format u8q3)
	// v1 * v2 = 1 (format u10q3)
	// v1 as s16q8 = 0.5 (raw 128)
}
