// Copyright 2026 Aleksandr Demakin. All rights reserved.

//go:build fixeddebug

package fixed

import (
	"fmt"

	mu "github.com/avdva/binfixed/internal/mathutil"
)

// lshiftCheck verifies that a left shift kept every bit: shifting the result
// back right must reproduce the original stored integer. A failure is a logic
// error in the caller that chose the shift amount.
func lshiftCheck(v Value, k int, res Value) {
	back := shiftRaw(res.raw, uint(res.format.storage), res.format.signed, -k)
	if back != v.raw {
		panic(fmt.Sprintf("fixed: left shift by %d loses high bits of %v value %d", k, v.format, v.Int64()))
	}
}

// radixShiftCheck verifies the radix-point shift of a reformat at the
// working width, before the narrowing cast. Narrowing may truncate, the
// shift itself must not.
func radixShiftCheck(v Value, target Format, working uint, delta int, wide, shifted uint64) {
	back := shiftRaw(shifted, working, v.format.signed, -delta)
	if back != wide&mu.Mask(working) {
		panic(fmt.Sprintf("fixed: reformat %v -> %v shifts value %d out of %d working bits",
			v.format, target, v.Int64(), working))
	}
}
