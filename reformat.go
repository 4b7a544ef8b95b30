// Copyright 2026 Aleksandr Demakin. All rights reserved.

package fixed

import (
	"fmt"

	mu "github.com/avdva/binfixed/internal/mathutil"
)

// Reformat converts v to the target format, preserving the represented
// number up to the target's precision and range. The algorithm widens the
// stored integer to the wider of the two storage widths, shifts it by the
// fractional-bit delta to move the radix point, and narrows to the target
// width. Narrowing may silently truncate high bits; reformat never raises on
// magnitude overflow, that is the caller's ledger to balance.
// Reformat is the identity for equal formats, and lossless whenever the
// target can represent every value of the source.
// A fractional-bit delta at or beyond the working width is a programmer
// error and panics, like any other out-of-range shift.
func (v Value) Reformat(target Format) Value {
	if target == v.format {
		return v
	}
	working := max(uint(v.format.storage), uint(target.storage))
	wide := v.raw
	if v.format.signed {
		wide = uint64(mu.SignExtend(v.raw, uint(v.format.storage)))
	}
	delta := int(target.frac) - int(v.format.frac)
	if mu.AbsInt(delta) >= int(working) {
		panic(fmt.Sprintf("fixed: reformat %v -> %v: fractional delta %d out of range for %d working bits",
			v.format, target, delta, working))
	}
	shifted := shiftRaw(wide, working, v.format.signed, delta)
	if delta > 0 {
		radixShiftCheck(v, target, working, delta, wide, shifted)
	}
	return Value{format: target, raw: shifted & target.mask()}
}
