// Copyright 2026 Aleksandr Demakin. All rights reserved.

//go:build !fixeddebug

package fixed

// lshiftCheck is a no-op unless the fixeddebug build tag is set.
func lshiftCheck(Value, int, Value) {}

func radixShiftCheck(Value, Format, uint, int, uint64, uint64) {}
