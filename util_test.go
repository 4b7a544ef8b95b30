// Copyright 2026 Aleksandr Demakin. All rights reserved.

package fixed

// negRaw converts a negative int64 to its two's-complement uint64 bits.
// A direct constant conversion like uint64(int64(-640)) does not compile.
func negRaw(i int64) uint64 {
	return uint64(i)
}
