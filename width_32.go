// Copyright 2026 Aleksandr Demakin. All rights reserved.

//go:build fixed32

package fixed

// MaxStorageBits is the widest supported storage width when 64-bit
// formats are disabled.
const MaxStorageBits = 32
