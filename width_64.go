// Copyright 2026 Aleksandr Demakin. All rights reserved.

//go:build !fixed32

package fixed

// MaxStorageBits is the widest supported storage width.
// Build with the fixed32 tag to cap it at 32 bits.
const MaxStorageBits = 64
