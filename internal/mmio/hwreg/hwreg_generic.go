//go:build !arm64

package hwreg

// Default strategy: forward to the noinline reference dereferences. The
// access instruction itself lives in the ref* function, so each call
// performs exactly one load or store of the requested width.

// Load8 performs a single 8-bit read at addr.
func Load8(addr uintptr) uint8 { return refLoad8(addr) }

// Load16 performs a single 16-bit read at addr.
func Load16(addr uintptr) uint16 { return refLoad16(addr) }

// Load32 performs a single 32-bit read at addr.
func Load32(addr uintptr) uint32 { return refLoad32(addr) }

// Load64 performs a single 64-bit read at addr.
func Load64(addr uintptr) uint64 { return refLoad64(addr) }

// Store8 performs a single 8-bit write at addr.
func Store8(addr uintptr, v uint8) { refStore8(addr, v) }

// Store16 performs a single 16-bit write at addr.
func Store16(addr uintptr, v uint16) { refStore16(addr, v) }

// Store32 performs a single 32-bit write at addr.
func Store32(addr uintptr, v uint32) { refStore32(addr, v) }

// Store64 performs a single 64-bit write at addr.
func Store64(addr uintptr, v uint64) { refStore64(addr, v) }
