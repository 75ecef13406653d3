//go:build arm64

package hwreg

// arm64 strategy, implemented in hwreg_arm64.s.
//
// When a guest access to emulated MMIO faults at stage 2, the hypervisor
// decodes it from ESR_EL2. The syndrome only carries a full description
// (width, sign extension, target register) for plain single-register
// loads and stores without writeback. The compiler is entitled to emit
// LDP/STP or pre/post-indexed forms for adjacent volatile-looking
// accesses, which a trap-and-emulate hypervisor cannot reconstruct. Each
// function below is pinned to the one instruction form that is always
// decodable, per access width.
//
// Validated widths: 8, 16, 32 and 64 bits (LDRB/LDRH/LDR Wn/LDR Xn and
// the matching stores).

// Load8 performs a single 8-bit read at addr (LDRB).
func Load8(addr uintptr) uint8

// Load16 performs a single 16-bit read at addr (LDRH).
func Load16(addr uintptr) uint16

// Load32 performs a single 32-bit read at addr (LDR Wn).
func Load32(addr uintptr) uint32

// Load64 performs a single 64-bit read at addr (LDR Xn).
func Load64(addr uintptr) uint64

// Store8 performs a single 8-bit write at addr (STRB).
func Store8(addr uintptr, v uint8)

// Store16 performs a single 16-bit write at addr (STRH).
func Store16(addr uintptr, v uint16)

// Store32 performs a single 32-bit write at addr (STR Wn).
func Store32(addr uintptr, v uint32)

// Store64 performs a single 64-bit write at addr (STR Xn).
func Store64(addr uintptr, v uint64)
