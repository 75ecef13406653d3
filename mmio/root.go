package mmio

import (
	"unsafe"

	"github.com/kolkov/mmiosafe/internal/mmio/callsite"
	"github.com/kolkov/mmiosafe/internal/mmio/owner"
)

// NewUnique constructs the root unique pointer over the MMIO registers
// of type T at addr. This is the single trusted entry point of the
// package; everything derived from the result is safe if the contract
// below held at construction and holds for the pointer's lifetime.
//
// The caller must guarantee:
//
//   - addr is correctly aligned for T and maps device memory of at least
//     unsafe.Sizeof(T) bytes;
//   - the mapping stays live for as long as the pointer or anything
//     derived from it is used;
//   - no other pointer, reference or mapping is used to access the same
//     range while this pointer or its derivatives exist;
//   - the address is never converted to an ordinary Go reference.
//
// The range is claimed in the process-wide ledger; construction over a
// range that overlaps a live claim prints an aliasing report and panics
// with a *Violation. The claim lives until the program exits — hardware
// regions have device lifetime, not scope lifetime.
func NewUnique[T any](addr uintptr) *UniquePointer[T] {
	size := unsafe.Sizeof(*new(T))
	site := callsite.Capture(1)

	_, conflict := owner.Claim(addr, size, site)
	if conflict != nil {
		reportConflict(conflict)
	}

	return &UniquePointer[T]{
		h: Handle{p: unsafe.Pointer(addr), size: size}, //nolint:gosec // G103: device address, outside the Go heap
	}
}

// FromPtr wraps an ordinary Go object as a unique pointer. This exists
// for tests and examples that model a device with a synthetic buffer;
// real MMIO address space must never be reachable as a Go reference, so
// production code has no business calling it.
//
// FromPtr skips the claim ledger: synthetic fixtures are created and
// dropped freely, and Go gives no deterministic point at which to return
// a claim. The aliasing discipline for fixtures is the test's own.
func FromPtr[T any](obj *T) *UniquePointer[T] {
	return &UniquePointer[T]{
		h: Handle{p: unsafe.Pointer(obj), size: unsafe.Sizeof(*obj)},
	}
}
