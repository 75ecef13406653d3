package mmio

import "unsafe"

// Handle is an opaque location within a live MMIO region: an address and
// the size of the addressed object. It is the only form in which device
// addresses travel through this package — never as a dereferenceable Go
// value.
//
// The address is held as an unsafe.Pointer rather than a uintptr so that
// test fixtures built over ordinary Go memory (FromPtr) keep their
// backing object alive and heap-resident. For real device addresses the
// pointer refers outside the Go heap and the runtime ignores it.
type Handle struct {
	p    unsafe.Pointer
	size uintptr
}

// Addr returns the raw address. It exists for diagnostics and for
// callers that feed the platform accessor directly; dereferencing the
// value through ordinary Go code is a contract violation.
func (h Handle) Addr() uintptr { return uintptr(h.p) }

// Size returns the byte size of the addressed object.
func (h Handle) Size() uintptr { return h.size }

// sub derives the handle of a contained object. Bounds are the caller's
// responsibility; both callers (projection, element access) have already
// validated off+size against h.size.
func (h Handle) sub(off, size uintptr) Handle {
	return Handle{p: unsafe.Add(h.p, off), size: size}
}
