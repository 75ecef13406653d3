// Package hwreg performs the actual hardware register loads and stores.
//
// Everything above this package deals in opaque handles; this is the only
// code in the module that touches device memory. The contract for every
// function is the same: exactly one memory access instruction of the
// requested width, at exactly the given address, not reordered, elided or
// merged with neighbouring accesses.
//
// # Strategy selection
//
// Two interchangeable strategies are selected per target architecture at
// build time:
//
//   - Default (hwreg_generic.go): a plain dereference inside a
//     //go:noinline function. The call boundary prevents the compiler
//     from eliding, duplicating or folding the access into neighbouring
//     code, which is as close to a volatile access as Go gets.
//
//   - arm64 (hwreg_arm64.go + hwreg_arm64.s): hand-written assembly with
//     one fixed-offset load/store per width. This is a correctness fix,
//     not an optimization: a hypervisor that traps a stage-2 MMIO fault
//     can only emulate the access if the syndrome register fully
//     describes it, and instruction forms the compiler is free to pick
//     (writeback addressing, load/store pairs) are not described there.
//     The assembly pins the encoding per access width.
//
// The reference implementation below is compiled unconditionally so the
// test suite can compare the selected strategy against it on any target.
//
// # Failure semantics
//
// None. A wrong address or misaligned access is undefined hardware
// behaviour; the contracts of the pointer layer above prevent it from
// reaching this package.
package hwreg

import "unsafe"

// The ref* functions are the portable strategy, kept under a private name
// on every target. On targets using the default strategy the exported
// functions forward to these; on asm targets they exist only for the
// equivalence tests.
//
// noinline keeps the dereference behind an opaque call so the compiler
// cannot reason about, merge or elide the access. nosplit keeps stack
// growth (and its attendant spills) out of the access path.

//go:noinline
//go:nosplit
func refLoad8(addr uintptr) uint8 {
	return *(*uint8)(unsafe.Pointer(addr))
}

//go:noinline
//go:nosplit
func refLoad16(addr uintptr) uint16 {
	return *(*uint16)(unsafe.Pointer(addr))
}

//go:noinline
//go:nosplit
func refLoad32(addr uintptr) uint32 {
	return *(*uint32)(unsafe.Pointer(addr))
}

//go:noinline
//go:nosplit
func refLoad64(addr uintptr) uint64 {
	return *(*uint64)(unsafe.Pointer(addr))
}

//go:noinline
//go:nosplit
func refStore8(addr uintptr, v uint8) {
	*(*uint8)(unsafe.Pointer(addr)) = v
}

//go:noinline
//go:nosplit
func refStore16(addr uintptr, v uint16) {
	*(*uint16)(unsafe.Pointer(addr)) = v
}

//go:noinline
//go:nosplit
func refStore32(addr uintptr, v uint32) {
	*(*uint32)(unsafe.Pointer(addr)) = v
}

//go:noinline
//go:nosplit
func refStore64(addr uintptr, v uint64) {
	*(*uint64)(unsafe.Pointer(addr)) = v
}
