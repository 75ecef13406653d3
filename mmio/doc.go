// Package mmio provides safe, capability-gated access to memory-mapped
// hardware registers.
//
// Device memory must never be reachable through an ordinary Go pointer
// dereference: the compiler is free to reorder, duplicate or elide plain
// memory operations, any of which corrupts hardware state. This package
// keeps device addresses inside opaque handles and routes every access
// through a platform accessor that is guaranteed to emit exactly one
// memory instruction of the requested width.
//
// # Pointer kinds
//
// A UniquePointer is an exclusive handle: it permits writes and reads
// that have side effects on the device (clearing a flag, popping a FIFO).
// A SharedPointer is freely duplicable and permits only side-effect-free
// reads, which is what makes duplication always safe; no locking is
// needed to share one across goroutines.
//
// Go has no move semantics, so exclusivity is a runtime convention:
// consuming operations (Split, Downgrade) mark the source pointer dead,
// and any later use panics with a *Violation. Root constructions are
// additionally checked against a process-wide claim ledger so two unique
// roots can never cover overlapping ranges. UniquePointer deliberately
// contains an atomic field, so `go vet` flags value copies of it.
//
// # Capability markers
//
// Register fields are declared with marker types that encode, in the
// type system, which accesses a field supports:
//
//	ReadOnly[T]       read (side-effecting)            via unique only
//	ReadPure[T]       read (pure)                      via unique or shared
//	WriteOnly[T]      write only
//	ReadWrite[T]      side-effecting read + write      via unique only
//	ReadPureWrite[T]  pure read + write
//
// The access functions are constrained on these markers, so an operation
// a field does not support fails to compile:
//
//	type uartRegs struct {
//		DR  mmio.ReadWrite[uint32]     // data; reading pops the FIFO
//		FR  mmio.ReadPure[uint32]      // flags; reading is harmless
//		ICR mmio.WriteOnly[uint32]     // interrupt clear
//	}
//
//	uart := mmio.NewUnique[uartRegs](0x0900_0000)
//	dr := mmio.Field(uart, func(r *uartRegs) *mmio.ReadWrite[uint32] { return &r.DR })
//	mmio.Write(dr, uint32('x'))
//	v := mmio.Read[uint32](dr)
//
// # Safety model
//
// Exactly one operation in the package is unsafe in the contractual
// sense: root construction (NewUnique, MapRegion). The caller attests
// that the range is mapped as device memory, correctly aligned, live for
// the pointer's lifetime and not aliased. Every operation derived from a
// valid root is safe; misuse of a static invariant that Go cannot reject
// at compile time (splitting a non-array, a selector escaping its
// aggregate, an out-of-range index, reuse of a consumed pointer) panics
// with a *Violation before any hardware is touched.
//
// There is no error return on the access path and no retry logic; a
// register access either happens exactly as requested or the program
// dies on a contract violation that upstream code let through.
package mmio
