package mmio

// Width is the set of types a single register access can carry: the four
// access widths the platform accessor implements. Wider aggregates are
// reached by projection, never by a single access.
type Width interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// The marker types below are the capability vocabulary for register
// layouts. A register block is declared as an ordinary Go struct whose
// fields are marker-wrapped widths; each marker has exactly the memory
// layout of its payload, so the struct mirrors the hardware layout
// byte for byte.
//
// Capabilities are conferred by unexported methods: the access functions
// in access.go are constrained on Readable, Writable and PureReadable,
// and only the markers declared here carry the methods, so the table
// below is enforced by the compiler at each call site.
//
//	marker          Read (unique)  PureRead (shared)  Write
//	ReadOnly        yes            no                 no
//	ReadPure        yes            yes                no
//	WriteOnly       no             no                 yes
//	ReadWrite       yes            no                 yes
//	ReadPureWrite   yes            yes                yes
//
// The New* constructors exist for test fixtures and examples that build
// register images in ordinary memory; device-side cells are never
// constructed by Go code.

// ReadOnly marks a register whose read has device side effects and that
// cannot be written. The read requires exclusivity, so it is exposed
// through unique pointers only.
type ReadOnly[T Width] struct{ cell T }

// NewReadOnly returns a read-only cell holding v.
func NewReadOnly[T Width](v T) ReadOnly[T] { return ReadOnly[T]{cell: v} }

func (ReadOnly[T]) canRead(T) {}

// ReadPure marks a register whose read is free of side effects. Pure
// reads are exposed through both pointer kinds.
type ReadPure[T Width] struct{ cell T }

// NewReadPure returns a pure-read cell holding v.
func NewReadPure[T Width](v T) ReadPure[T] { return ReadPure[T]{cell: v} }

func (ReadPure[T]) canRead(T)     {}
func (ReadPure[T]) canPureRead(T) {}

// WriteOnly marks a register that can only be written, such as an
// interrupt-clear or doorbell register.
type WriteOnly[T Width] struct{ cell T }

// NewWriteOnly returns a write-only cell holding v.
func NewWriteOnly[T Width](v T) WriteOnly[T] { return WriteOnly[T]{cell: v} }

func (WriteOnly[T]) canWrite(T) {}

// ReadWrite marks a register with a side-effecting read and a write.
// Both operations require exclusivity; a shared pointer to such a field
// exposes nothing at all.
type ReadWrite[T Width] struct{ cell T }

// NewReadWrite returns a read-write cell holding v.
func NewReadWrite[T Width](v T) ReadWrite[T] { return ReadWrite[T]{cell: v} }

func (ReadWrite[T]) canRead(T)  {}
func (ReadWrite[T]) canWrite(T) {}

// ReadPureWrite marks a register with a pure read and a write: readable
// through either pointer kind, writable through a unique pointer.
type ReadPureWrite[T Width] struct{ cell T }

// NewReadPureWrite returns a pure-read, writable cell holding v.
func NewReadPureWrite[T Width](v T) ReadPureWrite[T] { return ReadPureWrite[T]{cell: v} }

func (ReadPureWrite[T]) canRead(T)     {}
func (ReadPureWrite[T]) canPureRead(T) {}
func (ReadPureWrite[T]) canWrite(T)    {}

// Readable constrains markers whose read is permitted through a unique
// pointer; the read may have device side effects.
type Readable[T Width] interface{ canRead(T) }

// Writable constrains markers that permit a write. Writes always require
// exclusivity, so no shared-pointer write exists for any marker.
type Writable[T Width] interface{ canWrite(T) }

// PureReadable constrains markers whose read is side-effect-free and may
// therefore also run through shared pointers.
type PureReadable[T Width] interface{ canPureRead(T) }
