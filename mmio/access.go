package mmio

import (
	"runtime"
	"unsafe"

	"github.com/kolkov/mmiosafe/internal/mmio/hwreg"
)

// Read performs a register read through a unique pointer. The read may
// have device side effects, which is why exclusivity is required.
//
// The width is named explicitly at the call site (Go does not infer type
// arguments from constraint methods):
//
//	v := mmio.Read[uint32](status)
//
// Compiles only for markers that permit reading: ReadOnly, ReadPure,
// ReadWrite and ReadPureWrite.
func Read[T Width, M Readable[T]](p *UniquePointer[M]) T {
	p.checkLive("Read")
	return load[T](p.h)
}

// Write performs a register write through a unique pointer. Compiles
// only for markers that permit writing: WriteOnly, ReadWrite and
// ReadPureWrite.
func Write[T Width, M Writable[T]](p *UniquePointer[M], v T) {
	p.checkLive("Write")
	store(p.h, v)
}

// PureRead performs a side-effect-free register read through a shared
// pointer. Compiles only for markers whose read is pure: ReadPure and
// ReadPureWrite. A field whose read has side effects exposes no read at
// all through a shared pointer, even though a unique pointer can read it.
func PureRead[T Width, M PureReadable[T]](s SharedPointer[M]) T {
	return load[T](s.h)
}

// ReadUnsafe reads a T at the pointer's address, bypassing capability
// gating. The caller attests that a read of this width at this address
// is correct for the device. The only check that remains is that the
// width fits the addressed object, which fails before any access.
func ReadUnsafe[T Width, M any](p *UniquePointer[M]) T {
	p.checkLive("ReadUnsafe")
	checkWidth[T](p.h)
	return load[T](p.h)
}

// WriteUnsafe writes a T at the pointer's address, bypassing capability
// gating. Same contract as ReadUnsafe.
func WriteUnsafe[T Width, M any](p *UniquePointer[M], v T) {
	p.checkLive("WriteUnsafe")
	checkWidth[T](p.h)
	store(p.h, v)
}

// checkWidth rejects an access wider than the addressed object before
// any hardware is touched.
func checkWidth[T Width](h Handle) {
	var z T
	if size := unsafe.Sizeof(z); size > h.size {
		violationf("mmio: %d-byte access exceeds the %d-byte object at %#x",
			size, h.size, h.Addr())
	}
}

// load dispatches to the platform accessor by width. The KeepAlive pins
// heap-backed test objects across the raw-address access; for device
// addresses it is a no-op.
func load[T Width](h Handle) T {
	addr := uintptr(h.p)
	var v T
	switch unsafe.Sizeof(v) {
	case 1:
		v = T(hwreg.Load8(addr))
	case 2:
		v = T(hwreg.Load16(addr))
	case 4:
		v = T(hwreg.Load32(addr))
	default:
		v = T(hwreg.Load64(addr))
	}
	runtime.KeepAlive(h.p)
	return v
}

// store dispatches to the platform accessor by width.
func store[T Width](h Handle, v T) {
	addr := uintptr(h.p)
	switch unsafe.Sizeof(v) {
	case 1:
		hwreg.Store8(addr, uint8(v))
	case 2:
		hwreg.Store16(addr, uint16(v))
	case 4:
		hwreg.Store32(addr, uint32(v))
	default:
		hwreg.Store64(addr, uint64(v))
	}
	runtime.KeepAlive(h.p)
}
