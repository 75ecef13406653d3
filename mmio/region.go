package mmio

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/kolkov/mmiosafe/internal/mmio/owner"
)

// PhysicalRegion describes an MMIO range by physical address, before any
// mapping exists. It is a plain description — holding one grants no
// access. MapRegion turns it into a live Region.
type PhysicalRegion struct {
	// PA is the physical base address of the device registers.
	PA uintptr

	// Size is the extent of the register range in bytes.
	Size uintptr
}

// String formats the region as a half-open physical interval.
func (r PhysicalRegion) String() string {
	return fmt.Sprintf("[%#x, %#x)", r.PA, r.PA+r.Size)
}

var (
	// ErrRegionClosed is returned for operations on an unmapped region.
	ErrRegionClosed = errors.New("mmio: region is closed")

	// ErrOutOfRange is returned when a requested object does not fit the
	// mapped range.
	ErrOutOfRange = errors.New("mmio: outside the mapped region")

	// ErrUnsupported is returned by MapRegion and MapAnonymous on
	// platforms without memory-map support.
	ErrUnsupported = errors.New("mmio: physical memory mapping is not supported on this platform")
)

// Region is a live mapping of an MMIO range into the address space. The
// region layer is the operational boundary of the package: mapping can
// fail, so everything here returns errors, unlike the access path, which
// has none.
//
// A Region owns its mapping and the ledger claim over it; Close releases
// both. The registers behind the mapping are never owned and never freed.
type Region struct {
	mu     sync.Mutex
	mem    []byte  // whole page-aligned mapping
	off    uintptr // offset of the requested base within mem
	size   uintptr // requested size, may be smaller than len(mem)
	claim  uint64
	closed bool
}

// Base returns the virtual address of the region's first byte.
func (r *Region) Base() uintptr {
	return uintptr(unsafe.Pointer(&r.mem[0])) + r.off
}

// Size returns the usable size of the region in bytes.
func (r *Region) Size() uintptr { return r.size }

// Close releases the ledger claim and unmaps the region. Every pointer
// previously derived from the region becomes invalid; using one is a
// contract violation that nothing can detect. Close is not idempotent:
// a second call reports ErrRegionClosed.
func (r *Region) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrRegionClosed
	}
	r.closed = true
	owner.Release(r.claim)
	return unmapRegion(r.mem)
}

// RegionPointer constructs a root unique pointer to a T at off bytes
// into the region. It is part of the trusted root surface: each call is
// a root construction and the caller attests that the resulting pointer
// does not alias any other live unique pointer into the region.
//
// An object that does not fit the mapped range is refused with
// ErrOutOfRange before any access could happen.
func RegionPointer[T any](r *Region, off uintptr) (*UniquePointer[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, ErrRegionClosed
	}

	size := unsafe.Sizeof(*new(T))
	if off > r.size || off+size > r.size {
		return nil, fmt.Errorf("%w: object of %d bytes at offset %#x in a %d-byte region",
			ErrOutOfRange, size, off, r.size)
	}

	return &UniquePointer[T]{
		h: Handle{p: unsafe.Pointer(&r.mem[r.off+off]), size: size},
	}, nil
}
