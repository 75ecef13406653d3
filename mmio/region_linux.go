//go:build linux

package mmio

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/kolkov/mmiosafe/internal/mmio/callsite"
	"github.com/kolkov/mmiosafe/internal/mmio/owner"
)

// devMemPath is the physical memory device. O_SYNC keeps the kernel from
// giving us a cached mapping of device memory.
const devMemPath = "/dev/mem"

// MapRegion maps the physical MMIO range into the address space through
// /dev/mem and returns the live region. The mapping is page-granular;
// the returned Region hides the alignment slack and exposes exactly the
// requested range.
//
// The caller needs the privileges /dev/mem demands (typically root with
// CONFIG_STRICT_DEVMEM relaxed for the range).
func MapRegion(pr PhysicalRegion) (*Region, error) {
	if pr.Size == 0 {
		return nil, errors.New("mmio: cannot map an empty region")
	}

	fd, err := unix.Open(devMemPath, unix.O_RDWR|unix.O_SYNC|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("mmio: open %s: %w", devMemPath, err)
	}
	defer unix.Close(fd)

	page := uintptr(unix.Getpagesize())
	base := pr.PA &^ (page - 1)
	span := ((pr.PA + pr.Size + page - 1) &^ (page - 1)) - base

	mem, err := unix.Mmap(fd, int64(base), int(span),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmio: mmap %v: %w", pr, err)
	}

	return newRegion(mem, pr.PA-base, pr.Size)
}

// MapAnonymous maps a zero-filled, page-aligned anonymous region and
// returns it as a Region. Nothing about it is MMIO; it exists so tests,
// examples and tooling can exercise the full region plumbing without a
// device or /dev/mem privileges.
func MapAnonymous(size uintptr) (*Region, error) {
	if size == 0 {
		return nil, errors.New("mmio: cannot map an empty region")
	}

	page := uintptr(unix.Getpagesize())
	span := (size + page - 1) &^ (page - 1)

	mem, err := unix.Mmap(-1, 0, int(span),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("mmio: anonymous mmap of %d bytes: %w", size, err)
	}

	return newRegion(mem, 0, size)
}

// newRegion claims the mapped range and wraps it. On a claim conflict
// the mapping is returned to the kernel before the violation fires.
func newRegion(mem []byte, off, size uintptr) (*Region, error) {
	site := callsite.Capture(2)
	id, conflict := owner.Claim(uintptr(unsafe.Pointer(&mem[off])), size, site)
	if conflict != nil {
		unix.Munmap(mem)
		reportConflict(conflict)
	}
	return &Region{mem: mem, off: off, size: size, claim: id}, nil
}

func unmapRegion(mem []byte) error {
	return unix.Munmap(mem)
}
