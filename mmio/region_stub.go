//go:build !linux

package mmio

// Physical memory mapping is Linux-only for now. The stubs keep the
// package (and the CLI built on it) compiling everywhere; the pointer
// and accessor layers have no platform dependency.

// MapRegion is unsupported on this platform.
func MapRegion(pr PhysicalRegion) (*Region, error) {
	return nil, ErrUnsupported
}

// MapAnonymous is unsupported on this platform.
func MapAnonymous(size uintptr) (*Region, error) {
	return nil, ErrUnsupported
}

func unmapRegion(mem []byte) error { return nil }
