//go:build linux

package mmio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kolkov/mmiosafe/mmio"
)

// TestMapAnonymous_RoundTrip exercises the full region plumbing over an
// anonymous mapping: map, derive a root pointer, access, unmap.
func TestMapAnonymous_RoundTrip(t *testing.T) {
	r, err := mmio.MapAnonymous(64)
	require.NoError(t, err)
	defer r.Close()

	require.Equal(t, uintptr(64), r.Size())
	require.NotZero(t, r.Base())

	p, err := mmio.RegionPointer[mmio.ReadPureWrite[uint32]](r, 8)
	require.NoError(t, err)
	require.Equal(t, r.Base()+8, p.Get().Addr())

	mmio.Write(p, uint32(0xC0FFEE))
	require.Equal(t, uint32(0xC0FFEE), mmio.Read[uint32](p))
}

// TestRegionPointer_Bounds verifies out-of-range objects are refused
// with an error, before any access.
func TestRegionPointer_Bounds(t *testing.T) {
	r, err := mmio.MapAnonymous(16)
	require.NoError(t, err)
	defer r.Close()

	_, err = mmio.RegionPointer[mmio.ReadPureWrite[uint64]](r, 12)
	require.ErrorIs(t, err, mmio.ErrOutOfRange)

	_, err = mmio.RegionPointer[mmio.ReadPureWrite[uint8]](r, 17)
	require.ErrorIs(t, err, mmio.ErrOutOfRange)

	// The last byte is reachable.
	_, err = mmio.RegionPointer[mmio.ReadPureWrite[uint8]](r, 15)
	require.NoError(t, err)
}

// TestRegion_Close verifies close semantics: derived construction stops,
// a second close reports the region closed, and the claimed interval
// becomes reusable.
func TestRegion_Close(t *testing.T) {
	r, err := mmio.MapAnonymous(32)
	require.NoError(t, err)

	require.NoError(t, r.Close())

	_, err = mmio.RegionPointer[mmio.ReadPureWrite[uint32]](r, 0)
	require.ErrorIs(t, err, mmio.ErrRegionClosed)

	require.ErrorIs(t, r.Close(), mmio.ErrRegionClosed)
}

// TestMapAnonymous_Empty verifies an empty mapping is refused.
func TestMapAnonymous_Empty(t *testing.T) {
	_, err := mmio.MapAnonymous(0)
	require.Error(t, err)
}
