// accessor_probe reports which platform accessor strategy this binary
// was built with and runs a width round-trip over a synthetic buffer.
//
// Run it on a new target before trusting the module there:
//
//	go run tools/accessor_probe.go
//
// A new architecture must be validated against its hypervisor's
// trap-and-emulate decoding before the default strategy is assumed safe;
// this probe only proves the strategy is functionally a load/store, not
// that its encodings are trappable.
package main

import (
	"fmt"
	"runtime"

	"github.com/kolkov/mmiosafe/mmio"
)

func main() {
	strategy := "default (noinline dereference)"
	if runtime.GOARCH == "arm64" {
		strategy = "arm64 assembly (pinned single-instruction encodings)"
	}
	fmt.Printf("GOARCH:   %s\n", runtime.GOARCH)
	fmt.Printf("strategy: %s\n", strategy)

	type probe struct {
		B mmio.ReadPureWrite[uint8]
		_ [7]byte
		H mmio.ReadPureWrite[uint16]
		_ [6]byte
		W mmio.ReadPureWrite[uint32]
		_ [4]byte
		D mmio.ReadPureWrite[uint64]
	}
	p := mmio.FromPtr(&probe{})

	b := mmio.Field(p, func(r *probe) *mmio.ReadPureWrite[uint8] { return &r.B })
	mmio.Write(b, uint8(0xA5))
	h := mmio.Field(p, func(r *probe) *mmio.ReadPureWrite[uint16] { return &r.H })
	mmio.Write(h, uint16(0xBEEF))
	w := mmio.Field(p, func(r *probe) *mmio.ReadPureWrite[uint32] { return &r.W })
	mmio.Write(w, uint32(0x11223344))
	d := mmio.Field(p, func(r *probe) *mmio.ReadPureWrite[uint64] { return &r.D })
	mmio.Write(d, uint64(0x0123456789ABCDEF))

	ok := mmio.Read[uint8](b) == 0xA5 &&
		mmio.Read[uint16](h) == 0xBEEF &&
		mmio.Read[uint32](w) == 0x11223344 &&
		mmio.Read[uint64](d) == 0x0123456789ABCDEF

	fmt.Printf("8/16/32/64-bit round trip: %v\n", ok)
}
