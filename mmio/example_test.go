package mmio_test

import (
	"fmt"

	"github.com/kolkov/mmiosafe/mmio"
)

// fifoRegs models a little transmit block: a data register whose read
// pops the FIFO, a pure status register and a write-only doorbell.
type fifoRegs struct {
	Data     mmio.ReadWrite[uint32]
	Status   mmio.ReadPure[uint32]
	Doorbell mmio.WriteOnly[uint32]
}

// Example_fieldProjection projects capability-gated fields out of a
// register block. The device is a synthetic buffer, which is the only
// kind of device an example should poke.
func Example_fieldProjection() {
	regs := &fifoRegs{Status: mmio.NewReadPure[uint32](0x01)}
	dev := mmio.FromPtr(regs)

	data := mmio.Field(dev, func(r *fifoRegs) *mmio.ReadWrite[uint32] { return &r.Data })
	status := mmio.Field(dev, func(r *fifoRegs) *mmio.ReadPure[uint32] { return &r.Status })

	mmio.Write(data, uint32(0x68656c6c))
	fmt.Printf("data   = %#x\n", mmio.Read[uint32](data))
	fmt.Printf("status = %#x\n", mmio.Read[uint32](status))

	// Output:
	// data   = 0x68656c6c
	// status = 0x1
}

// Example_sharedReaders downgrades a unique pointer and hands clones to
// independent readers; only pure reads exist on the clones.
func Example_sharedReaders() {
	cell := mmio.NewReadPureWrite[uint32](0)
	owner := mmio.FromPtr(&cell)
	mmio.Write(owner, uint32(42))

	shared := owner.Downgrade()
	a, b := shared.Clone(), shared.Clone()

	fmt.Println(mmio.PureRead[uint32](a), mmio.PureRead[uint32](b))

	// Output:
	// 42 42
}
