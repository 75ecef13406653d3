// read.go implements 'mmioctl read': one ungated register read of an
// explicit width.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kolkov/mmiosafe/mmio"
)

func newReadCommand() *cobra.Command {
	var (
		addrStr string
		width   int
	)

	cmd := &cobra.Command{
		Use:   "read",
		Short: "Read one register",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseAddr(addrStr)
			if err != nil {
				return err
			}
			if err := checkWidth(width); err != nil {
				return err
			}

			v, err := readRegister(addr, width)
			if err != nil {
				return err
			}

			log.Debug().Str("addr", fmt.Sprintf("%#x", addr)).Int("width", width).Msg("read ok")
			fmt.Printf("%#0*x\n", width/4+2, v)
			return nil
		},
	}
	cmd.Flags().StringVar(&addrStr, "addr", "", "register physical address")
	cmd.Flags().IntVar(&width, "width", 32, "access width in bits (8, 16, 32, 64)")
	cmd.MarkFlagRequired("addr")
	return cmd
}

// readRegister maps just the accessed bytes and performs a single read
// of the requested width.
func readRegister(addr uintptr, width int) (uint64, error) {
	region, err := mmio.MapRegion(mmio.PhysicalRegion{PA: addr, Size: uintptr(width / 8)})
	if err != nil {
		return 0, err
	}
	defer region.Close()

	switch width {
	case 8:
		p, err := mmio.RegionPointer[uint8](region, 0)
		if err != nil {
			return 0, err
		}
		return uint64(mmio.ReadUnsafe[uint8](p)), nil
	case 16:
		p, err := mmio.RegionPointer[uint16](region, 0)
		if err != nil {
			return 0, err
		}
		return uint64(mmio.ReadUnsafe[uint16](p)), nil
	case 32:
		p, err := mmio.RegionPointer[uint32](region, 0)
		if err != nil {
			return 0, err
		}
		return uint64(mmio.ReadUnsafe[uint32](p)), nil
	default:
		p, err := mmio.RegionPointer[uint64](region, 0)
		if err != nil {
			return 0, err
		}
		return mmio.ReadUnsafe[uint64](p), nil
	}
}
