// write.go implements 'mmioctl write': one ungated register write of an
// explicit width.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kolkov/mmiosafe/mmio"
)

func newWriteCommand() *cobra.Command {
	var (
		addrStr  string
		valueStr string
		width    int
	)

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write one register",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseAddr(addrStr)
			if err != nil {
				return err
			}
			if err := checkWidth(width); err != nil {
				return err
			}
			v, err := parseValue(valueStr, width)
			if err != nil {
				return err
			}

			if err := writeRegister(addr, width, v); err != nil {
				return err
			}
			log.Info().
				Str("addr", fmt.Sprintf("%#x", addr)).
				Str("value", fmt.Sprintf("%#x", v)).
				Int("width", width).
				Msg("write ok")
			return nil
		},
	}
	cmd.Flags().StringVar(&addrStr, "addr", "", "register physical address")
	cmd.Flags().StringVar(&valueStr, "value", "", "value to write")
	cmd.Flags().IntVar(&width, "width", 32, "access width in bits (8, 16, 32, 64)")
	cmd.MarkFlagRequired("addr")
	cmd.MarkFlagRequired("value")
	return cmd
}

// writeRegister maps just the accessed bytes and performs a single write
// of the requested width.
func writeRegister(addr uintptr, width int, v uint64) error {
	region, err := mmio.MapRegion(mmio.PhysicalRegion{PA: addr, Size: uintptr(width / 8)})
	if err != nil {
		return err
	}
	defer region.Close()

	switch width {
	case 8:
		p, err := mmio.RegionPointer[uint8](region, 0)
		if err != nil {
			return err
		}
		mmio.WriteUnsafe(p, uint8(v))
	case 16:
		p, err := mmio.RegionPointer[uint16](region, 0)
		if err != nil {
			return err
		}
		mmio.WriteUnsafe(p, uint16(v))
	case 32:
		p, err := mmio.RegionPointer[uint32](region, 0)
		if err != nil {
			return err
		}
		mmio.WriteUnsafe(p, uint32(v))
	default:
		p, err := mmio.RegionPointer[uint64](region, 0)
		if err != nil {
			return err
		}
		mmio.WriteUnsafe(p, v)
	}
	return nil
}
