// dump.go implements 'mmioctl dump': a hex dump of a register range
// using 32-bit reads.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kolkov/mmiosafe/mmio"
)

const dumpWordsPerLine = 4

func newDumpCommand() *cobra.Command {
	var (
		addrStr string
		length  uint
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Hex-dump a register range with 32-bit reads",
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseAddr(addrStr)
			if err != nil {
				return err
			}
			if length == 0 || length%4 != 0 {
				return fmt.Errorf("bad length %d: must be a non-zero multiple of 4", length)
			}

			out, err := dumpRange(addr, uintptr(length))
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
	cmd.Flags().StringVar(&addrStr, "addr", "", "range physical base address")
	cmd.Flags().UintVar(&length, "len", 64, "range length in bytes (multiple of 4)")
	cmd.MarkFlagRequired("addr")
	return cmd
}

// dumpRange maps the range once and reads it word by word. Every access
// is an independent 32-bit load; the accessor never widens or merges
// them, which is the whole point of dumping device registers this way.
func dumpRange(addr, length uintptr) (string, error) {
	region, err := mmio.MapRegion(mmio.PhysicalRegion{PA: addr, Size: length})
	if err != nil {
		return "", err
	}
	defer region.Close()

	var b strings.Builder
	for off := uintptr(0); off < length; off += 4 {
		if off%(dumpWordsPerLine*4) == 0 {
			fmt.Fprintf(&b, "%#010x:", addr+off)
		}

		p, err := mmio.RegionPointer[uint32](region, off)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, " %08x", mmio.ReadUnsafe[uint32](p))

		if off%(dumpWordsPerLine*4) == (dumpWordsPerLine-1)*4 || off+4 >= length {
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}
