// Command mmioctl reads and writes physical device registers from the
// command line, in the style of devmem.
//
// It maps the page around the requested address through mmio.MapRegion
// (/dev/mem, so root is normally required) and performs ungated accesses
// of an explicit width. There is no register-layout knowledge here and
// therefore no capability checking — the operator attests correctness,
// exactly like the ReadUnsafe/WriteUnsafe contract it is built on.
//
// Usage:
//
//	mmioctl read  --addr 0x0900_0018 --width 32
//	mmioctl write --addr 0x0900_0000 --width 32 --value 0x68
//	mmioctl dump  --addr 0x0900_0000 --len 64
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// log is configured in the root PersistentPreRun, before any subcommand
// runs.
var log zerolog.Logger

func main() {
	var verbose bool

	root := &cobra.Command{
		Use:           "mmioctl",
		Short:         "Read and write memory-mapped device registers",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newReadCommand(), newWriteCommand(), newDumpCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
