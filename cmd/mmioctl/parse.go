// parse.go holds the flag-value parsing helpers, kept free of cobra so
// they are unit-testable.
package main

import (
	"fmt"
	"strconv"
)

// parseAddr parses a physical address in any Go literal base, including
// digit-group underscores ("0x0900_0000").
func parseAddr(s string) (uintptr, error) {
	if s == "" {
		return 0, fmt.Errorf("address is required")
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("bad address %q: %w", s, err)
	}
	return uintptr(v), nil
}

// checkWidth validates an access width in bits.
func checkWidth(width int) error {
	switch width {
	case 8, 16, 32, 64:
		return nil
	}
	return fmt.Errorf("bad width %d: must be 8, 16, 32 or 64", width)
}

// parseValue parses a register value and checks it fits the access width.
func parseValue(s string, width int) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("value is required")
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("bad value %q: %w", s, err)
	}
	if width < 64 && v >= 1<<uint(width) {
		return 0, fmt.Errorf("value %#x does not fit in %d bits", v, width)
	}
	return v, nil
}
