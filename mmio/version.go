package mmio

import "runtime"

// Version information for the safe MMIO layer.
const (
	// Version is the current version of the module.
	Version = "0.1.0"

	// VersionMajor is the major version number.
	VersionMajor = 0

	// VersionMinor is the minor version number.
	VersionMinor = 1

	// VersionPatch is the patch version number.
	VersionPatch = 0
)

// Info describes the build of the MMIO layer in use.
type Info struct {
	// Version is the module version string.
	Version string

	// Accessor names the platform accessor strategy compiled in.
	Accessor string
}

// GetInfo returns information about the MMIO layer.
//
// Example:
//
//	info := mmio.GetInfo()
//	fmt.Printf("mmio %s (%s accessor)\n", info.Version, info.Accessor)
func GetInfo() Info {
	accessor := "default volatile"
	if runtime.GOARCH == "arm64" {
		accessor = "arm64 pinned-encoding"
	}
	return Info{
		Version:  Version,
		Accessor: accessor,
	}
}
