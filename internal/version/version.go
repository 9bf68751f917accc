// Package version provides the version string printed by 101-linux.
//
// Release builds inject the version at link time:
//
//	go build -ldflags "-X github.com/linux101/cli/internal/version.Version=1.2.0" ./cmd/101-linux
package version

import (
	"runtime/debug"
	"strings"
)

// AppName is the program name used in the version string.
const AppName = "101-linux"

// Version is set via -ldflags at build time. When empty, the main module version recorded in
// the binary's build info is used.
var Version = ""

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Short returns the version number without the program name, "0.0.0" when nothing is known.
func Short() string {
	if Version != "" {
		return strings.TrimPrefix(Version, "v")
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return strings.TrimPrefix(info.Main.Version, "v")
	}
	return "0.0.0"
}

// String returns the version string, e.g. "101-linux v1.2.0".
func String() string {
	return AppName + " v" + Short()
}
