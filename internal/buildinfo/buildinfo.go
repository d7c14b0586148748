// buildinfo.go - build-time feature banner for cmd binaries
//
// Mirrors the teacher's compiledFeatures/printFeatures convention: a
// package-level registry any file can append to via init(), printed as
// one banner at startup so a bug report shows exactly what was built in.

package buildinfo

import (
	"fmt"
	"runtime"
	"sort"
)

// Version is set at build time via -ldflags, matching the teacher's
// own Version constant convention; it defaults to "dev" for local
// builds run straight from source.
var Version = "dev"

var compiledFeatures []string

// RegisterFeature appends name to the banner printed by PrintBanner.
// Call it from an init() in a file gated by a build tag so the banner
// reflects exactly which optional code paths were compiled in (e.g.
// "hal: periph.io SPI/GPIO" vs "hal: mock (headless)").
func RegisterFeature(name string) {
	compiledFeatures = append(compiledFeatures, name)
}

// PrintBanner writes the version, Go toolchain, OS/arch, and registered
// feature list to stdout.
func PrintBanner(program string) {
	fmt.Printf("%s %s\n", program, Version)
	fmt.Printf("  Go version: %s\n", runtime.Version())
	fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Println()
	fmt.Println("Compiled features:")

	sort.Strings(compiledFeatures)
	for _, f := range compiledFeatures {
		fmt.Printf("  %s\n", f)
	}
	if len(compiledFeatures) == 0 {
		fmt.Println("  (none)")
	}
}
