// Package version provides version information for the stack-builder CLI.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the semantic version, set via ldflags
	Version = "dev"
	// Commit is the git commit hash, set via ldflags
	Commit = "unknown"
	// Date is the build date, set via ldflags
	Date = "unknown"
)

// Resolve returns Version, falling back to the module version recorded in
// the build info for `go install` builds.
func Resolve() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

// String returns the full version line.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Resolve(), Commit, Date)
}
