// Package version holds build metadata injected via ldflags.
package version

import "fmt"

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
)

// String formats the build metadata as "version (commit)".
func String() string {
	return fmt.Sprintf("%s (%s)", Version, Commit)
}
