// Package version carries build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/Sumatoshi-tech/staz/pkg/version.Version=v0.3.0"
package version

import "fmt"

// Build metadata. Defaults apply to `go run` and untagged builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the metadata on one line.
func String() string {
	return fmt.Sprintf("staz %s (commit: %s, built: %s)", Version, Commit, Date)
}
