// Package buildinfo carries version metadata injected at build time.
package buildinfo

// Set via -ldflags "-X github.com/taniakun/taniakun/internal/buildinfo.Version=..."
// and friends; the defaults identify a from-source build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
