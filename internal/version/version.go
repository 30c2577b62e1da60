// Package version provides build-time version information.
//
// Variables are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/rickgao/numbeo-prices/internal/version.Version=1.0.0 \
//	                   -X github.com/rickgao/numbeo-prices/internal/version.Commit=$(git rev-parse --short HEAD)"
package version

// Build-time variables (set via ldflags)
var (
	// Version is the semantic version (e.g., "1.0.0")
	Version = "dev"

	// Commit is the git commit hash (short form)
	Commit = "unknown"
)

// Name is the program name reported in --version output and the User-Agent header.
const Name = "numbeo-prices"

// String returns a formatted version string.
func String() string {
	return Name + " " + Version + " (" + Commit + ")"
}

// UserAgent returns the User-Agent header value sent to the Numbeo API.
func UserAgent() string {
	return Name + "/" + Version
}
