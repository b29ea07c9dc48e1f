// Package version reports which datautil build is running.
//
// Release builds stamp the variables with ldflags:
//
//	go build -ldflags "-X github.com/rickgao/datautils/internal/version.Version=0.1.0 \
//	                   -X github.com/rickgao/datautils/internal/version.Commit=$(git rev-parse --short HEAD) \
//	                   -X github.com/rickgao/datautils/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	         ./cmd/datautil
//
// Printed by `datautil -version`.
package version

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the short git hash.
	Commit = "unknown"

	// BuildTime is the UTC build time in RFC 3339.
	BuildTime = "unknown"
)

// String returns "VERSION (COMMIT) built BUILDTIME".
func String() string {
	return Version + " (" + Commit + ") built " + BuildTime
}
