package internal

import (
	"fmt"
	"runtime"
)

// Set at build time using -ldflags, e.g.
// go build -ldflags "-X 'github.com/lootvault/lootvault-go/internal.BuildTime=$(date -u)'"
var (
	Version = "v0.1.0"

	BuildType = "dev"

	// Time the binary was built
	BuildTime string

	GitCommit = "unknown"
)

// VersionInfo returns a formatted string with version information
func VersionInfo() string {
	return fmt.Sprintf(
		"Version: %s (%s)\nBuild Date: %s\nGit Commit: %s\nGo Version: %s\nOS/Arch: %s/%s",
		Version,
		BuildType,
		BuildTime,
		GitCommit,
		runtime.Version(),
		runtime.GOOS,
		runtime.GOARCH,
	)
}
