package buildinfo

import "fmt"

// Version, Commit and Date are set at build time via -ldflags, e.g.
//
//	-ldflags "-X prism/internal/buildinfo.Version=v0.3.0"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String is the full identifier used in startup logs.
func String() string {
	return fmt.Sprintf("prism %s (commit %s, built %s)", Version, Commit, Date)
}
