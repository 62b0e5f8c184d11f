// Package cmd holds the build metadata stamped into the devx binary.
package cmd

// Set at release time via -ldflags "-X github.com/devx-cli/devx/cmd.Version=...".
var (
	// Version is the release version, "dev" for local builds.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
