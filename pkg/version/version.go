// Package version exposes build metadata set at link time.
package version

//nolint:gochecknoglobals // Overridden with -ldflags "-X".
var (
	version = "dev"
	commit  = "none"
)

// GetVersion returns the release version, or "dev" for local builds.
func GetVersion() string {
	return version
}

// GetCommit returns the source commit the binary was built from.
func GetCommit() string {
	return commit
}
