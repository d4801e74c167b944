package traverse

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the application version, set via ldflags.
	Version = "dev"
	// TraverseVersion is the traverse library version, set via ldflags.
	TraverseVersion = "dev"
	// CompiledAt is the build timestamp, set via ldflags.
	CompiledAt = "unknown"
)

// BuildInfo describes the running binary. NewApp supplies it to the container.
type BuildInfo struct {
	Version         string
	TraverseVersion string
	CompiledAt      string
}

// CurrentBuild returns the build information set via ldflags.
func CurrentBuild() BuildInfo {
	return BuildInfo{
		Version:         Version,
		TraverseVersion: TraverseVersion,
		CompiledAt:      CompiledAt,
	}
}
