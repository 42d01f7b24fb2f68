package version

// Set via ldflags at build time.
var (
	SHA       = "development"
	BuildTime = "unknown"
)
