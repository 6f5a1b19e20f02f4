package version

// Overridden at build time via -ldflags "-X ...version.version=".
var version = "0.1.0"

func Version() string {
	return version
}
