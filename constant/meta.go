// Package constant holds application identifiers and build metadata.
package constant

import _ "embed"

const (
	// App names the binary, the config file and the environment prefix.
	App = "vidrock"

	Version = "0.1.0"

	UserAgent = App + "/" + Version
)

// Set at link time with -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// runtime.GOOS values with platform specific behavior.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)

// AsciiArtLogo is printed above the root command help.
//
//go:embed ascii.txt
var AsciiArtLogo string
