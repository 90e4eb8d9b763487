package version

import "runtime"

// Filled at build time via -ldflags.
var (
	AppName        = "Herald"
	AppDescription = "A command herald for Discord: one command tree, every invocation surface."
	BuildDate      = ""
	GoVersion      = runtime.Version()
)
