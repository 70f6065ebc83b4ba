package version

import "runtime/debug"

// Version can be overridden at link time with
// -ldflags="-X github.com/osargv/osargv/cmd/osargv/version.Version=v0.1.0".
var Version string

func GetVersion() string {
	if Version != "" {
		return Version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(unknown)"
}
