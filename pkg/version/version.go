package version

import (
	"runtime/debug"

	"github.com/blang/semver"
)

// Version is a "vSEMVER" string, and is either populated at build-time using
// `--ldflags -X`, or at init()-time by inspecting the binary's own debug info.
var Version string

func init() {
	if Version == "" {
		if i, ok := debug.ReadBuildInfo(); ok {
			Version = i.Main.Version
		} else {
			Version = "(unknown version)"
		}
	}
}

// Structured returns Version as a semver.Version. Unparsable values (including
// the "(devel)" placeholder from runtime/debug) map to a 0.0.0 pre-release.
func Structured() semver.Version {
	if v, err := semver.ParseTolerant(Version); err == nil {
		return v
	}
	return semver.MustParse("0.0.0-devel")
}
