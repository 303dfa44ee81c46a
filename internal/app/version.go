package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are set with -ldflags "-X ...app.Version=1.2.0".
// When they are left unset, the VCS stamp recorded by the Go toolchain fills
// Commit and BuildTime.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion reports the running build for the health endpoint, the CLI
// --version flag and the startup log line.
func BuildVersion() string {
	info, _ := debug.ReadBuildInfo()
	return formatVersion(Version, Commit, BuildTime, info)
}

func formatVersion(version, commit, built string, info *debug.BuildInfo) string {
	if info != nil {
		var rev string
		var dirty bool
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				rev = s.Value
			case "vcs.time":
				if built == "unknown" {
					built = s.Value
				}
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
		if commit == "unknown" && rev != "" {
			commit = shortRevision(rev)
			if dirty {
				commit += "-dirty"
			}
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, built)
}

func shortRevision(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
