// Package misc holds build time information shared by all commands.
package misc

import "runtime/debug"

// Overwritten at build time with ldflags.
var (
	appName = "lost"
	version = "dev"
	gitHash = ""
)

// GetAppName returns short program name used for logging, temporary
// files and reports.
func GetAppName() string {
	return appName
}

// GetVersion returns program version set at build time, falling back
// to module build info when built without ldflags.
func GetVersion() string {
	if version != "dev" {
		return version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return version
}

// GetGitHash returns abbreviated hash of the commit program was built
// from, if known.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 12 {
				return s.Value[:12]
			}
		}
	}
	return "unknown"
}
