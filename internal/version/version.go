// Package version reports the build version of the wsecho binaries.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version and Commit can be set at build time:
//
//	go build -ldflags="-X github.com/muurk/wsecho/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/wsecho/internal/version.Commit=abc1234"
//
// Otherwise they are filled from the module and VCS build info.
var (
	Version = ""
	Commit  = ""
)

func init() {
	info, ok := debug.ReadBuildInfo()
	if ok {
		fillFromBuildInfo(info)
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

func fillFromBuildInfo(info *debug.BuildInfo) {
	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	if Commit != "" {
		return
	}

	var revision string
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if revision == "" {
		return
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	if dirty {
		revision += "-dirty"
	}
	Commit = revision
}

// Full returns the version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
