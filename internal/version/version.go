// Package version reports the server version, stamped at build time with
//
//	go build -ldflags "-X bennypowers.dev/abbrls/internal/version.Version=v1.0.0"
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// readBuildInfo is replaced in tests
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the stamped version, else the module version from the
// build info, else a dev version carrying the VCS revision when known
func GetVersion() string {
	if Version != "dev" {
		return Version
	}

	info, ok := readBuildInfo()
	if !ok {
		return Version
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var revision, modified string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		}
	}
	if revision == "" {
		return Version
	}
	if len(revision) > 7 {
		revision = revision[:7]
	}
	v := "dev-" + revision
	if modified == "true" {
		v += "-dirty"
	}
	return v
}

// GetFullVersion returns the version with the commit it was built from
func GetFullVersion() string {
	if GitCommit != "unknown" {
		return fmt.Sprintf("%s (commit: %s)", GetVersion(), GitCommit)
	}
	return GetVersion()
}

// GetBuildInfo returns version details for diagnostics
func GetBuildInfo() map[string]string {
	return map[string]string{
		"version":   GetVersion(),
		"gitCommit": GitCommit,
		"buildTime": BuildTime,
	}
}
