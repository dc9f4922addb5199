/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the mgclint CLI.
package version

import (
	"runtime/debug"
)

var (
	// Version information, set at build time via ldflags
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Get returns the version string for the application.
func Get() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}
	if GitCommit != "unknown" {
		return "dev-" + GitCommit
	}
	return Version
}

// BuildInfo holds version and build metadata.
type BuildInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// Info returns structured version and build information.
func Info() BuildInfo {
	info := BuildInfo{
		Version:   Get(),
		GitCommit: GitCommit,
		BuildTime: BuildTime,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
	}
	return info
}
