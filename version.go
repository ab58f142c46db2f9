/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package nodeconf

import "runtime"

// Build metadata, overridable with -ldflags "-X github.com/suparena/nodeconf.GitCommit=...".
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// VersionInfo describes the library build.
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"gitCommit" yaml:"git_commit"`
	GoVersion string `json:"goVersion" yaml:"go_version"`
}

// GetVersionInfo returns the build metadata of this package.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
	}
}
