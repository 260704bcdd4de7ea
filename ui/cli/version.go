// Copyright (c) 2026 Keymaster Team
// kvbrowse - read-only key-value database browser
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"runtime/debug"

	"github.com/toeirei/kvbrowse/buildvars"
)

const modulePath = "github.com/toeirei/kvbrowse"

func resolveVersion() string {
	v, commit, date := resolveBuildVersion(nil)
	if commit != "" && commit != v {
		v += " (" + commit + ")"
	}
	if date != "" {
		v += " built " + date
	}
	return v
}

// resolveBuildVersion prefers the link-time version, then the main module
// version, then a dependency entry for this module, then the commit.
// Link-time commit and date win over VCS build settings.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault("dev")
	commit := buildvars.Commit
	date := buildvars.Date

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}
	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		if resolvedVersion == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if commit == "" {
					commit = s.Value
					if len(commit) > 12 {
						commit = commit[:12]
					}
				}
			case "vcs.time":
				if date == "" {
					date = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && commit != "" {
		resolvedVersion = commit
	}
	return resolvedVersion, commit, date
}
