// Copyright (c) 2026 Keymaster Team
// ssr - SSH known_hosts manager
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/toeirei/ssr/buildvars"
)

const modulePath = "github.com/toeirei/ssr"

var version = buildvars.VersionOrDefault("dev") // overridden by buildvars.Version at link time
var gitCommit = "dev"                            // set at build time with the short commit SHA
var buildDate = ""                               // set at build time (RFC3339)

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. A nil info reads build info from the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		info, _ = debug.ReadBuildInfo()
	}
	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Installed as a dependency of another main module.
		if resolvedVersion == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && s.Value != "":
				resolvedCommit = s.Value
			case s.Key == "vcs.time" && s.Value != "":
				resolvedDate = s.Value
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}

// versionString joins version, commit and date into one line.
func versionString(info *debug.BuildInfo) string {
	v, c, d := resolveBuildVersion(info)
	if c != "" && c != "dev" {
		v += " (" + c + ")"
	}
	if d != "" {
		v += " built: " + d
	}
	return v
}

func printVersion(w io.Writer) {
	_, _ = fmt.Fprintf(w, "ssr %s\n", versionString(nil))
}
