// Package version resolves the build metadata stamped into the
// binary: ldflags values when a release build set them, module build
// info otherwise.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Info is the resolved build metadata.
type Info struct {
	Version string
	Commit  string
	BuiltAt string
}

// Resolve merges ldflags-stamped values with whatever the Go
// toolchain embedded. Explicit values win; empty ones fall back to
// the module version and VCS revision, then to "dev".
func Resolve(version, commit, builtAt string) Info {
	bi, ok := debug.ReadBuildInfo()

	if version == "" && ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		version = bi.Main.Version
	}
	if version == "" {
		version = "dev"
	}

	if commit == "" && ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				commit = s.Value
				break
			}
		}
	}

	return Info{Version: version, Commit: commit, BuiltAt: builtAt}
}

// Short returns the one-line form used for --version.
func (i Info) Short() string {
	commit := i.Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit == "" {
		return i.Version
	}
	return fmt.Sprintf("%s-%s", i.Version, commit)
}

// Detailed returns the multi-line form for the version command.
func (i Info) Detailed() string {
	commit := i.Commit
	if commit == "" {
		commit = "unknown"
	}
	builtAt := i.BuiltAt
	if builtAt == "" {
		builtAt = "unknown"
	}

	return fmt.Sprintf(`FusionTweaker - CPU/Northbridge P-state tuning
Version:    %s
Commit:     %s
Built:      %s
Go version: %s
OS/Arch:    %s/%s`,
		i.Version, commit, builtAt,
		runtime.Version(),
		runtime.GOOS, runtime.GOARCH)
}
