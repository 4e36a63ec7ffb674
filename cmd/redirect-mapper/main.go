package main

import (
	"os"
	"runtime/debug"

	"github.com/jsphpl/redirect-mapper/internal/cli"
)

// Set via -ldflags "-X main.version=... -X main.commit=... -X main.date=..."
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if info, ok := debug.ReadBuildInfo(); ok {
		version, commit, date = fromBuildInfo(info, version, commit, date)
	}

	cli.SetVersionInfo(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// fromBuildInfo fills in values not set at link time from the module and
// VCS stamps that `go install` and `go build` record.
func fromBuildInfo(info *debug.BuildInfo, version, commit, date string) (string, string, string) {
	if version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}
	if commit != "none" {
		return version, commit, date
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			commit = setting.Value
			if len(commit) > 7 {
				commit = commit[:7]
			}
		case "vcs.time":
			if date == "unknown" {
				date = setting.Value
			}
		case "vcs.modified":
			if setting.Value == "true" {
				version += "+dirty"
			}
		}
	}
	return version, commit, date
}
