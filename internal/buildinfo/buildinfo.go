// Package buildinfo identifies the running build in window titles and logs.
package buildinfo

import "log/slog"

// Version and Commit are set at link time:
//
//	go build -ldflags "-X tinec/internal/buildinfo.Version=v0.2.0 -X tinec/internal/buildinfo.Commit=$(git rev-parse HEAD)"
var (
	Version = "dev"
	Commit  = ""
)

// Title appends the build to a window title: "demo (v0.2.0)" for a tagged
// build, "demo (dev+1a2b3c4)" for an untagged one.
func Title(name string) string {
	return name + " (" + id() + ")"
}

// Attr groups the build identifiers for a log record.
func Attr() slog.Attr {
	return slog.Group("build", "version", Version, "commit", Commit)
}

func id() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	if v != "dev" || Commit == "" {
		return v
	}
	c := Commit
	if len(c) > 7 {
		c = c[:7]
	}
	return v + "+" + c
}
