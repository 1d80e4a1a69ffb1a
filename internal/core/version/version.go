// Package version reports what build is running
package version

import "runtime/debug"

// Service is the name the API reports for itself
const Service = "stapibridge-api"

// BuildInfo is served by /meta/version
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Go      string `json:"go,omitempty"`
}

// release builds set these with
// -ldflags "-X stapibridge/internal/core/version.version=v1.2.0 -X ...commit=abcd -X ...date=2025-09-02"
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// Info prefers the ldflags values and falls back to the VCS stamp go build embeds
func Info() BuildInfo {
	bi := BuildInfo{Service: Service, Version: version, Commit: commit, Date: date}
	if info, ok := debug.ReadBuildInfo(); ok {
		fill(&bi, info)
	}
	if bi.Commit == "" {
		bi.Commit = "none"
	}
	if bi.Date == "" {
		bi.Date = "unknown"
	}
	return bi
}

func fill(bi *BuildInfo, info *debug.BuildInfo) {
	bi.Go = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if bi.Commit == "" {
				bi.Commit = s.Value
			}
		case "vcs.time":
			if bi.Date == "" {
				bi.Date = s.Value
			}
		}
	}
}
