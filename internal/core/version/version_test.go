package version

import (
	"runtime/debug"
	"testing"
)

func TestInfo_Defaults(t *testing.T) {
	bi := Info()
	if bi.Service != "stapibridge-api" || bi.Version != "dev" {
		t.Fatalf("Info = %+v", bi)
	}
	if bi.Commit == "" || bi.Date == "" {
		t.Fatalf("commit and date should never be blank: %+v", bi)
	}
}

func TestFill_VCSOnlyWhenUnset(t *testing.T) {
	info := &debug.BuildInfo{
		GoVersion: "go1.25.0",
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2025-06-01T12:00:00Z"},
		},
	}

	var bi BuildInfo
	fill(&bi, info)
	if bi.Commit != "abc123" || bi.Date != "2025-06-01T12:00:00Z" || bi.Go != "go1.25.0" {
		t.Fatalf("fill = %+v", bi)
	}

	pinned := BuildInfo{Commit: "release", Date: "2025-09-02"}
	fill(&pinned, info)
	if pinned.Commit != "release" || pinned.Date != "2025-09-02" {
		t.Fatalf("ldflags values were overwritten: %+v", pinned)
	}
}
