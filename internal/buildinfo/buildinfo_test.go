package buildinfo

import (
	"runtime/debug"
	"testing"
)

func stamp(t *testing.T, version, commit, date string) {
	t.Helper()
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
	Version, Commit, Date = version, commit, date
}

func TestShort(t *testing.T) {
	for _, c := range []struct {
		version, commit, want string
	}{
		{"v1.2.0", "abc", "v1.2.0"},
		{"dev", "abc", "abc"},
		{"dev", "unknown", "dev"},
		{"", "", "dev"},
	} {
		stamp(t, c.version, c.commit, "unknown")
		if got := Short(); got != c.want {
			t.Errorf("Short(%q, %q) = %q, want %q", c.version, c.commit, got, c.want)
		}
	}
}

func TestFromSettings(t *testing.T) {
	stamp(t, "dev", "unknown", "unknown")
	fromSettings([]debug.BuildSetting{
		{Key: "vcs.revision", Value: "0123456789abcdef"},
		{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
	})
	if Commit != "0123456789ab" || Date != "2026-01-02T03:04:05Z" {
		t.Errorf("Commit, Date = %q, %q", Commit, Date)
	}
	if got, want := Long(), "dev (0123456789ab, 2026-01-02T03:04:05Z)"; got != want {
		t.Errorf("Long = %q, want %q", got, want)
	}

	stamp(t, "v1", "feed", "today")
	fromSettings([]debug.BuildSetting{{Key: "vcs.revision", Value: "other"}})
	if Commit != "feed" {
		t.Errorf("ldflags commit overridden: %q", Commit)
	}
}
