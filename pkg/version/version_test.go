package version

import "testing"

func setBuild(t *testing.T, version, commit, date string) {
	t.Helper()
	oldV, oldC, oldD := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldV, oldC, oldD })
	Version, Commit, Date = version, commit, date
}

func TestFull(t *testing.T) {
	tests := []struct {
		name    string
		version string
		commit  string
		date    string
		want    string
	}{
		{"everything", "v1.2.0", "3f2a9c1d8e7b", "2026-01-05", "v1.2.0 (commit 3f2a9c1, built 2026-01-05)"},
		{"short_commit", "v1.2.0", "abc", "", "v1.2.0 (commit abc)"},
		{"date_only", "v1.2.0", "", "2026-01-05", "v1.2.0 (built 2026-01-05)"},
		{"version_only", "v1.2.0", "", "", "v1.2.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBuild(t, tt.version, tt.commit, tt.date)
			if got := Full(); got != tt.want {
				t.Errorf("Full() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShort_Fallback(t *testing.T) {
	setBuild(t, "", "", "")
	// Test binaries carry no module version, so the fallback applies.
	if got := Short(); got != "dev" {
		t.Errorf("Short() = %q, want dev", got)
	}
}
