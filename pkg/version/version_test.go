package version

import "testing"

func TestResolveUsesLdflags(t *testing.T) {
	orig := Version
	defer func() { Version = orig }()

	Version = "1.2.3"
	if got := Resolve(); got != "1.2.3" {
		t.Errorf("Resolve() = %q, want %q", got, "1.2.3")
	}
}

func TestString(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	defer func() { Version, Commit, Date = origVersion, origCommit, origDate }()

	Version, Commit, Date = "0.4.0", "abc123", "2024-05-01"
	want := "0.4.0 (commit abc123, built 2024-05-01)"
	if got := String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
