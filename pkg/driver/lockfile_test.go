package driver

import (
	"path/filepath"
	"testing"
)

func TestLoadLockfileMissingFileIsEmpty(t *testing.T) {
	lock, err := LoadLockfile(filepath.Join(t.TempDir(), "match.lock"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lock.Dependencies) != 0 {
		t.Fatalf("expected an empty lockfile, got %d dependencies", len(lock.Dependencies))
	}
}

func TestWriteThenLoadLockfileRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "match.lock")
	lock := NewLockfile(map[string]LockedDependency{
		"json-shapes": {
			Resolved: "1.2.3",
			Source:   "registry",
		},
		"remote-shapes": {
			Resolved: "abcdef1234",
			Source:   "git",
			Git:      "https://example.com/shapes.git",
			Rev:      "abcdef1234",
		},
	})

	if err := WriteLockfile(path, lock); err != nil {
		t.Fatalf("unexpected error writing lockfile: %v", err)
	}

	loaded, err := LoadLockfile(path)
	if err != nil {
		t.Fatalf("unexpected error loading lockfile: %v", err)
	}
	if loaded.GeneratedAt.IsZero() {
		t.Fatalf("expected GeneratedAt to be stamped")
	}
	if len(loaded.Dependencies) != 2 {
		t.Fatalf("got %d dependencies, want 2", len(loaded.Dependencies))
	}
	dep, ok := loaded.Dependencies["remote-shapes"]
	if !ok {
		t.Fatalf("missing remote-shapes dependency")
	}
	if dep.Git != "https://example.com/shapes.git" || dep.Rev != "abcdef1234" {
		t.Fatalf("got %+v", dep)
	}
}

func TestLockfileNamesAreSorted(t *testing.T) {
	lock := NewLockfile(map[string]LockedDependency{
		"zeta":  {Resolved: "1.0.0", Source: "registry"},
		"alpha": {Resolved: "1.0.0", Source: "registry"},
	})
	names := lock.Names()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Fatalf("got %v, want sorted [alpha zeta]", names)
	}
}
