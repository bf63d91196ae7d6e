package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"matchc/pkg/driver"
)

func dependencySpecForTest(url, rev string) driver.DependencySpec {
	return driver.DependencySpec{Git: url, Rev: rev}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// initGitRepo turns dir into a one-commit git repository and returns the
// commit's hash as a string.
func initGitRepo(t *testing.T, dir string) string {
	t.Helper()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("git init %s: %v", dir, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	if _, err := wt.Add("."); err != nil {
		t.Fatalf("add: %v", err)
	}
	sig := &object.Signature{Name: "test", Email: "test@example.com", When: time.Unix(0, 0)}
	hash, err := wt.Commit("initial", &git.CommitOptions{Author: sig})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	return hash.String()
}

func TestGitFetcherResolvesPinnedRev(t *testing.T) {
	root := t.TempDir()
	repoDir := filepath.Join(root, "repo")
	writeFile(t, filepath.Join(repoDir, "shapes.yml"), "name: geojson\n")
	rev := initGitRepo(t, repoDir)

	cacheDir := filepath.Join(root, "cache")
	fetcher := newGitFetcher(cacheDir)

	spec := dependencySpecForTest(repoDir, rev)
	dep, dir, err := fetcher.Fetch("geojson", &spec)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if dep.Resolved != rev {
		t.Fatalf("got resolved %q, want %q", dep.Resolved, rev)
	}
	if dep.Source != "git" {
		t.Fatalf("got source %q, want git", dep.Source)
	}
	if _, statErr := os.Stat(dir); statErr != nil {
		t.Fatalf("expected checkout dir to exist: %v", statErr)
	}
}

func TestGitFetcherRequiresRevTagOrBranch(t *testing.T) {
	root := t.TempDir()
	repoDir := filepath.Join(root, "repo")
	writeFile(t, filepath.Join(repoDir, "shapes.yml"), "name: geojson\n")
	initGitRepo(t, repoDir)

	cacheDir := filepath.Join(root, "cache")
	fetcher := newGitFetcher(cacheDir)

	bare := dependencySpecForTest(repoDir, "")
	if _, _, err := fetcher.Fetch("geojson", &bare); err == nil {
		t.Fatalf("expected an error when no rev/tag/branch is given")
	}
}

func TestSanitizePathSegmentReplacesUnsafeCharacters(t *testing.T) {
	got := sanitizePathSegment("refs/heads/feature x")
	if got == "" {
		t.Fatalf("expected a non-empty sanitized segment")
	}
	for _, r := range got {
		if r == '/' || r == ' ' {
			t.Fatalf("sanitized segment %q still contains an unsafe character", got)
		}
	}
}
