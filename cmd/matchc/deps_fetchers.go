package main

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"matchc/pkg/driver"
)

// registryFetcher resolves a version-pinned pattern pack out of a local
// registry cache (ABLE_REGISTRY-style discovery, renamed MATCHC_REGISTRY
// here). There is no network registry in this module; it is a directory
// convention a future package host could replace.
type registryFetcher struct {
	base string
}

var nullRegistryFetcher *registryFetcher

func newRegistryFetcher(cacheDir string) *registryFetcher {
	if cacheDir == "" {
		return nullRegistryFetcher
	}
	return &registryFetcher{base: cacheDir}
}

func (r *registryFetcher) Fetch(name, version string) (driver.LockedDependency, string, error) {
	if r == nil {
		return driver.LockedDependency{}, "", errors.New("registry fetcher not initialized")
	}
	registryDir := os.Getenv("MATCHC_REGISTRY")
	if registryDir == "" {
		registryDir = filepath.Join(r.base, "registry")
	}
	packDir := filepath.Join(registryDir, sanitizeName(name), version)
	info, err := os.Stat(packDir)
	if err != nil {
		return driver.LockedDependency{}, "", fmt.Errorf("registry: pattern pack %s@%s not found in %s: %w", name, version, packDir, err)
	}
	if !info.IsDir() {
		return driver.LockedDependency{}, "", fmt.Errorf("registry: expected directory at %s", packDir)
	}

	cacheDst := filepath.Join(r.base, "packs", sanitizeName(name), version)
	if err := copyOrSyncDir(packDir, cacheDst); err != nil {
		return driver.LockedDependency{}, "", fmt.Errorf("registry: copy %s -> %s: %w", packDir, cacheDst, err)
	}

	checksum, err := dirChecksum(cacheDst)
	if err != nil {
		return driver.LockedDependency{}, "", fmt.Errorf("registry: checksum %s: %w", cacheDst, err)
	}

	return driver.LockedDependency{
		Resolved:  version,
		Source:    "registry",
		Integrity: checksum,
	}, cacheDst, nil
}

// gitFetcher clones a pattern pack's repository at the pinned rev, tag,
// or branch into a per-dependency cache directory.
type gitFetcher struct {
	cacheDir string
}

func newGitFetcher(cacheDir string) *gitFetcher {
	if cacheDir == "" {
		return nil
	}
	return &gitFetcher{cacheDir: cacheDir}
}

func (g *gitFetcher) Fetch(name string, spec *driver.DependencySpec) (driver.LockedDependency, string, error) {
	if g == nil {
		return driver.LockedDependency{}, "", errors.New("git fetcher unavailable")
	}
	url := strings.TrimSpace(spec.Git)
	if url == "" {
		return driver.LockedDependency{}, "", fmt.Errorf("dependency %q: git url required", name)
	}

	baseDir := filepath.Join(g.cacheDir, "packs", sanitizeName(name))
	commit, err := ensureGitCheckout(baseDir, url, spec)
	if err != nil {
		return driver.LockedDependency{}, "", err
	}

	checkoutDir := filepath.Join(baseDir, sanitizePathSegment(commit))
	checksum, err := dirChecksum(checkoutDir)
	if err != nil {
		return driver.LockedDependency{}, "", err
	}

	return driver.LockedDependency{
		Resolved:  commit,
		Source:    "git",
		Git:       url,
		Rev:       commit,
		Integrity: checksum,
	}, checkoutDir, nil
}

func ensureGitCheckout(baseDir, url string, spec *driver.DependencySpec) (string, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return "", err
	}

	revision, err := gitRevisionFromSpec(spec)
	if err != nil {
		return "", err
	}

	explicitRev := strings.TrimSpace(spec.Rev)
	if explicitRev != "" {
		existing := filepath.Join(baseDir, sanitizePathSegment(explicitRev))
		if _, statErr := os.Stat(existing); statErr == nil {
			return explicitRev, nil
		}
	}

	tmpDir, err := os.MkdirTemp(baseDir, "git-fetch-*")
	if err != nil {
		return "", err
	}
	if err := os.RemoveAll(tmpDir); err != nil {
		return "", err
	}

	repo, err := git.PlainClone(tmpDir, false, &git.CloneOptions{
		URL:               url,
		Depth:             0,
		RecurseSubmodules: git.DefaultSubmoduleRecursionDepth,
	})
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("git clone %s: %w", url, err)
	}

	hash, err := repo.ResolveRevision(revision)
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("resolve revision %s: %w", revision, err)
	}

	commit := hash.String()
	targetDir := filepath.Join(baseDir, sanitizePathSegment(commit))
	if _, statErr := os.Stat(targetDir); statErr == nil {
		_ = os.RemoveAll(tmpDir)
		return commit, nil
	}

	worktree, err := repo.Worktree()
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", err
	}
	if err := worktree.Checkout(&git.CheckoutOptions{Hash: *hash, Force: true}); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("git checkout %s: %w", revision, err)
	}

	if err := os.Rename(tmpDir, targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", err
	}
	return commit, nil
}

func gitRevisionFromSpec(spec *driver.DependencySpec) (plumbing.Revision, error) {
	if rev := strings.TrimSpace(spec.Rev); rev != "" {
		return plumbing.Revision(rev), nil
	}
	if tag := strings.TrimSpace(spec.Tag); tag != "" {
		return plumbing.Revision("refs/tags/" + tag), nil
	}
	if branch := strings.TrimSpace(spec.Branch); branch != "" {
		return plumbing.Revision("refs/heads/" + branch), nil
	}
	return "", fmt.Errorf("git dependencies require rev, tag, or branch")
}

func copyOrSyncDir(src, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if err := copyOrSyncDir(srcPath, dstPath); err != nil {
				return err
			}
		} else if err := copyFile(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

// copyFile copies a single regular file, refusing symlinks and other
// special files a pack author should not be shipping in a pattern pack.
func copyFile(src, dst string) (err error) {
	info, err := os.Lstat(src)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("copy %s: not a regular file", src)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

// dirChecksum fingerprints a fetched pattern pack's contents: every
// regular file's path relative to root and its bytes, hashed in sorted
// path order so the result doesn't depend on directory-walk order and
// two files with the same name in different subdirectories don't
// collide into the same hash contribution.
func dirChecksum(root string) (string, error) {
	var relPaths []string
	if err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		relPaths = append(relPaths, rel)
		return nil
	}); err != nil {
		return "", err
	}
	sort.Strings(relPaths)

	h := sha256.New()
	for _, rel := range relPaths {
		data, err := os.ReadFile(filepath.Join(root, rel))
		if err != nil {
			return "", err
		}
		fmt.Fprintf(h, "%s\x00", rel)
		h.Write(data)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func sanitizeName(name string) string {
	return sanitizeSegment(name)
}

func sanitizePathSegment(segment string) string {
	segment = strings.TrimSpace(segment)
	if segment == "" {
		return "head"
	}
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, segment)
	if cleaned == "" {
		return "head"
	}
	return cleaned
}

func sanitizeSegment(seg string) string {
	seg = strings.TrimSpace(seg)
	return strings.ReplaceAll(seg, "-", "_")
}
