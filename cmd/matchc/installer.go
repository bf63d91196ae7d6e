package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"matchc/pkg/driver"
)

// dependencyInstaller resolves every pattern-pack dependency a manifest
// declares into a LockedDependency and folds the result into a Lockfile.
// It does not walk transitive dependency graphs: a pattern pack is a flat
// bundle of named type fragments, not a package with its own manifest, so
// there is nothing to recurse into.
type dependencyInstaller struct {
	manifest *driver.Manifest
	cacheDir string
}

func newDependencyInstaller(manifest *driver.Manifest, cacheDir string) *dependencyInstaller {
	return &dependencyInstaller{manifest: manifest, cacheDir: cacheDir}
}

// Install resolves every dependency in di.manifest and writes the result
// into lock, reporting whether lock.Dependencies changed and a line of
// progress output per dependency resolved.
func (di *dependencyInstaller) Install(lock *driver.Lockfile) (bool, []string, error) {
	names := make([]string, 0, len(di.manifest.Dependencies))
	for name := range di.manifest.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)

	var logs []string
	changed := false

	git := newGitFetcher(di.cacheDir)
	registry := newRegistryFetcher(di.cacheDir)

	for _, name := range names {
		spec := di.manifest.Dependencies[name]
		resolved, sourceDir, err := di.resolveOne(name, spec, git, registry)
		if err != nil {
			return changed, logs, fmt.Errorf("resolve %q: %w", name, err)
		}
		resolved.Name = name

		if existing, ok := lock.Dependencies[name]; !ok || existing != resolved {
			changed = true
		}
		lock.Dependencies[name] = resolved

		logs = append(logs, fmt.Sprintf("resolved %s -> %s (%s) at %s", name, resolved.Resolved, resolved.Source, sourceDir))
	}

	return changed, logs, nil
}

func (di *dependencyInstaller) resolveOne(name string, spec *driver.DependencySpec, git *gitFetcher, registry *registryFetcher) (driver.LockedDependency, string, error) {
	switch {
	case spec.Path != "":
		return di.resolvePath(name, spec)
	case spec.Git != "":
		return git.Fetch(name, spec)
	case spec.Version != "":
		return registry.Fetch(name, spec.Version)
	default:
		return driver.LockedDependency{}, "", fmt.Errorf("dependency %q has no version, git, or path source", name)
	}
}

func (di *dependencyInstaller) resolvePath(name string, spec *driver.DependencySpec) (driver.LockedDependency, string, error) {
	base := filepath.Dir(di.manifest.Path)
	abs := spec.Path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(base, spec.Path)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return driver.LockedDependency{}, "", fmt.Errorf("path dependency %q: %w", name, err)
	}
	if !info.IsDir() {
		return driver.LockedDependency{}, "", fmt.Errorf("path dependency %q: %s is not a directory", name, abs)
	}
	checksum, err := dirChecksum(abs)
	if err != nil {
		return driver.LockedDependency{}, "", fmt.Errorf("path dependency %q: %w", name, err)
	}
	return driver.LockedDependency{
		Resolved:  abs,
		Source:    "path",
		Path:      abs,
		Integrity: checksum,
	}, abs, nil
}
