package driver

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// Lockfile records the resolved source of every pattern-pack dependency a
// manifest declared, as of the last deps install or update. The installer
// re-resolves every dependency on each run and only compares the result
// with this record; compiling a manifest does not read it.
type Lockfile struct {
	GeneratedAt  time.Time
	Dependencies map[string]LockedDependency
}

// LockedDependency records how one dependency resolved: the git commit it
// pinned to, or the registry version it settled on, or the local path it
// was loaded from.
type LockedDependency struct {
	Name       string
	Resolved   string
	Source     string // "git", "registry", or "path"
	Git        string
	Rev        string
	Path       string
	Integrity  string
}

// NewLockfile builds a lockfile from a manifest's already-resolved
// dependency set. resolved maps dependency name to the concrete
// LockedDependency an installer produced for it.
func NewLockfile(resolved map[string]LockedDependency) *Lockfile {
	deps := make(map[string]LockedDependency, len(resolved))
	for name, dep := range resolved {
		dep.Name = name
		deps[name] = dep
	}
	return &Lockfile{
		Dependencies: deps,
	}
}

// LoadLockfile reads match.lock from disk. A missing file is not an error;
// callers should treat it as an empty lockfile needing a fresh resolve.
func LoadLockfile(path string) (*Lockfile, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Lockfile{Dependencies: map[string]LockedDependency{}}, nil
		}
		return nil, fmt.Errorf("lockfile: open %s: %w", path, err)
	}
	defer file.Close()

	var disk lockfileDisk
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&disk); err != nil {
		if err == io.EOF {
			return &Lockfile{Dependencies: map[string]LockedDependency{}}, nil
		}
		return nil, fmt.Errorf("lockfile: parse %s: %w", path, err)
	}

	lock := &Lockfile{Dependencies: make(map[string]LockedDependency, len(disk.Dependencies))}
	if disk.GeneratedAt != "" {
		ts, err := time.Parse(time.RFC3339, disk.GeneratedAt)
		if err != nil {
			return nil, fmt.Errorf("lockfile: generated_at: %w", err)
		}
		lock.GeneratedAt = ts
	}
	for name, d := range disk.Dependencies {
		lock.Dependencies[name] = LockedDependency{
			Name:      name,
			Resolved:  d.Resolved,
			Source:    d.Source,
			Git:       d.Git,
			Rev:       d.Rev,
			Path:      d.Path,
			Integrity: d.Integrity,
		}
	}
	lock.normalize()
	return lock, nil
}

// WriteLockfile serializes the lockfile to path, stamping GeneratedAt with
// the current time unless one was carried over from a prior load.
func WriteLockfile(path string, lock *Lockfile) error {
	lock.normalize()
	if lock.GeneratedAt.IsZero() {
		lock.GeneratedAt = time.Now().UTC()
	}

	disk := lockfileDisk{
		GeneratedAt:  lock.GeneratedAt.UTC().Format(time.RFC3339),
		Dependencies: make(map[string]lockfileDependency, len(lock.Dependencies)),
	}
	for name, d := range lock.Dependencies {
		disk.Dependencies[name] = lockfileDependency{
			Resolved:  d.Resolved,
			Source:    d.Source,
			Git:       d.Git,
			Rev:       d.Rev,
			Path:      d.Path,
			Integrity: d.Integrity,
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("lockfile: create %s: %w", path, err)
	}
	defer file.Close()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(disk); err != nil {
		return fmt.Errorf("lockfile: write %s: %w", path, err)
	}
	return encoder.Close()
}

// normalize sorts nothing in place (maps have no order) but guards against
// a nil Dependencies map so callers can range over it unconditionally.
func (l *Lockfile) normalize() {
	if l.Dependencies == nil {
		l.Dependencies = make(map[string]LockedDependency)
	}
}

// Names returns the dependency names in lockfile in sorted order, useful
// for deterministic reporting.
func (l *Lockfile) Names() []string {
	names := make([]string, 0, len(l.Dependencies))
	for name := range l.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type lockfileDisk struct {
	GeneratedAt  string                         `yaml:"generated_at"`
	Dependencies map[string]lockfileDependency  `yaml:"dependencies"`
}

type lockfileDependency struct {
	Resolved  string `yaml:"resolved"`
	Source    string `yaml:"source"`
	Git       string `yaml:"git,omitempty"`
	Rev       string `yaml:"rev,omitempty"`
	Path      string `yaml:"path,omitempty"`
	Integrity string `yaml:"integrity,omitempty"`
}
