package driver

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest represents the parsed contents of a match.yml compile job: the
// scrutinee's static input type, the ordered case list, and the
// pattern-pack dependencies the deps commands fetch. Case patterns cannot
// refer to definitions inside those packs.
type Manifest struct {
	Path         string
	Name         string
	Version      string
	License      string
	Authors      []string
	Input        TypeNode
	Cases        []CaseSpec
	Default      string
	Dependencies map[string]*DependencySpec
}

// CaseSpec is one case entry: the pattern it tests and the name of the
// handler a back-end should dispatch to when it matches. Handler is
// descriptive metadata only; this package never calls it.
type CaseSpec struct {
	Pattern TypeNode `yaml:"pattern"`
	Handler string   `yaml:"handler"`
}

// DependencySpec describes one pattern-pack dependency: version (registry),
// git (repo URL, optionally pinned by rev/tag/branch), or path (local
// override). Exactly one source kind may be set.
type DependencySpec struct {
	Version string
	Git     string
	Rev     string
	Tag     string
	Branch  string
	Path    string
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "match.yml failed validation"
	}
	lines := make([]string, 0, len(e.Issues)+1)
	lines = append(lines, "match.yml failed validation:")
	for _, issue := range e.Issues {
		lines = append(lines, "  - "+issue)
	}
	return strings.Join(lines, "\n")
}

// LoadManifest reads and validates a match.yml compile job from disk. The
// whole file is read up front so strict decoding (KnownFields) sees a
// complete document rather than a stream.
func LoadManifest(path string) (*Manifest, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("driver: manifest path is required")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("driver: resolving %s: %w", path, err)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("driver: reading %s: %w", absPath, err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var raw manifestFile
	switch err := decoder.Decode(&raw); {
	case errors.Is(err, io.EOF):
		return nil, fmt.Errorf("driver: %s contains no manifest document", absPath)
	case err != nil:
		return nil, fmt.Errorf("driver: decoding %s: %w", absPath, err)
	}

	manifest := raw.toManifest(absPath)
	if err := manifest.validate(); err != nil {
		return nil, err
	}
	return manifest, nil
}

func (m *Manifest) validate() error {
	var errs ValidationError
	if m.Name == "" {
		errs.Issues = append(errs.Issues, "name must be provided")
	}
	for i, author := range m.Authors {
		if author == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("authors[%d] must be a non-empty string", i))
		}
	}
	if len(m.Cases) == 0 {
		errs.Issues = append(errs.Issues, "cases must not be empty")
	}
	for i, c := range m.Cases {
		if c.Handler == "" {
			errs.Issues = append(errs.Issues, fmt.Sprintf("cases[%d] missing handler", i))
		}
		if _, err := c.Pattern.ToTypeExpr(); err != nil {
			errs.Issues = append(errs.Issues, fmt.Sprintf("cases[%d].pattern: %v", i, err))
		}
	}
	if _, err := m.Input.ToTypeExpr(); err != nil {
		errs.Issues = append(errs.Issues, fmt.Sprintf("input: %v", err))
	}

	for depName, dep := range m.Dependencies {
		if dep == nil {
			continue
		}
		for _, issue := range dep.validate() {
			errs.Issues = append(errs.Issues, fmt.Sprintf("dependencies.%s: %s", depName, issue))
		}
	}

	if len(errs.Issues) > 0 {
		return &errs
	}
	return nil
}

func (d *DependencySpec) validate() []string {
	var errs []string
	if d == nil {
		return errs
	}
	if d.Path != "" && (d.Version != "" || d.Git != "") {
		errs = append(errs, "path overrides cannot specify version or git source")
	}
	if d.Git != "" && d.Version != "" {
		errs = append(errs, "git dependencies cannot also specify version")
	}
	hasSource := d.Version != "" || d.Git != "" || d.Path != ""
	if !hasSource {
		errs = append(errs, "must specify version, git, or path")
	}
	if d.Git == "" && (d.Rev != "" || d.Tag != "" || d.Branch != "") {
		errs = append(errs, "rev/tag/branch only apply to git dependencies")
	}
	return errs
}

type manifestFile struct {
	Name         string        `yaml:"name"`
	Version      string        `yaml:"version"`
	License      string        `yaml:"license"`
	Authors      authorList    `yaml:"authors"`
	Input        TypeNode      `yaml:"input"`
	Cases        []CaseSpec    `yaml:"cases"`
	Default      string        `yaml:"default"`
	Dependencies dependencyMap `yaml:"dependencies"`
}

type dependencyMap map[string]*DependencySpec

// authorList accepts either a single YAML scalar ("Jane Doe") or a
// sequence of them; a single author is the common case for a pattern
// pack's manifest and shouldn't force the author into a one-item list.
type authorList []string

func (l *authorList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == 0 {
		*l = nil
		return nil
	}
	if value.Kind == yaml.ScalarNode {
		if value.Tag == "!!null" {
			*l = nil
			return nil
		}
		*l = authorList{value.Value}
		return nil
	}
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("manifest: authors must be a string or a list of strings, found %s", value.ShortTag())
	}
	names := make(authorList, len(value.Content))
	for i, node := range value.Content {
		if err := node.Decode(&names[i]); err != nil {
			return fmt.Errorf("manifest: authors[%d]: %w", i, err)
		}
	}
	*l = names
	return nil
}

// cleanAuthors trims whitespace and drops blank entries, leaving nil for
// an empty result so an unset authors field round-trips as absent.
func cleanAuthors(raw authorList) []string {
	var cleaned []string
	for _, name := range raw {
		if name = strings.TrimSpace(name); name != "" {
			cleaned = append(cleaned, name)
		}
	}
	return cleaned
}

func (dm *dependencyMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == 0 || (value.Kind == yaml.ScalarNode && value.Tag == "!!null") {
		*dm = make(dependencyMap)
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("manifest: dependencies must be a mapping")
	}
	result := make(dependencyMap, len(value.Content)/2)
	for i := 0; i < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return err
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return fmt.Errorf("manifest: dependency names must be non-empty")
		}
		var dep DependencySpec
		if err := dep.unmarshalYAML(valNode); err != nil {
			return fmt.Errorf("manifest: dependency %q: %w", key, err)
		}
		result[key] = &dep
	}
	*dm = result
	return nil
}

func (d *DependencySpec) unmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" || strings.TrimSpace(value.Value) == "" {
			*d = DependencySpec{}
			return nil
		}
		*d = DependencySpec{Version: strings.TrimSpace(value.Value)}
		return nil
	case yaml.MappingNode:
		var raw struct {
			Version string `yaml:"version"`
			Git     string `yaml:"git"`
			Rev     string `yaml:"rev"`
			Tag     string `yaml:"tag"`
			Branch  string `yaml:"branch"`
			Path    string `yaml:"path"`
		}
		if err := value.Decode(&raw); err != nil {
			return err
		}
		*d = DependencySpec{
			Version: strings.TrimSpace(raw.Version),
			Git:     strings.TrimSpace(raw.Git),
			Rev:     strings.TrimSpace(raw.Rev),
			Tag:     strings.TrimSpace(raw.Tag),
			Branch:  strings.TrimSpace(raw.Branch),
			Path:    strings.TrimSpace(raw.Path),
		}
		return nil
	default:
		return fmt.Errorf("expected string or mapping, found %s", value.ShortTag())
	}
}

func (mf manifestFile) toManifest(path string) *Manifest {
	deps := make(map[string]*DependencySpec, len(mf.Dependencies))
	for name, dep := range mf.Dependencies {
		deps[name] = dep
	}
	return &Manifest{
		Path:         path,
		Name:         strings.TrimSpace(mf.Name),
		Version:      strings.TrimSpace(mf.Version),
		License:      strings.TrimSpace(mf.License),
		Authors:      cleanAuthors(mf.Authors),
		Input:        mf.Input,
		Cases:        mf.Cases,
		Default:      strings.TrimSpace(mf.Default),
		Dependencies: deps,
	}
}
