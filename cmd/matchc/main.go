package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"matchc/pkg/driver"
	"matchc/pkg/evalend"
)

const cliToolVersion = "matchc 0.0.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "compile":
		return runCompile(args[1:])
	case "run":
		return runRun(args[1:])
	case "deps":
		return runDeps(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		printUsage()
		return 1
	}
}

func runCompile(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "matchc compile requires exactly one manifest path")
		return 1
	}
	manifest, err := driver.LoadManifest(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load manifest: %v\n", err)
		return 1
	}

	result, diags, err := driver.CompileManifest(manifest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to compile manifest: %v\n", err)
		for _, d := range diags {
			fmt.Fprintf(os.Stderr, "  %s\n", d.String())
		}
		return 1
	}

	fmt.Fprintf(os.Stdout, "manifest: %s\n", manifest.Name)
	renderTree(os.Stdout, result.Tree, "", manifest.HandlerFor)
	return 0
}

func runRun(args []string) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "matchc run requires exactly one manifest path")
		return 1
	}
	manifest, err := driver.LoadManifest(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load manifest: %v\n", err)
		return 1
	}

	result, _, err := driver.CompileManifest(manifest)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to compile manifest: %v\n", err)
		return 1
	}

	var decoded any
	decoder := json.NewDecoder(os.Stdin)
	if err := decoder.Decode(&decoded); err != nil {
		fmt.Fprintf(os.Stderr, "failed to read JSON value from stdin: %v\n", err)
		return 1
	}

	caseIndex, ok := evalend.Eval(result.Tree, convertJSONValue(decoded))
	if !ok {
		fmt.Fprintln(os.Stdout, "fail")
		return 1
	}
	fmt.Fprintf(os.Stdout, "case %d -> %s\n", caseIndex, manifest.HandlerFor(caseIndex))
	return 0
}

func runDeps(args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "matchc deps requires a subcommand (install, update) and a manifest path")
		return 1
	}
	switch args[0] {
	case "install":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "matchc deps install requires exactly one manifest path")
			return 1
		}
		return runDepsInstall(args[1])
	case "update":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "matchc deps update requires a manifest path")
			return 1
		}
		return runDepsUpdate(args[1], args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown deps subcommand %q\n", args[0])
		return 1
	}
}

func runDepsInstall(manifestPath string) int {
	manifest, err := driver.LoadManifest(manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read manifest: %v\n", err)
		return 1
	}
	cacheDir, err := resolveMatchcHome()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve MATCHC_HOME: %v\n", err)
		return 1
	}

	fmt.Fprintf(os.Stdout, "Manifest: %s\n", manifest.Path)
	fmt.Fprintf(os.Stdout, "Pack: %s\n", manifest.Name)
	fmt.Fprintf(os.Stdout, "Dependencies: %d\n", len(manifest.Dependencies))
	fmt.Fprintf(os.Stdout, "Cache directory: %s\n", cacheDir)

	lockPath := filepath.Join(filepath.Dir(manifest.Path), "match.lock")
	lock, err := driver.LoadLockfile(lockPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read lockfile: %v\n", err)
		return 1
	}

	installer := newDependencyInstaller(manifest, cacheDir)
	changed, logs, err := installer.Install(lock)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve dependencies: %v\n", err)
		return 1
	}
	for _, line := range logs {
		fmt.Fprintln(os.Stdout, line)
	}

	if changed {
		if err := driver.WriteLockfile(lockPath, lock); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write lockfile: %v\n", err)
			return 1
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", lockPath)
	} else {
		fmt.Fprintf(os.Stdout, "%s already up to date\n", lockPath)
	}
	return 0
}

func runDepsUpdate(manifestPath string, targets []string) int {
	manifest, err := driver.LoadManifest(manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read manifest: %v\n", err)
		return 1
	}
	cacheDir, err := resolveMatchcHome()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to resolve MATCHC_HOME: %v\n", err)
		return 1
	}

	lockPath := filepath.Join(filepath.Dir(manifest.Path), "match.lock")
	lock, err := driver.LoadLockfile(lockPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read lockfile: %v\n", err)
		return 1
	}

	if len(targets) > 0 {
		wanted := make(map[string]struct{}, len(targets))
		for _, t := range targets {
			if _, declared := manifest.Dependencies[t]; !declared {
				fmt.Fprintf(os.Stderr, "dependency %q not declared in manifest\n", t)
				return 1
			}
			wanted[t] = struct{}{}
		}
		for name := range lock.Dependencies {
			if _, ok := wanted[name]; ok {
				delete(lock.Dependencies, name)
			}
		}
	} else {
		lock.Dependencies = map[string]driver.LockedDependency{}
	}

	installer := newDependencyInstaller(manifest, cacheDir)
	changed, logs, err := installer.Install(lock)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to update dependencies: %v\n", err)
		return 1
	}
	for _, line := range logs {
		fmt.Fprintln(os.Stdout, line)
	}

	if changed {
		if err := driver.WriteLockfile(lockPath, lock); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write lockfile: %v\n", err)
			return 1
		}
		fmt.Fprintf(os.Stdout, "Updated %s\n", lockPath)
	} else {
		fmt.Fprintln(os.Stdout, "Dependencies already up to date.")
	}
	return 0
}

func resolveMatchcHome() (string, error) {
	if home := strings.TrimSpace(os.Getenv("MATCHC_HOME")); home != "" {
		abs, err := filepath.Abs(home)
		if err != nil {
			return "", fmt.Errorf("resolve MATCHC_HOME %q: %w", home, err)
		}
		return abs, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home: %w", err)
	}
	return filepath.Join(userHome, ".matchc"), nil
}
