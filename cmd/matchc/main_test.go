package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestManifest(t *testing.T, dir string, body string) string {
	t.Helper()
	path := filepath.Join(dir, "match.yml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

const sampleManifest = `
name: status-router
default: handleUnknown
input:
  kind: unknown
cases:
  - pattern:
      kind: primitive
      primitive: string
    handler: handleString
  - pattern:
      kind: primitive
      primitive: number
    handler: handleNumber
`

func TestRunCompilePrintsTree(t *testing.T) {
	dir := t.TempDir()
	path := writeTestManifest(t, dir, sampleManifest)

	code, stdout, stderr := captureCLI(t, nil, []string{"compile", path})
	if code != 0 {
		t.Fatalf("compile exited %d (stderr: %q)", code, stderr)
	}
	if !strings.Contains(stdout, "handleString") || !strings.Contains(stdout, "handleNumber") {
		t.Fatalf("expected stdout to mention both handlers, got %q", stdout)
	}
}

func TestRunRunResolvesCase(t *testing.T) {
	dir := t.TempDir()
	path := writeTestManifest(t, dir, sampleManifest)

	code, stdout, stderr := captureCLI(t, strings.NewReader(`"hello"`), []string{"run", path})
	if code != 0 {
		t.Fatalf("run exited %d (stderr: %q)", code, stderr)
	}
	if !strings.Contains(stdout, "handleString") {
		t.Fatalf("expected stdout to mention handleString, got %q", stdout)
	}
}

func TestRunRunFallsBackToDefault(t *testing.T) {
	dir := t.TempDir()
	path := writeTestManifest(t, dir, sampleManifest)

	code, stdout, stderr := captureCLI(t, strings.NewReader(`true`), []string{"run", path})
	if code != 0 {
		t.Fatalf("run exited %d (stderr: %q)", code, stderr)
	}
	if !strings.Contains(stdout, "handleUnknown") {
		t.Fatalf("expected stdout to mention the default handler, got %q", stdout)
	}
}

func TestRunMissingArgsPrintsUsage(t *testing.T) {
	code, _, stderr := captureCLI(t, nil, nil)
	if code != 1 {
		t.Fatalf("got exit code %d, want 1", code)
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Fatalf("expected usage text, got %q", stderr)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	code, _, stderr := captureCLI(t, nil, []string{"bogus"})
	if code != 1 {
		t.Fatalf("got exit code %d, want 1", code)
	}
	if !strings.Contains(stderr, "unknown command") {
		t.Fatalf("expected an unknown-command message, got %q", stderr)
	}
}

func TestRunVersion(t *testing.T) {
	code, stdout, _ := captureCLI(t, nil, []string{"--version"})
	if code != 0 {
		t.Fatalf("got exit code %d, want 0", code)
	}
	if !strings.Contains(stdout, "matchc") {
		t.Fatalf("expected version string to mention matchc, got %q", stdout)
	}
}

func captureCLI(t *testing.T, stdin io.Reader, args []string) (int, string, string) {
	t.Helper()

	stdout := os.Stdout
	stderr := os.Stderr
	stdinOrig := os.Stdin

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("stdout pipe: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("stderr pipe: %v", err)
	}

	os.Stdout = wOut
	os.Stderr = wErr

	if stdin != nil {
		rIn, wIn, err := os.Pipe()
		if err != nil {
			t.Fatalf("stdin pipe: %v", err)
		}
		os.Stdin = rIn
		go func() {
			io.Copy(wIn, stdin)
			wIn.Close()
		}()
	}

	code := run(args)

	if err := wOut.Close(); err != nil {
		t.Fatalf("stdout close: %v", err)
	}
	if err := wErr.Close(); err != nil {
		t.Fatalf("stderr close: %v", err)
	}

	os.Stdout = stdout
	os.Stderr = stderr
	os.Stdin = stdinOrig

	outBytes, err := io.ReadAll(rOut)
	if err != nil {
		t.Fatalf("stdout read: %v", err)
	}
	errBytes, err := io.ReadAll(rErr)
	if err != nil {
		t.Fatalf("stderr read: %v", err)
	}

	return code, string(outBytes), string(errBytes)
}
