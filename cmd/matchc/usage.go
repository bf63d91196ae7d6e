package main

import (
	"fmt"
	"os"
)

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  matchc compile <manifest.yml>")
	fmt.Fprintln(os.Stderr, "  matchc run <manifest.yml>        (reads a JSON value from stdin)")
	fmt.Fprintln(os.Stderr, "  matchc deps install <manifest.yml>")
	fmt.Fprintln(os.Stderr, "  matchc deps update <manifest.yml> [dependency ...]")
	fmt.Fprintln(os.Stderr, "  matchc --version")
}
