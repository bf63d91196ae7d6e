// Package diag is the structured diagnostic carried between a front-end's
// type-description lowering pass and its caller, and between the driver's
// manifest validation and its caller. It never terminates a program by
// itself; callers decide what to do with a non-empty list.
package diag

import "fmt"

// Diagnostic is one reported problem. Path names the position within the
// source structure being validated (a type-description path, a YAML key
// path, etc.); it is free-form and only for human consumption.
type Diagnostic struct {
	Message string
	Path    string
}

func (d Diagnostic) String() string {
	if d.Path == "" {
		return d.Message
	}
	return fmt.Sprintf("%s: %s", d.Path, d.Message)
}

// List is a slice of Diagnostic with convenience constructors.
type List []Diagnostic

// Add appends a new diagnostic built from a message and path.
func (l *List) Add(path, format string, args ...any) {
	*l = append(*l, Diagnostic{Message: fmt.Sprintf(format, args...), Path: path})
}

// OK reports whether the list is empty.
func (l List) OK() bool { return len(l) == 0 }

// WithPrefix returns a copy of l with prefix prepended to every
// diagnostic's path, for nesting a sub-pass's diagnostics under the
// caller's own position (e.g. a case's index ahead of its pattern path).
func (l List) WithPrefix(prefix string) List {
	if len(l) == 0 {
		return nil
	}
	out := make(List, len(l))
	for i, d := range l {
		if d.Path == "" {
			out[i] = Diagnostic{Message: d.Message, Path: prefix}
		} else {
			out[i] = Diagnostic{Message: d.Message, Path: prefix + "." + d.Path}
		}
	}
	return out
}
