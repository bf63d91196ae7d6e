package main

import (
	"fmt"
	"io"
	"strings"

	"matchc/pkg/decisiontree"
	"matchc/pkg/lattice"
)

// renderTree writes an indented, human-readable rendering of tree to w,
// resolving each Success leaf's case index to its manifest handler via
// handlerFor.
func renderTree(w io.Writer, tree decisiontree.Tree, indent string, handlerFor func(int) string) {
	switch tree.Kind() {
	case decisiontree.KindFail:
		fmt.Fprintf(w, "%sfail\n", indent)
	case decisiontree.KindSuccess:
		fmt.Fprintf(w, "%ssuccess -> %s\n", indent, handlerFor(tree.CaseIndex()))
	case decisiontree.KindCheck:
		fmt.Fprintf(w, "%scheck %s is %s?\n", indent, describeOccurrence(tree.Occurrence()), describeType(tree.CheckType()))
		fmt.Fprintf(w, "%s  yes:\n", indent)
		renderTree(w, tree.SuccessBranch(), indent+"    ", handlerFor)
		fmt.Fprintf(w, "%s  no:\n", indent)
		renderTree(w, tree.FailBranch(), indent+"    ", handlerFor)
	}
}

// describeOccurrence renders an occurrence as a dotted/bracketed path
// rooted at "$", e.g. "$.items[]" or "$[0].kind".
func describeOccurrence(occ lattice.Occurrence) string {
	var b strings.Builder
	b.WriteString("$")
	for _, step := range occ {
		switch step.Kind {
		case lattice.AccessProperty:
			b.WriteString(".")
			b.WriteString(step.Property)
		case lattice.AccessIndex:
			fmt.Fprintf(&b, "[%d]", step.Index)
		case lattice.AccessArrayElement:
			b.WriteString("[]")
		case lattice.AccessRecordValues:
			b.WriteString("{}")
		}
	}
	return b.String()
}

// describeType renders a lattice.Type as a short, one-line description.
func describeType(t lattice.Type) string {
	switch x := t.(type) {
	case lattice.Unknown:
		return "unknown"
	case lattice.LiteralType:
		return describeLiteral(x.Value)
	case lattice.PrimitiveType:
		return describePrimitive(x.Prim)
	case lattice.TupleType:
		return fmt.Sprintf("tuple[%d]", len(x.Elements))
	case lattice.ArrayType:
		return "array"
	case lattice.ObjectType:
		names := make([]string, len(x.Fields))
		for i, f := range x.Fields {
			if f.Optional {
				names[i] = f.Name + "?"
			} else {
				names[i] = f.Name
			}
		}
		return fmt.Sprintf("object{%s}", strings.Join(names, ", "))
	case lattice.RecordType:
		return "record"
	default:
		return "type(?)"
	}
}

func describeLiteral(l lattice.Literal) string {
	switch l.Tag {
	case lattice.LitUndefined:
		return "undefined"
	case lattice.LitNull:
		return "null"
	case lattice.LitBoolean:
		return fmt.Sprintf("%v", l.Bool)
	case lattice.LitNumber:
		return fmt.Sprintf("%g", l.Number)
	case lattice.LitString:
		return fmt.Sprintf("%q", l.Str)
	case lattice.LitBigInt:
		return l.BigInt.String() + "n"
	default:
		return "literal(?)"
	}
}

func describePrimitive(p lattice.Primitive) string {
	switch p {
	case lattice.PrimString:
		return "string"
	case lattice.PrimNumber:
		return "number"
	case lattice.PrimBoolean:
		return "boolean"
	case lattice.PrimBigInt:
		return "bigint"
	default:
		return "primitive(?)"
	}
}
