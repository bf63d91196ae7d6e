package driver

import (
	"fmt"
	"strings"

	"matchc/pkg/frontend"
)

// TypeNode is the YAML-facing description of a type inside a manifest: an
// input type, or a case's pattern. It mirrors frontend.TypeExpr's shape
// but uses plain struct tags instead of a constructor DSL, since it is
// meant to be authored by hand in a package.yml-like file.
type TypeNode struct {
	Kind             string      `yaml:"kind"`
	Primitive        string      `yaml:"primitive,omitempty"`
	LiteralString    *string     `yaml:"literal_string,omitempty"`
	LiteralNumber    *float64    `yaml:"literal_number,omitempty"`
	LiteralBool      *bool       `yaml:"literal_bool,omitempty"`
	LiteralBigInt    string      `yaml:"literal_bigint,omitempty"`
	LiteralUndefined bool        `yaml:"literal_undefined,omitempty"`
	LiteralNull      bool        `yaml:"literal_null,omitempty"`
	Elements         []TypeNode  `yaml:"elements,omitempty"`
	Element          *TypeNode   `yaml:"element,omitempty"`
	Value            *TypeNode   `yaml:"value,omitempty"`
	Fields           []FieldNode `yaml:"fields,omitempty"`
	Members          []TypeNode  `yaml:"members,omitempty"`
	Recursive        string      `yaml:"recursive,omitempty"`
	Intersection     string      `yaml:"intersection,omitempty"`
}

// FieldNode is one named, ordered field of an "object" TypeNode.
type FieldNode struct {
	Name     string   `yaml:"name"`
	Type     TypeNode `yaml:"type"`
	Optional bool     `yaml:"optional,omitempty"`
}

// ToTypeExpr translates a TypeNode into the front-end's TypeExpr builder
// value, validating that every kind carries the fields it requires.
func (n TypeNode) ToTypeExpr() (frontend.TypeExpr, error) {
	switch strings.ToLower(strings.TrimSpace(n.Kind)) {
	case "unknown", "":
		return frontend.Unk(), nil
	case "primitive":
		switch n.Primitive {
		case "string":
			return frontend.PString(), nil
		case "number":
			return frontend.PNumber(), nil
		case "bigint":
			return frontend.PBigInt(), nil
		case "boolean":
			return frontend.PBoolean(), nil
		default:
			return frontend.TypeExpr{}, fmt.Errorf("driver: unrecognized primitive %q", n.Primitive)
		}
	case "literal":
		return n.literalTypeExpr()
	case "tuple":
		elems := make([]frontend.TypeExpr, len(n.Elements))
		for i, e := range n.Elements {
			ee, err := e.ToTypeExpr()
			if err != nil {
				return frontend.TypeExpr{}, fmt.Errorf("elements[%d]: %w", i, err)
			}
			elems[i] = ee
		}
		return frontend.Tuple(elems...), nil
	case "array":
		if n.Element == nil {
			return frontend.TypeExpr{}, fmt.Errorf("driver: array type node is missing \"element\"")
		}
		ee, err := n.Element.ToTypeExpr()
		if err != nil {
			return frontend.TypeExpr{}, fmt.Errorf("element: %w", err)
		}
		return frontend.Arr(ee), nil
	case "object":
		fields := make([]frontend.FieldExpr, len(n.Fields))
		for i, f := range n.Fields {
			fe, err := f.Type.ToTypeExpr()
			if err != nil {
				return frontend.TypeExpr{}, fmt.Errorf("fields[%d].%s: %w", i, f.Name, err)
			}
			if f.Optional {
				fields[i] = frontend.Opt(f.Name, fe)
			} else {
				fields[i] = frontend.Req(f.Name, fe)
			}
		}
		return frontend.Obj(fields...), nil
	case "record":
		if n.Value == nil {
			return frontend.TypeExpr{}, fmt.Errorf("driver: record type node is missing \"value\"")
		}
		ve, err := n.Value.ToTypeExpr()
		if err != nil {
			return frontend.TypeExpr{}, fmt.Errorf("value: %w", err)
		}
		return frontend.Rec(ve), nil
	case "union":
		members := make([]frontend.TypeExpr, len(n.Members))
		for i, m := range n.Members {
			me, err := m.ToTypeExpr()
			if err != nil {
				return frontend.TypeExpr{}, fmt.Errorf("members[%d]: %w", i, err)
			}
			members[i] = me
		}
		return frontend.Union(members...), nil
	case "recursive":
		return frontend.Recursive(n.Recursive), nil
	case "intersection":
		return frontend.Intersection(n.Intersection), nil
	default:
		return frontend.TypeExpr{}, fmt.Errorf("driver: unrecognized type node kind %q", n.Kind)
	}
}

func (n TypeNode) literalTypeExpr() (frontend.TypeExpr, error) {
	switch {
	case n.LiteralUndefined:
		return frontend.LitUndef(), nil
	case n.LiteralNull:
		return frontend.LitNull(), nil
	case n.LiteralString != nil:
		return frontend.LitStr(*n.LiteralString), nil
	case n.LiteralNumber != nil:
		return frontend.LitNum(*n.LiteralNumber), nil
	case n.LiteralBool != nil:
		return frontend.LitBool(*n.LiteralBool), nil
	case n.LiteralBigInt != "":
		v, err := parseBigIntDecimal(n.LiteralBigInt)
		if err != nil {
			return frontend.TypeExpr{}, fmt.Errorf("driver: literal_bigint %q: %w", n.LiteralBigInt, err)
		}
		return frontend.TypeExpr{Kind: frontend.ExprLiteral, Literal: v}, nil
	default:
		return frontend.TypeExpr{}, fmt.Errorf("driver: literal type node has no literal_* field set")
	}
}
