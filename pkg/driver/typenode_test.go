package driver

import (
	"testing"

	"matchc/pkg/frontend"
)

func TestToTypeExprPrimitiveAndLiteral(t *testing.T) {
	n := TypeNode{Kind: "primitive", Primitive: "string"}
	got, err := n.ToTypeExpr()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != frontend.ExprPrimitive {
		t.Fatalf("got kind %v, want ExprPrimitive", got.Kind)
	}

	num := 65.0
	lit := TypeNode{Kind: "literal", LiteralNumber: &num}
	got, err = lit.ToTypeExpr()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != frontend.ExprLiteral {
		t.Fatalf("got kind %v, want ExprLiteral", got.Kind)
	}
}

func TestToTypeExprBigIntLiteral(t *testing.T) {
	n := TypeNode{Kind: "literal", LiteralBigInt: "123456789012345678901234567890"}
	got, err := n.ToTypeExpr()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != frontend.ExprLiteral {
		t.Fatalf("got kind %v, want ExprLiteral", got.Kind)
	}
	if got.Literal.BigInt == nil {
		t.Fatalf("expected a parsed big.Int value")
	}
}

func TestToTypeExprMalformedBigIntErrors(t *testing.T) {
	n := TypeNode{Kind: "literal", LiteralBigInt: "not-a-number"}
	if _, err := n.ToTypeExpr(); err == nil {
		t.Fatalf("expected an error for a malformed bigint literal")
	}
}

func TestToTypeExprObjectWithOptionalField(t *testing.T) {
	n := TypeNode{
		Kind: "object",
		Fields: []FieldNode{
			{Name: "id", Type: TypeNode{Kind: "primitive", Primitive: "number"}},
			{Name: "nickname", Type: TypeNode{Kind: "primitive", Primitive: "string"}, Optional: true},
		},
	}
	got, err := n.ToTypeExpr()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(got.Fields))
	}
	if got.Fields[0].Optional {
		t.Fatalf("id should not be optional")
	}
	if !got.Fields[1].Optional {
		t.Fatalf("nickname should be optional")
	}
}

func TestToTypeExprArrayMissingElementErrors(t *testing.T) {
	n := TypeNode{Kind: "array"}
	if _, err := n.ToTypeExpr(); err == nil {
		t.Fatalf("expected an error for an array node with no element")
	}
}

func TestToTypeExprRecordMissingValueErrors(t *testing.T) {
	n := TypeNode{Kind: "record"}
	if _, err := n.ToTypeExpr(); err == nil {
		t.Fatalf("expected an error for a record node with no value")
	}
}

func TestToTypeExprUnrecognizedKindErrors(t *testing.T) {
	n := TypeNode{Kind: "bogus"}
	if _, err := n.ToTypeExpr(); err == nil {
		t.Fatalf("expected an error for an unrecognized kind")
	}
}

func TestToTypeExprRecursiveAndIntersectionPassThrough(t *testing.T) {
	rec := TypeNode{Kind: "recursive", Recursive: "JsonValue"}
	got, err := rec.ToTypeExpr()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != frontend.ExprRecursive || got.Name != "JsonValue" {
		t.Fatalf("got %+v, want a recursive node named JsonValue", got)
	}

	inter := TypeNode{Kind: "intersection", Intersection: "Serializable"}
	got, err = inter.ToTypeExpr()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != frontend.ExprIntersection || got.Name != "Serializable" {
		t.Fatalf("got %+v, want an intersection node named Serializable", got)
	}
}

func TestToTypeExprUnknownDefaultsEmptyKind(t *testing.T) {
	n := TypeNode{}
	got, err := n.ToTypeExpr()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Kind != frontend.ExprUnknown {
		t.Fatalf("got kind %v, want ExprUnknown for an empty TypeNode", got.Kind)
	}
}
