package frontend

import "matchc/pkg/lattice"

// Unk describes the unknown/top type.
func Unk() TypeExpr { return TypeExpr{Kind: ExprUnknown} }

// Lit describes a literal type.
func Lit(l lattice.Literal) TypeExpr { return TypeExpr{Kind: ExprLiteral, Literal: l} }

func LitNum(v float64) TypeExpr { return Lit(lattice.Num(v)) }
func LitStr(v string) TypeExpr  { return Lit(lattice.Str(v)) }
func LitBool(v bool) TypeExpr   { return Lit(lattice.Bool(v)) }
func LitUndef() TypeExpr        { return Lit(lattice.Undefined()) }
func LitNull() TypeExpr         { return Lit(lattice.Null()) }
func LitBig(v int64) TypeExpr   { return Lit(lattice.BigIntFromInt64(v)) }

// Prim describes a primitive type.
func Prim(p lattice.Primitive) TypeExpr { return TypeExpr{Kind: ExprPrimitive, Primitive: p} }

func PString() TypeExpr  { return Prim(lattice.PrimString) }
func PNumber() TypeExpr  { return Prim(lattice.PrimNumber) }
func PBigInt() TypeExpr  { return Prim(lattice.PrimBigInt) }
func PBoolean() TypeExpr { return Prim(lattice.PrimBoolean) }

// Tuple describes a fixed-length heterogeneous sequence.
func Tuple(elements ...TypeExpr) TypeExpr { return TypeExpr{Kind: ExprTuple, Elements: elements} }

// Arr describes a homogeneous variable-length sequence.
func Arr(element TypeExpr) TypeExpr { return TypeExpr{Kind: ExprArray, Element: &element} }

// Obj describes a structural object type.
func Obj(fields ...FieldExpr) TypeExpr { return TypeExpr{Kind: ExprObject, Fields: fields} }

// Req describes a required object field.
func Req(name string, value TypeExpr) FieldExpr { return FieldExpr{Name: name, Value: value} }

// Opt describes an optional object field.
func Opt(name string, value TypeExpr) FieldExpr {
	return FieldExpr{Name: name, Value: value, Optional: true}
}

// Rec describes a string-keyed dictionary type.
func Rec(value TypeExpr) TypeExpr { return TypeExpr{Kind: ExprRecord, Value: &value} }

// Union describes a finite union of alternatives.
func Union(members ...TypeExpr) TypeExpr { return TypeExpr{Kind: ExprUnion, Members: members} }

// Recursive describes a named type this front-end cannot lower because it
// refers to itself.
func Recursive(name string) TypeExpr { return TypeExpr{Kind: ExprRecursive, Name: name} }

// Intersection describes a named type this front-end cannot lower because
// it is an intersection of incompatible shapes.
func Intersection(name string) TypeExpr { return TypeExpr{Kind: ExprIntersection, Name: name} }
