package lattice

// This file is the type-intake builder surface: a constructor function
// for every Type and Literal variant, plus UnionFlatten to assemble union
// literals. Short names let callers (tests, pkg/frontend) read as fluent
// expressions instead of nested struct literals.

// U wraps one or more types into a Union literal.
func U(ts ...Type) Union { return Union(ts) }

// Unk constructs the unknown type.
func Unk() Type { return Unknown{} }

// Lit constructs a literal type.
func Lit(l Literal) Type { return LiteralType{Value: l} }

// LitNum, LitStr, LitBool and LitBig are convenience literal-type builders.
func LitNum(v float64) Type  { return Lit(Num(v)) }
func LitStr(v string) Type   { return Lit(Str(v)) }
func LitBool(v bool) Type    { return Lit(Bool(v)) }
func LitUndef() Type         { return Lit(Undefined()) }
func LitNullType() Type      { return Lit(Null()) }
func LitBig(v int64) Type    { return Lit(BigIntFromInt64(v)) }

// Prim constructs a primitive type.
func Prim(p Primitive) Type { return PrimitiveType{Prim: p} }

func PString() Type  { return Prim(PrimString) }
func PNumber() Type  { return Prim(PrimNumber) }
func PBigInt() Type  { return Prim(PrimBigInt) }
func PBoolean() Type { return Prim(PrimBoolean) }

// Tuple constructs a tuple type from its element unions.
func Tuple(elements ...Union) Type { return TupleType{Elements: elements} }

// Arr constructs an array type over an element union.
func Arr(element Union) Type { return ArrayType{Element: element} }

// Obj constructs an object type from fields, in the given order.
func Obj(fields ...Field) Type { return ObjectType{Fields: fields} }

// Req constructs a required object field.
func Req(name string, value Union) Field { return Field{Name: name, Value: value} }

// Opt constructs an optional object field.
func Opt(name string, value Union) Field { return Field{Name: name, Value: value, Optional: true} }

// Rec constructs a record type over a value union.
func Rec(value Union) Type { return RecordType{Value: value} }
