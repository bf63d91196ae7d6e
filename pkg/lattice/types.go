package lattice

// TypeKind tags the outer constructor of a Type.
type TypeKind int

const (
	KindUnknown TypeKind = iota
	KindLiteral
	KindPrimitive
	KindTuple
	KindArray
	KindObject
	KindRecord
)

func (k TypeKind) String() string {
	switch k {
	case KindUnknown:
		return "unknown"
	case KindLiteral:
		return "literal"
	case KindPrimitive:
		return "primitive"
	case KindTuple:
		return "tuple"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindRecord:
		return "record"
	default:
		return "type(?)"
	}
}

// Type is the closed, finitely recursive sum of unknown, literal,
// primitive, tuple, array, object, record. Every variant below implements
// it; there is no escape hatch for adding new variants outside this
// package. Recursive and generic type descriptions are unrepresentable
// here by construction; see pkg/frontend.Lower for how that is surfaced.
type Type interface {
	Kind() TypeKind
}

// Unknown is the top type: every value is of type Unknown.
type Unknown struct{}

// Kind implements Type.
func (Unknown) Kind() TypeKind { return KindUnknown }

// LiteralType is exactly the value carried by Value.
type LiteralType struct {
	Value Literal
}

// Kind implements Type.
func (LiteralType) Kind() TypeKind { return KindLiteral }

// PrimitiveType is any value of primitive kind Prim.
type PrimitiveType struct {
	Prim Primitive
}

// Kind implements Type.
func (PrimitiveType) Kind() TypeKind { return KindPrimitive }

// TupleType is a fixed-length heterogeneous sequence.
type TupleType struct {
	Elements []Union
}

// Kind implements Type.
func (TupleType) Kind() TypeKind { return KindTuple }

// ArrayType is a homogeneous variable-length sequence.
type ArrayType struct {
	Element Union
}

// Kind implements Type.
func (ArrayType) Kind() TypeKind { return KindArray }

// Field is one entry of an ObjectType's ordered field mapping. Field order
// is irrelevant to equality but preserved for deterministic iteration
// (code-emission / printing order in consumers).
type Field struct {
	Name     string
	Value    Union
	Optional bool
}

// ObjectType is a presence-checked structural record: an ordered mapping
// from field name to {union, optional?}.
type ObjectType struct {
	Fields []Field
}

// Kind implements Type.
func (ObjectType) Kind() TypeKind { return KindObject }

// Field looks up a field by name.
func (o ObjectType) Field(name string) (Field, bool) {
	for _, f := range o.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// RecordType is a dictionary of string-keyed entries whose values all lie
// in Value.
type RecordType struct {
	Value Union
}

// Kind implements Type.
func (RecordType) Kind() TypeKind { return KindRecord }

// Union is an unordered sequence of Types (semantically a set; duplicates
// are permitted pre-dedup, and iteration order is preserved only for
// determinism, never as a semantic property).
type Union []Type
