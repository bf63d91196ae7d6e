package lattice

// EqualConstructor compares only the outer shape (same tuple length, same
// object field names, same primitive/literal value, etc.) without
// inspecting nested unions.
func EqualConstructor(a, b Type) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Unknown:
		return true
	case LiteralType:
		return x.Value.Equal(b.(LiteralType).Value)
	case PrimitiveType:
		return x.Prim == b.(PrimitiveType).Prim
	case TupleType:
		return len(x.Elements) == len(b.(TupleType).Elements)
	case ArrayType:
		return true
	case ObjectType:
		y := b.(ObjectType)
		if len(x.Fields) != len(y.Fields) {
			return false
		}
		for _, f := range x.Fields {
			g, ok := y.Field(f.Name)
			if !ok || g.Optional != f.Optional {
				return false
			}
		}
		return true
	case RecordType:
		return true
	default:
		return false
	}
}

// MakeArgumentsUnknown returns t's outer constructor with every nested
// union replaced by {Unknown{}}. This is the shape stored in decision-tree
// Check nodes: an outer-only test with no nested structural commitment.
func MakeArgumentsUnknown(t Type) Type {
	unk := Union{Unknown{}}
	switch x := t.(type) {
	case TupleType:
		elems := make([]Union, len(x.Elements))
		for i := range elems {
			elems[i] = unk
		}
		return TupleType{Elements: elems}
	case ArrayType:
		return ArrayType{Element: unk}
	case ObjectType:
		fields := make([]Field, len(x.Fields))
		for i, f := range x.Fields {
			fields[i] = Field{Name: f.Name, Value: unk, Optional: f.Optional}
		}
		return ObjectType{Fields: fields}
	case RecordType:
		return RecordType{Value: unk}
	default:
		return t
	}
}
