package lattice

// TypeEqual reports whether two types are equal: their tags agree and
// their structure is recursively equal.
func TypeEqual(a, b Type) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Unknown:
		return true
	case LiteralType:
		y := b.(LiteralType)
		return x.Value.Equal(y.Value)
	case PrimitiveType:
		y := b.(PrimitiveType)
		return x.Prim == y.Prim
	case TupleType:
		y := b.(TupleType)
		if len(x.Elements) != len(y.Elements) {
			return false
		}
		for i := range x.Elements {
			if !UnionEqual(x.Elements[i], y.Elements[i]) {
				return false
			}
		}
		return true
	case ArrayType:
		y := b.(ArrayType)
		return UnionEqual(x.Element, y.Element)
	case ObjectType:
		y := b.(ObjectType)
		if len(x.Fields) != len(y.Fields) {
			return false
		}
		for _, f := range x.Fields {
			g, ok := y.Field(f.Name)
			if !ok || g.Optional != f.Optional || !UnionEqual(f.Value, g.Value) {
				return false
			}
		}
		return true
	case RecordType:
		y := b.(RecordType)
		return UnionEqual(x.Value, y.Value)
	default:
		return false
	}
}

// UnionEqual reports whether u and v are equal as multisets of types.
// Every member of u must have an equal, unused match in v and vice versa.
func UnionEqual(u, v Union) bool {
	if len(u) != len(v) {
		return false
	}
	usedV := make([]bool, len(v))
	for _, ut := range u {
		found := false
		for j, vt := range v {
			if usedV[j] {
				continue
			}
			if TypeEqual(ut, vt) {
				usedV[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
