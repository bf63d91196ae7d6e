package lattice

// IsSubtype reports whether a <: b, defined by cases on b's constructor.
func IsSubtype(a, b Type) bool {
	switch target := b.(type) {
	case Unknown:
		return true
	case LiteralType:
		lt, ok := a.(LiteralType)
		return ok && lt.Value.Equal(target.Value)
	case PrimitiveType:
		if pt, ok := a.(PrimitiveType); ok {
			return pt.Prim == target.Prim
		}
		if lt, ok := a.(LiteralType); ok {
			prim, has := lt.Value.Primitive()
			return has && prim == target.Prim
		}
		return false
	case TupleType:
		at, ok := a.(TupleType)
		if !ok || len(at.Elements) != len(target.Elements) {
			return false
		}
		for i := range at.Elements {
			if !UnionSubtype(at.Elements[i], target.Elements[i]) {
				return false
			}
		}
		return true
	case ArrayType:
		if at, ok := a.(ArrayType); ok {
			return UnionSubtype(at.Element, target.Element)
		}
		if tt, ok := a.(TupleType); ok {
			return UnionSubtype(unionFlattenRaw(tt.Elements), target.Element)
		}
		return false
	case ObjectType:
		at, ok := a.(ObjectType)
		if !ok {
			return false
		}
		for _, bf := range target.Fields {
			af, ok := at.Field(bf.Name)
			if !ok {
				return false
			}
			if !UnionSubtype(af.Value, bf.Value) {
				return false
			}
		}
		return true
	case RecordType:
		if rt, ok := a.(RecordType); ok {
			return UnionSubtype(rt.Value, target.Value)
		}
		if ot, ok := a.(ObjectType); ok {
			values := make([]Union, len(ot.Fields))
			for i, f := range ot.Fields {
				values[i] = f.Value
			}
			return UnionSubtype(unionFlattenRaw(values), target.Value)
		}
		return false
	default:
		return false
	}
}

// unionFlattenRaw concatenates a slice of unions without deduplication;
// used where subtyping only needs membership tests downstream (UnionSubtype
// already handles duplicates structurally).
func unionFlattenRaw(us []Union) Union {
	var out Union
	for _, u := range us {
		out = append(out, u...)
	}
	return out
}

// UnionSubtype reports whether U <: V: every type in U is a subtype of
// some type in V.
func UnionSubtype(u, v Union) bool {
	for _, ut := range u {
		ok := false
		for _, vt := range v {
			if IsSubtype(ut, vt) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
