package lattice

// Intersect computes A ⊓ B. It is defined only on compatible
// constructors; the second return is false when undefined (the caller
// drops the pair from the resulting union). unknown ⊓ B = B in either
// position; two literals or two primitives intersect only if one is a
// subtype of the other; tuples intersect element-wise when lengths agree;
// arrays by intersecting elements; objects by unioning field names and
// intersecting common fields; records by intersecting value unions.
// Cross-constructor cases (tuple⊓array, object⊓record) are undefined.
func Intersect(a, b Type) (Type, bool) {
	if _, ok := a.(Unknown); ok {
		return b, true
	}
	if _, ok := b.(Unknown); ok {
		return a, true
	}
	if a.Kind() != b.Kind() {
		return nil, false
	}
	switch x := a.(type) {
	case LiteralType:
		y := b.(LiteralType)
		if x.Value.Equal(y.Value) {
			return x, true
		}
		return nil, false
	case PrimitiveType:
		y := b.(PrimitiveType)
		if x.Prim == y.Prim {
			return x, true
		}
		return nil, false
	case TupleType:
		y := b.(TupleType)
		if len(x.Elements) != len(y.Elements) {
			return nil, false
		}
		elems := make([]Union, len(x.Elements))
		for i := range x.Elements {
			elems[i] = UnionIntersect(x.Elements[i], y.Elements[i])
		}
		return TupleType{Elements: elems}, true
	case ArrayType:
		y := b.(ArrayType)
		return ArrayType{Element: UnionIntersect(x.Element, y.Element)}, true
	case ObjectType:
		y := b.(ObjectType)
		seen := make(map[string]bool)
		var fields []Field
		for _, f := range x.Fields {
			if g, ok := y.Field(f.Name); ok {
				fields = append(fields, Field{
					Name:     f.Name,
					Value:    UnionIntersect(f.Value, g.Value),
					Optional: f.Optional && g.Optional,
				})
			} else {
				fields = append(fields, f)
			}
			seen[f.Name] = true
		}
		for _, g := range y.Fields {
			if !seen[g.Name] {
				fields = append(fields, g)
			}
		}
		return ObjectType{Fields: fields}, true
	case RecordType:
		y := b.(RecordType)
		return RecordType{Value: UnionIntersect(x.Value, y.Value)}, true
	default:
		return nil, false
	}
}

// UnionIntersect computes the set of all pairwise intersections that are
// defined, then canonicalizes the result.
func UnionIntersect(u, v Union) Union {
	var out Union
	for _, ut := range u {
		for _, vt := range v {
			if t, ok := Intersect(ut, vt); ok {
				out = append(out, t)
			}
		}
	}
	return UnionCanonicalize(out)
}
