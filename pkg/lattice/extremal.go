package lattice

// Minima returns the subset of ts whose members have no strict subtype
// also in ts. Reflexive equals are kept (so duplicates in ts all survive
// as minima of each other).
func Minima(ts []Type) []Type {
	return extrema(ts, func(a, b Type) bool { return IsSubtype(a, b) })
}

// Maxima is the dual of Minima.
func Maxima(ts []Type) []Type {
	return extrema(ts, func(a, b Type) bool { return IsSubtype(b, a) })
}

// extrema keeps every t in ts for which no other distinct member u has
// strictSubtypeOf(u, t) true under the given comparator (read: "u is
// strictly more specific than t" for Minima, or "u is strictly more
// general than t" for Maxima).
func extrema(ts []Type, moreGeneral func(a, b Type) bool) []Type {
	out := make([]Type, 0, len(ts))
	for i, t := range ts {
		dominated := false
		for j, u := range ts {
			if i == j {
				continue
			}
			// u strictly dominates t when u <: t (in the Minima sense) but
			// not t <: u, i.e. u is strictly more specific than t.
			if moreGeneral(u, t) && !moreGeneral(t, u) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, t)
		}
	}
	return out
}

// UnionFlatten concatenates unions and dedups the result (no canonicalizing
// to maxima; that is UnionCanonicalize's job).
func UnionFlatten(us ...Union) Union {
	var out Union
	for _, u := range us {
		for _, t := range u {
			if !containsType(out, t) {
				out = append(out, t)
			}
		}
	}
	return out
}

func containsType(u Union, t Type) bool {
	for _, x := range u {
		if TypeEqual(x, t) {
			return true
		}
	}
	return false
}

// UnionCanonicalize dedups then takes the maxima, recursing into every
// nested union reachable through the surviving types' children.
func UnionCanonicalize(u Union) Union {
	deduped := UnionFlatten(u)
	recursed := make(Union, len(deduped))
	for i, t := range deduped {
		recursed[i] = canonicalizeChildren(t)
	}
	maxima := Maxima(recursed)
	out := make(Union, len(maxima))
	copy(out, maxima)
	return out
}

func canonicalizeChildren(t Type) Type {
	switch x := t.(type) {
	case TupleType:
		elems := make([]Union, len(x.Elements))
		for i, e := range x.Elements {
			elems[i] = UnionCanonicalize(e)
		}
		return TupleType{Elements: elems}
	case ArrayType:
		return ArrayType{Element: UnionCanonicalize(x.Element)}
	case ObjectType:
		fields := make([]Field, len(x.Fields))
		for i, f := range x.Fields {
			fields[i] = Field{Name: f.Name, Value: UnionCanonicalize(f.Value), Optional: f.Optional}
		}
		return ObjectType{Fields: fields}
	case RecordType:
		return RecordType{Value: UnionCanonicalize(x.Value)}
	default:
		return t
	}
}
