package lattice

// AccessUnion returns the union reachable by one accessor step through t.
// unknown propagates as {unknown}. The second return is false when the
// accessor is structurally incompatible with t (e.g. a property step into
// a primitive).
func AccessUnion(t Type, a Accessor) (Union, bool) {
	if _, ok := t.(Unknown); ok {
		return Union{Unknown{}}, true
	}
	switch a.Kind {
	case AccessProperty:
		ot, ok := t.(ObjectType)
		if !ok {
			return nil, false
		}
		f, ok := ot.Field(a.Property)
		if !ok {
			return nil, false
		}
		return f.Value, true
	case AccessIndex:
		tt, ok := t.(TupleType)
		if !ok || a.Index < 0 || a.Index >= len(tt.Elements) {
			return nil, false
		}
		return tt.Elements[a.Index], true
	case AccessArrayElement:
		at, ok := t.(ArrayType)
		if !ok {
			return nil, false
		}
		return at.Element, true
	case AccessRecordValues:
		rt, ok := t.(RecordType)
		if !ok {
			return nil, false
		}
		return rt.Value, true
	default:
		return nil, false
	}
}

// Argument is one immediate (accessor, union) child of a type, as
// enumerated by GetArguments.
type Argument struct {
	Accessor Accessor
	Value    Union
}

// GetArguments returns every immediate child of t, in the order a
// decision-tree consumer should walk them. Tuples
// yield one argument per positional element; arrays yield the single
// array-element pseudo-child; objects yield one argument per field, in
// field order; records yield the single record-values pseudo-child; leaves
// (unknown, literal, primitive) yield none.
func GetArguments(t Type) []Argument {
	switch x := t.(type) {
	case TupleType:
		args := make([]Argument, len(x.Elements))
		for i, e := range x.Elements {
			args[i] = Argument{Accessor: Index(i), Value: e}
		}
		return args
	case ArrayType:
		return []Argument{{Accessor: ArrayElement(), Value: x.Element}}
	case ObjectType:
		args := make([]Argument, len(x.Fields))
		for i, f := range x.Fields {
			args[i] = Argument{Accessor: Property(f.Name), Value: f.Value}
		}
		return args
	case RecordType:
		return []Argument{{Accessor: RecordValues(), Value: x.Value}}
	default:
		return nil
	}
}
