package frontend

import (
	"fmt"

	"matchc/pkg/diag"
	"matchc/pkg/lattice"
)

// Lower translates a TypeExpr into the lattice's Union representation.
// Recursive and intersection type descriptions have no representation in
// the lattice; Lower reports a diagnostic for each one encountered and
// returns ok=false, leaving it to the caller to refuse to hand the source
// type to the compiler rather than lowering it to something unsound.
func Lower(expr TypeExpr) (diag.List, lattice.Union, bool) {
	var diags diag.List
	u, ok := lowerAt(expr, "", &diags)
	return diags, u, ok
}

func lowerAt(expr TypeExpr, path string, diags *diag.List) (lattice.Union, bool) {
	switch expr.Kind {
	case ExprUnknown:
		return lattice.U(lattice.Unk()), true
	case ExprLiteral:
		return lattice.U(lattice.Lit(expr.Literal)), true
	case ExprPrimitive:
		return lattice.U(lattice.Prim(expr.Primitive)), true
	case ExprTuple:
		elems := make([]lattice.Union, len(expr.Elements))
		ok := true
		for i, e := range expr.Elements {
			eu, eok := lowerAt(e, fmt.Sprintf("%s[%d]", path, i), diags)
			elems[i] = eu
			ok = ok && eok
		}
		if !ok {
			return nil, false
		}
		return lattice.U(lattice.Tuple(elems...)), true
	case ExprArray:
		if expr.Element == nil {
			diags.Add(path, "array type description is missing its element type")
			return nil, false
		}
		eu, ok := lowerAt(*expr.Element, path+"[]", diags)
		if !ok {
			return nil, false
		}
		return lattice.U(lattice.Arr(eu)), true
	case ExprObject:
		fields := make([]lattice.Field, len(expr.Fields))
		ok := true
		for i, f := range expr.Fields {
			fu, fok := lowerAt(f.Value, path+"."+f.Name, diags)
			ok = ok && fok
			if f.Optional {
				fields[i] = lattice.Opt(f.Name, fu)
			} else {
				fields[i] = lattice.Req(f.Name, fu)
			}
		}
		if !ok {
			return nil, false
		}
		return lattice.U(lattice.Obj(fields...)), true
	case ExprRecord:
		if expr.Value == nil {
			diags.Add(path, "record type description is missing its value type")
			return nil, false
		}
		vu, ok := lowerAt(*expr.Value, path+"{}", diags)
		if !ok {
			return nil, false
		}
		return lattice.U(lattice.Rec(vu)), true
	case ExprUnion:
		var members []lattice.Union
		ok := true
		for i, m := range expr.Members {
			mu, mok := lowerAt(m, fmt.Sprintf("%s|%d", path, i), diags)
			ok = ok && mok
			members = append(members, mu)
		}
		if !ok {
			return nil, false
		}
		return lattice.UnionFlatten(members...), true
	case ExprRecursive:
		diags.Add(path, "recursive type %q has no representation in the match compiler's type lattice", expr.Name)
		return nil, false
	case ExprIntersection:
		diags.Add(path, "intersection type %q has no representation in the match compiler's type lattice", expr.Name)
		return nil, false
	default:
		diags.Add(path, "unrecognized type description kind %d", expr.Kind)
		return nil, false
	}
}
