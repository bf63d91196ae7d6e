package evalend

import (
	"math/big"

	"matchc/pkg/decisiontree"
	"matchc/pkg/lattice"
)

// Eval walks tree against value, applying the per-constructor outer-shape
// test and occurrence-walk rules a back-end is expected to implement.
// The second return is false only for a Fail leaf.
func Eval(tree decisiontree.Tree, value any) (int, bool) {
	switch tree.Kind() {
	case decisiontree.KindFail:
		return 0, false
	case decisiontree.KindSuccess:
		return tree.CaseIndex(), true
	default:
		if testOccurrence(value, tree.Occurrence(), tree.CheckType()) {
			return Eval(tree.SuccessBranch(), value)
		}
		return Eval(tree.FailBranch(), value)
	}
}

// testOccurrence walks occ from value, then applies the outer-shape test
// for checkType at whatever it reaches. property steps fail closed when
// the field is absent; array-element and record-values pseudo-steps are a
// closed-over loop that fails if any element fails.
func testOccurrence(value any, occ lattice.Occurrence, checkType lattice.Type) bool {
	if len(occ) == 0 {
		return testOuterShape(value, checkType)
	}
	step, rest := occ[0], occ[1:]
	switch step.Kind {
	case lattice.AccessProperty:
		obj, ok := value.(Object)
		if !ok {
			return false
		}
		v, present := obj[step.Property]
		if !present {
			return false
		}
		return testOccurrence(v, rest, checkType)
	case lattice.AccessIndex:
		arr, ok := value.(Array)
		if !ok || step.Index < 0 || step.Index >= len(arr) {
			return false
		}
		return testOccurrence(arr[step.Index], rest, checkType)
	case lattice.AccessArrayElement:
		arr, ok := value.(Array)
		if !ok {
			return false
		}
		for _, e := range arr {
			if !testOccurrence(e, rest, checkType) {
				return false
			}
		}
		return true
	case lattice.AccessRecordValues:
		obj, ok := value.(Object)
		if !ok {
			return false
		}
		for _, v := range obj {
			if !testOccurrence(v, rest, checkType) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func testOuterShape(value any, t lattice.Type) bool {
	switch x := t.(type) {
	case lattice.Unknown:
		return true
	case lattice.LiteralType:
		return literalMatches(value, x.Value)
	case lattice.PrimitiveType:
		return primitiveMatches(value, x.Prim)
	case lattice.TupleType:
		arr, ok := value.(Array)
		return ok && len(arr) == len(x.Elements)
	case lattice.ArrayType:
		_, ok := value.(Array)
		return ok
	case lattice.ObjectType:
		obj, ok := value.(Object)
		if !ok {
			return false
		}
		for _, f := range x.Fields {
			if f.Optional {
				continue
			}
			if _, present := obj[f.Name]; !present {
				return false
			}
		}
		return true
	case lattice.RecordType:
		_, ok := value.(Object)
		return ok
	default:
		return false
	}
}

func literalMatches(value any, l lattice.Literal) bool {
	switch l.Tag {
	case lattice.LitUndefined:
		return value == nil
	case lattice.LitNull:
		_, isNull := value.(nullType)
		return isNull
	case lattice.LitBoolean:
		v, ok := value.(bool)
		return ok && v == l.Bool
	case lattice.LitNumber:
		v, ok := value.(float64)
		return ok && v == l.Number
	case lattice.LitString:
		v, ok := value.(string)
		return ok && v == l.Str
	case lattice.LitBigInt:
		v, ok := value.(*big.Int)
		return ok && v.Cmp(l.BigInt) == 0
	default:
		return false
	}
}

func primitiveMatches(value any, p lattice.Primitive) bool {
	switch p {
	case lattice.PrimString:
		_, ok := value.(string)
		return ok
	case lattice.PrimNumber:
		_, ok := value.(float64)
		return ok
	case lattice.PrimBoolean:
		_, ok := value.(bool)
		return ok
	case lattice.PrimBigInt:
		_, ok := value.(*big.Int)
		return ok
	default:
		return false
	}
}
