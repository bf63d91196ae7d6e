package lattice

// Primitive identifies one of the four primitive kinds.
type Primitive int

const (
	PrimString Primitive = iota
	PrimNumber
	PrimBigInt
	PrimBoolean
)

func (p Primitive) String() string {
	switch p {
	case PrimString:
		return "string"
	case PrimNumber:
		return "number"
	case PrimBigInt:
		return "bigint"
	case PrimBoolean:
		return "boolean"
	default:
		return "primitive(?)"
	}
}
