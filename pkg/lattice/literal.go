// Package lattice implements the structural type lattice: literals,
// primitives, types, unions, accessors and occurrences, with equality,
// subtyping, intersection, and the extremal-element operations the match
// compiler needs. The package has no dependency beyond the standard
// library and performs no I/O: it is a pure, immutable value algebra.
package lattice

import "math/big"

// LiteralTag identifies the kind of a Literal.
type LiteralTag int

const (
	LitNumber LiteralTag = iota
	LitString
	LitBoolean
	LitBigInt
	LitUndefined
	LitNull
)

// Literal is a tagged constant value: a number, a string, a boolean, an
// arbitrary-precision integer (sign + canonical decimal digits), undefined,
// or null.
type Literal struct {
	Tag     LiteralTag
	Number  float64
	Str     string
	Bool    bool
	BigInt  *big.Int
}

// Num constructs a numeric literal.
func Num(v float64) Literal { return Literal{Tag: LitNumber, Number: v} }

// Str constructs a string literal.
func Str(v string) Literal { return Literal{Tag: LitString, Str: v} }

// Bool constructs a boolean literal.
func Bool(v bool) Literal { return Literal{Tag: LitBoolean, Bool: v} }

// BigInt constructs an arbitrary-precision integer literal.
func BigInt(v *big.Int) Literal {
	return Literal{Tag: LitBigInt, BigInt: new(big.Int).Set(v)}
}

// BigIntFromInt64 is a convenience constructor for small bigint literals.
func BigIntFromInt64(v int64) Literal {
	return BigInt(big.NewInt(v))
}

// Undefined constructs the undefined literal.
func Undefined() Literal { return Literal{Tag: LitUndefined} }

// Null constructs the null literal.
func Null() Literal { return Literal{Tag: LitNull} }

// Primitive reports the Primitive kind a literal's underlying value has.
// undefined and null have no primitive kind; Primitive's second return is
// false for them, since they are not subtypes of any primitive.
func (l Literal) Primitive() (Primitive, bool) {
	switch l.Tag {
	case LitNumber:
		return PrimNumber, true
	case LitString:
		return PrimString, true
	case LitBoolean:
		return PrimBoolean, true
	case LitBigInt:
		return PrimBigInt, true
	default:
		return 0, false
	}
}

// Equal reports whether two literals denote the same value: same tag, same
// payload (bigints compared by sign and canonical decimal digits).
func (l Literal) Equal(o Literal) bool {
	if l.Tag != o.Tag {
		return false
	}
	switch l.Tag {
	case LitNumber:
		return l.Number == o.Number
	case LitString:
		return l.Str == o.Str
	case LitBoolean:
		return l.Bool == o.Bool
	case LitBigInt:
		return l.BigInt.Cmp(o.BigInt) == 0
	case LitUndefined, LitNull:
		return true
	default:
		return false
	}
}
