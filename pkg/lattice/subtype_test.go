package lattice

import "testing"

func TestSubtypeLiteralIntoPrimitive(t *testing.T) {
	if !IsSubtype(LitStr("hi"), PString()) {
		t.Fatalf("expected string literal <: string")
	}
	if IsSubtype(LitUndef(), PString()) {
		t.Fatalf("expected undefined not <: string")
	}
	if IsSubtype(LitNullType(), PNumber()) {
		t.Fatalf("expected null not <: number")
	}
}

func TestSubtypeUnknownIsTop(t *testing.T) {
	if !IsSubtype(Obj(Req("x", U(PNumber()))), Unk()) {
		t.Fatalf("expected every type <: unknown")
	}
}

func TestSubtypeObjectWidthSubtyping(t *testing.T) {
	a := Obj(Req("x", U(PNumber())), Req("y", U(PString())))
	b := Obj(Req("x", U(PNumber())))
	if !IsSubtype(a, b) {
		t.Fatalf("expected wider object to be a subtype of the narrower one")
	}
	if IsSubtype(b, a) {
		t.Fatalf("expected narrower object not to be a subtype of the wider one")
	}
}

func TestSubtypeArrayFromTuple(t *testing.T) {
	tup := Tuple(U(PNumber()), U(PString()))
	arr := Arr(U(PNumber(), PString()))
	if !IsSubtype(tup, arr) {
		t.Fatalf("expected flattened tuple elements <: array element")
	}
}

func TestSubtypeRecordFromObject(t *testing.T) {
	obj := Obj(Req("a", U(PBoolean())), Req("b", U(PBoolean())))
	rec := Rec(U(PBoolean()))
	if !IsSubtype(obj, rec) {
		t.Fatalf("expected object with uniform field types <: matching record")
	}
}

func TestSubtypeTransitivity(t *testing.T) {
	a := LitStr("x")
	b := PString()
	c := Unk()
	if !(IsSubtype(a, b) && IsSubtype(b, c) && IsSubtype(a, c)) {
		t.Fatalf("expected A <: B <: C to imply A <: C")
	}
}

func TestUnionSubtype(t *testing.T) {
	if !UnionSubtype(U(LitStr("a"), LitStr("b")), U(PString())) {
		t.Fatalf("expected literal union <: primitive union")
	}
	if UnionSubtype(U(PString(), PNumber()), U(PString())) {
		t.Fatalf("expected wider union not <: narrower union")
	}
}
