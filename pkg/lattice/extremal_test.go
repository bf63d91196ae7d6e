package lattice

import "testing"

func TestMinimaDropsDominatedMembers(t *testing.T) {
	ts := []Type{LitStr("a"), PString(), Unk()}
	got := Minima(ts)
	if len(got) != 1 || !TypeEqual(got[0], LitStr("a")) {
		t.Fatalf("expected literal to be the sole minimum, got %v", got)
	}
}

func TestMaximaDropsDominatedMembers(t *testing.T) {
	ts := []Type{LitStr("a"), PString(), Unk()}
	got := Maxima(ts)
	if len(got) != 1 || !TypeEqual(got[0], Unk()) {
		t.Fatalf("expected unknown to be the sole maximum, got %v", got)
	}
}

func TestMinimaMaximaNonEmptyForNonEmptyInput(t *testing.T) {
	ts := []Type{PString(), PNumber(), PBoolean()}
	if len(Minima(ts)) == 0 || len(Maxima(ts)) == 0 {
		t.Fatalf("expected non-empty minima/maxima for incomparable types")
	}
}

func TestMinimaArePairwiseIncomparable(t *testing.T) {
	ts := []Type{PString(), PNumber(), PBoolean()}
	minima := Minima(ts)
	for i := range minima {
		for j := range minima {
			if i == j {
				continue
			}
			if IsSubtype(minima[i], minima[j]) {
				t.Fatalf("expected minima to be pairwise incomparable, %v <: %v", minima[i], minima[j])
			}
		}
	}
}

func TestUnionCanonicalizeDedupsAndTakesMaxima(t *testing.T) {
	u := U(LitStr("a"), PString(), LitStr("a"))
	got := UnionCanonicalize(u)
	if len(got) != 1 || !TypeEqual(got[0], PString()) {
		t.Fatalf("expected canonicalize to dedup and keep the maximum, got %v", got)
	}
}

func TestUnionCanonicalizeIsIdempotent(t *testing.T) {
	u := U(LitStr("a"), PString(), PNumber())
	once := UnionCanonicalize(u)
	twice := UnionCanonicalize(once)
	if !UnionEqual(once, twice) {
		t.Fatalf("expected canonicalize(canonicalize(u)) = canonicalize(u)")
	}
}

func TestUnionFlattenConcatenatesAndDedups(t *testing.T) {
	got := UnionFlatten(U(PString(), PNumber()), U(PNumber(), PBoolean()))
	if len(got) != 3 {
		t.Fatalf("expected 3 distinct types after flatten+dedup, got %v", got)
	}
}

func TestMakeArgumentsUnknownIsSupertype(t *testing.T) {
	tests := []Type{
		Tuple(U(PNumber()), U(PString())),
		Arr(U(PNumber())),
		Obj(Req("x", U(PNumber()))),
		Rec(U(PNumber())),
		PString(),
		LitStr("a"),
	}
	for _, tt := range tests {
		got := MakeArgumentsUnknown(tt)
		if !IsSubtype(tt, got) {
			t.Fatalf("expected %v <: makeArgumentsUnknown(%v) = %v", tt, tt, got)
		}
	}
}
