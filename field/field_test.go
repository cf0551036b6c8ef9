package field

import "testing"

func TestBaseArithmeticStaysBase(t *testing.T) {
	a := BaseFromUint64(3)
	b := BaseFromUint64(4)

	sum := a.Add(b)
	if !sum.IsBase() {
		t.Fatal("Base + Base should stay Base")
	}
	if !sum.Equal(BaseFromUint64(7)) {
		t.Fatalf("3+4 = %s, want 7", sum)
	}

	prod := a.Mul(b)
	if !prod.IsBase() {
		t.Fatal("Base * Base should stay Base")
	}
	if !prod.Equal(BaseFromUint64(12)) {
		t.Fatalf("3*4 = %s, want 12", prod)
	}
}

func TestMixedArithmeticPromotesToExtension(t *testing.T) {
	a := BaseFromUint64(3)
	b := BaseFromUint64(4).AsExtension()

	sum := a.Add(b)
	if sum.IsBase() {
		t.Fatal("Base + Extension should promote to Extension")
	}
	if !sum.Equal(BaseFromUint64(7)) {
		t.Fatalf("3+4 (mixed) = %s, want 7", sum)
	}
}

func TestEqualIgnoresKindTag(t *testing.T) {
	a := BaseFromUint64(9)
	b := a.AsExtension()
	if !a.Equal(b) {
		t.Fatal("a Base value and its Extension lift should compare equal")
	}
}

func TestIsZeroAndIsOne(t *testing.T) {
	if !Zero().IsZero() {
		t.Fatal("Zero().IsZero() should be true")
	}
	if !One().IsOne() {
		t.Fatal("One().IsOne() should be true")
	}
	if Zero().IsOne() || One().IsZero() {
		t.Fatal("Zero and One must not be conflated")
	}
}

func TestSubAndNeg(t *testing.T) {
	a := BaseFromUint64(5)
	b := BaseFromUint64(8)

	diff := a.Sub(b)
	want := b.Sub(a).Neg()
	if !diff.Equal(want) {
		t.Fatalf("5-8 = %s, want -(8-5) = %s", diff, want)
	}
}

func TestDivIsInverseOfMul(t *testing.T) {
	a := BaseFromUint64(6)
	b := BaseFromUint64(7)

	got := a.Mul(b).Div(b)
	if !got.Equal(a) {
		t.Fatalf("(a*b)/b = %s, want %s", got, a)
	}
}

func TestProductOver(t *testing.T) {
	vals := []FE{BaseFromUint64(2), BaseFromUint64(3), BaseFromUint64(4)}
	got := ProductOver(vals)
	if !got.Equal(BaseFromUint64(24)) {
		t.Fatalf("ProductOver(2,3,4) = %s, want 24", got)
	}

	if !ProductOver(nil).Equal(One()) {
		t.Fatal("ProductOver of an empty slice should be the multiplicative identity")
	}
}
