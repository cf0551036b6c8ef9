package poly

import (
	"testing"

	"github.com/vybium/sumproof/field"
)

func combine2uvPlusW(column []field.FE) field.FE {
	two := field.BaseFromUint64(2)
	return two.Mul(column[0]).Mul(column[1]).Add(column[2])
}

func TestVPolyEvaluate(t *testing.T) {
	p := fABC()
	v := NewVPoly([]MLE{p, p, p}, 2, 3, combine2uvPlusW)

	got := v.Evaluate([]field.FE{fe(1), fe(2), fe(3)})
	want := field.BaseFromUint64(990).AsExtension()
	if !got.Equal(want) {
		t.Fatalf("evaluate(1,2,3) = %s, want %s", got, want)
	}
}

func TestVPolySumOverHypercube(t *testing.T) {
	p := fABC()
	v := NewVPoly([]MLE{p, p, p}, 2, 3, combine2uvPlusW)

	got := v.SumOverHypercube()
	want := field.BaseFromUint64(86).AsExtension()
	if !got.Equal(want) {
		t.Fatalf("sum_over_hypercube = %s, want %s", got, want)
	}
}

func TestVPolyMetadata(t *testing.T) {
	p := fABC()
	v := NewVPoly([]MLE{p, p}, 1, 3, combine2uvPlusW)

	if v.NumVars() != 3 {
		t.Fatalf("NumVars() = %d, want 3", v.NumVars())
	}
	if v.MaxDegree() != 1 {
		t.Fatalf("MaxDegree() = %d, want 1", v.MaxDegree())
	}
	if v.NumMLEs() != 2 {
		t.Fatalf("NumMLEs() = %d, want 2", v.NumMLEs())
	}
}

func TestVPolyEvaluateMatchesCombineOfConstituentEvaluations(t *testing.T) {
	p := fABC()
	v := NewVPoly([]MLE{p, p, p}, 2, 3, combine2uvPlusW)
	point := []field.FE{fe(5), fe(1), fe(4)}

	got := v.Evaluate(point)
	column := []field.FE{p.Evaluate(point), p.Evaluate(point), p.Evaluate(point)}
	want := combine2uvPlusW(column)
	if !got.Equal(want) {
		t.Fatalf("evaluate = %s, want combine(...) = %s", got, want)
	}
}

func TestVPolyNewPanicsOnVaryingLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic constructing a VPoly from MLEs of differing variable counts")
		}
	}()
	fAB := New(2, []field.FE{fe(0), fe(0), fe(3), fe(5)})
	NewVPoly([]MLE{fAB, fABC()}, 1, 3, combine2uvPlusW)
}
