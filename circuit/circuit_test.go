package circuit

import (
	"testing"

	"github.com/vybium/sumproof/field"
)

func fe(v uint64) field.FE {
	return field.BaseFromUint64(v)
}

func testCircuit() LayeredCircuit {
	layer0 := NewLayer([]Gate{
		NewGate(Mul, [2]int{0, 1}),
		NewGate(Add, [2]int{2, 3}),
		NewGate(Add, [2]int{4, 5}),
		NewGate(Mul, [2]int{6, 7}),
	})
	layer1 := NewLayer([]Gate{
		NewGate(Mul, [2]int{0, 1}),
		NewGate(Add, [2]int{2, 3}),
	})
	layer2 := NewLayer([]Gate{
		NewGate(Mul, [2]int{0, 1}),
	})
	return New([]Layer{layer0, layer1, layer2}, 8)
}

func TestCircuitExecute(t *testing.T) {
	c := testCircuit()
	inputs := []field.FE{fe(1), fe(2), fe(3), fe(2), fe(1), fe(2), fe(4), fe(1)}

	trace := c.Execute(inputs)
	if len(trace.Layers) != 4 {
		t.Fatalf("expected 4 trace entries (input + 3 layers), got %d", len(trace.Layers))
	}

	final := trace.Layers[len(trace.Layers)-1]
	if len(final) != 1 || !final[0].Equal(fe(70)) {
		t.Fatalf("final output = %v, want [70]", final)
	}
}

func TestCircuitExecutePanicsOnWrongInputWidth(t *testing.T) {
	c := testCircuit()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on wrong input width")
		}
	}()
	c.Execute([]field.FE{fe(1), fe(2)})
}

func TestCircuitExecutePanicsOnOutOfRangeGateInput(t *testing.T) {
	c := New([]Layer{
		NewLayer([]Gate{NewGate(Add, [2]int{0, 99})}),
	}, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-range gate input")
		}
	}()
	c.Execute([]field.FE{fe(1), fe(2)})
}

func TestLibraAddAndMulSelectors(t *testing.T) {
	c := testCircuit()

	add, mul := c.LibraAddAndMul(0)
	wantAdd := []GateTriple{{1, 2, 3}, {2, 4, 5}}
	wantMul := []GateTriple{{0, 0, 1}, {3, 6, 7}}

	if len(add) != len(wantAdd) {
		t.Fatalf("add = %v, want %v", add, wantAdd)
	}
	for i := range wantAdd {
		if add[i] != wantAdd[i] {
			t.Fatalf("add[%d] = %v, want %v", i, add[i], wantAdd[i])
		}
	}
	if len(mul) != len(wantMul) {
		t.Fatalf("mul = %v, want %v", mul, wantMul)
	}
	for i := range wantMul {
		if mul[i] != wantMul[i] {
			t.Fatalf("mul[%d] = %v, want %v", i, mul[i], wantMul[i])
		}
	}
}

func TestSelectorMLEConsistency(t *testing.T) {
	c := testCircuit()

	for layerIndex := range c.Layers {
		add, mul := c.AddAndMulMLE(layerIndex)
		if add.NumVars() != mul.NumVars() {
			t.Fatalf("layer %d: add/mul variable count mismatch: %d vs %d", layerIndex, add.NumVars(), mul.NumVars())
		}

		gates := c.Layers[layerIndex].Gates
		widthIn := c.widthIn(layerIndex)
		bL := 0
		for (1 << uint(bL)) < widthIn {
			bL++
		}

		for i, g := range gates {
			idx := encodeSelectorIndex(i, g.Inputs[0], g.Inputs[1], bL)
			addVal := add.At(idx)
			mulVal := mul.At(idx)
			if addVal.IsZero() && mulVal.IsZero() {
				t.Fatalf("layer %d gate %d: selector entries both zero at its own index", layerIndex, i)
			}
			switch g.Op {
			case Add:
				if !addVal.Equal(field.One().AsExtension()) || !mulVal.IsZero() {
					t.Fatalf("layer %d gate %d (Add): add=%s mul=%s", layerIndex, i, addVal, mulVal)
				}
			case Mul:
				if !mulVal.Equal(field.One().AsExtension()) || !addVal.IsZero() {
					t.Fatalf("layer %d gate %d (Mul): add=%s mul=%s", layerIndex, i, addVal, mulVal)
				}
			}
		}
	}
}
