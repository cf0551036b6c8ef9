package circuit

import "fmt"

// GateTriple is the sparse selector datum (output index, left input,
// right input) for a single gate.
type GateTriple struct {
	I, J, K int
}

// LibraAddAndMul returns the Libra-style sparse selector lists for a
// layer: one ordered list of (i,j,k) triples per operation, instead of
// materializing the dense add/mul MLEs - worthwhile when the gate count
// is much smaller than 2^n_l.
func (c LayeredCircuit) LibraAddAndMul(layerIndex int) (add, mul []GateTriple) {
	if layerIndex < 0 || layerIndex >= len(c.Layers) {
		panic(fmt.Sprintf("circuit: layer index %d out of bounds", layerIndex))
	}

	for i, g := range c.Layers[layerIndex].Gates {
		t := GateTriple{I: i, J: g.Inputs[0], K: g.Inputs[1]}
		switch g.Op {
		case Add:
			add = append(add, t)
		case Mul:
			mul = append(mul, t)
		}
	}
	return
}
