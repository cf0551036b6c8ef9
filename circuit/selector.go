package circuit

import (
	"fmt"

	"github.com/vybium/sumproof/field"
	"github.com/vybium/sumproof/internal/sumproof/support"
	"github.com/vybium/sumproof/poly"
)

// AddAndMulMLE returns the dense selector MLEs (add, mul) for a layer, over
// n_l = a_l + 2*b_l Boolean variables where a_l = ceil(log2(width_out))
// and b_l = ceil(log2(width_in)). add(i,j,k) = 1 iff the layer's gate at
// output index i is an Add gate reading (j,k); mul is the analogous
// indicator for Mul. Widths come from the true gate/input counts of this
// layer - a fixed width-3 special case for layer 0, as one historical
// version used, only happens to work for a canonical doubling circuit and
// is wrong in general.
func (c LayeredCircuit) AddAndMulMLE(layerIndex int) (add poly.MLE, mul poly.MLE) {
	if layerIndex < 0 || layerIndex >= len(c.Layers) {
		panic(fmt.Sprintf("circuit: layer index %d out of bounds", layerIndex))
	}

	widthOut := len(c.Layers[layerIndex].Gates)
	widthIn := c.widthIn(layerIndex)
	aL := support.CeilLog2(widthOut)
	bL := support.CeilLog2(widthIn)
	nVars := aL + 2*bL

	var addIdx, mulIdx []int
	for i, g := range c.Layers[layerIndex].Gates {
		idx := encodeSelectorIndex(i, g.Inputs[0], g.Inputs[1], bL)
		switch g.Op {
		case Add:
			addIdx = append(addIdx, idx)
		case Mul:
			mulIdx = append(mulIdx, idx)
		}
	}

	return indicatorMLE(addIdx, nVars), indicatorMLE(mulIdx, nVars)
}

// encodeSelectorIndex packs (i,j,k) into a single hypercube index:
// little-endian in field widths bL (low bits hold k), then bL (j), then
// the remaining high bits (i).
func encodeSelectorIndex(i, j, k, bL int) int {
	return (i << uint(2*bL)) | (j << uint(bL)) | k
}

func indicatorMLE(indices []int, nVars int) poly.MLE {
	evals := make([]field.FE, 1<<uint(nVars))
	for i := range evals {
		evals[i] = field.Zero()
	}
	for _, idx := range indices {
		evals[idx] = field.One()
	}
	return poly.New(nVars, evals)
}
