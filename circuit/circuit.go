// Package circuit implements the layered arithmetic circuit evaluator: a
// gate-level circuit, its per-layer execution trace, and the selector
// multilinear extensions GKR-style recursion needs on top of sumcheck.
package circuit

import (
	"fmt"

	"github.com/vybium/sumproof/field"
	"github.com/vybium/sumproof/internal/sumproof/support"
)

// GateOp is the operation a Gate performs on its two inputs.
type GateOp int

const (
	Add GateOp = iota
	Mul
)

// Gate is the lowest unit of a layered circuit: an op plus an unordered
// pair of input indices into the previous layer.
type Gate struct {
	Op     GateOp
	Inputs [2]int
}

// NewGate builds a Gate.
func NewGate(op GateOp, inputs [2]int) Gate {
	return Gate{Op: op, Inputs: inputs}
}

// Layer is an ordered sequence of gates; its output width is its gate count.
type Layer struct {
	Gates []Gate
}

// NewLayer builds a Layer.
func NewLayer(gates []Gate) Layer {
	return Layer{Gates: gates}
}

// LayeredCircuit is an ordered sequence of layers evaluated left to right
// starting from the input. InputWidth is the width of the vector Execute
// is called with - needed up front so AddAndMulMLE can size layer 0's
// selector variables from the true input width rather than guessing it
// from the indices gates at layer 0 happen to reference.
type LayeredCircuit struct {
	Layers     []Layer
	InputWidth int
}

// New builds a LayeredCircuit over the given layers and declared input width.
func New(layers []Layer, inputWidth int) LayeredCircuit {
	return LayeredCircuit{Layers: layers, InputWidth: inputWidth}
}

// Evaluation is the execution trace of a circuit: Layers[0] is the input,
// Layers[l+1] is the output of layer l.
type Evaluation struct {
	Layers [][]field.FE
}

// Execute evaluates the circuit over inputs, which must have exactly
// InputWidth = 2^k0 entries. Layer l's gates read indices into layer l
// (the previous layer's output), never the original inputs directly -
// beyond the first layer the "previous layer" is always the prior
// layer's output vector, not Layers[0].
func (c LayeredCircuit) Execute(inputs []field.FE) Evaluation {
	if len(inputs) != c.InputWidth {
		panic(fmt.Sprintf("circuit: expected %d inputs, got %d", c.InputWidth, len(inputs)))
	}
	if !support.IsPowerOfTwo(len(inputs)) {
		panic(fmt.Sprintf("circuit: input width must be a power of two, got %d", len(inputs)))
	}

	layers := make([][]field.FE, 0, len(c.Layers)+1)
	layers = append(layers, inputs)
	current := inputs

	for li, layer := range c.Layers {
		out := make([]field.FE, len(layer.Gates))
		for i, g := range layer.Gates {
			if g.Inputs[0] >= len(current) || g.Inputs[1] >= len(current) {
				panic(fmt.Sprintf("circuit: layer %d gate %d reads out-of-range input (%d, %d) against width %d", li, i, g.Inputs[0], g.Inputs[1], len(current)))
			}
			switch g.Op {
			case Add:
				out[i] = current[g.Inputs[0]].Add(current[g.Inputs[1]])
			case Mul:
				out[i] = current[g.Inputs[0]].Mul(current[g.Inputs[1]])
			}
		}
		layers = append(layers, out)
		current = out
	}

	return Evaluation{Layers: layers}
}

// widthIn returns the width of the layer feeding into layerIndex: the
// declared input width for layer 0, otherwise the previous layer's gate
// count.
func (c LayeredCircuit) widthIn(layerIndex int) int {
	if layerIndex == 0 {
		return c.InputWidth
	}
	return len(c.Layers[layerIndex-1].Gates)
}
