// Package sumproof is the stable public entry point for this module: it
// re-exports the field, polynomial, sumcheck, circuit and transcript types
// a caller needs, plus the ambient SumProofError and ProofConfig types.
// Implementation details under internal/ can change without breaking this
// API.
package sumproof

import (
	"github.com/vybium/sumproof/circuit"
	"github.com/vybium/sumproof/field"
	"github.com/vybium/sumproof/poly"
	"github.com/vybium/sumproof/sumcheck"
	"github.com/vybium/sumproof/transcript"
)

// Field types.
type (
	FE        = field.FE
	BaseField = field.BaseField
	ExtField  = field.ExtField
)

// Polynomial types.
type (
	MLE       = poly.MLE
	VPoly     = poly.VPoly
	CombineFn = poly.CombineFn
)

// Sumcheck types.
type (
	Sumcheckable = sumcheck.Sumcheckable
	Proof        = sumcheck.Proof
	MLEAdapter   = sumcheck.MLEAdapter
	VPolyAdapter = sumcheck.VPolyAdapter
	Padded       = sumcheck.Padded
)

// Circuit types.
type (
	GateOp         = circuit.GateOp
	Gate           = circuit.Gate
	Layer          = circuit.Layer
	LayeredCircuit = circuit.LayeredCircuit
	Evaluation     = circuit.Evaluation
	GateTriple     = circuit.GateTriple
)

// Transcript types.
type (
	Transcript = transcript.Transcript
	FiatShamir = transcript.FiatShamir
)

const (
	Add = circuit.Add
	Mul = circuit.Mul
)

var (
	NewMLE          = poly.New
	NewVPoly        = poly.NewVPoly
	EQ              = poly.EQ
	NewGate         = circuit.NewGate
	NewLayer        = circuit.NewLayer
	NewCircuit      = circuit.New
	NewMLEAdapter   = sumcheck.NewMLEAdapter
	NewVPolyAdapter = sumcheck.NewVPolyAdapter
	NewPadded       = sumcheck.NewPadded
	Prove           = sumcheck.Prove
	ProvePartial    = sumcheck.ProvePartial
	Verify          = sumcheck.Verify
	VerifyPartial   = sumcheck.VerifyPartial
	NewFiatShamir   = transcript.NewFiatShamir
)
