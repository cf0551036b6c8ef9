// Package sumcheck implements the protocol-agnostic sumcheck prover and
// verifier, driven through the Sumcheckable capability any polynomial can
// present, plus a padded-sumcheck adapter for extending round counts.
package sumcheck

import (
	"github.com/vybium/sumproof/field"
	"github.com/vybium/sumproof/transcript"
)

// Sumcheckable is the uniform prover-side state machine the sumcheck
// driver runs against. MLE and VPoly each satisfy it through their own
// partial-evaluation / full-evaluation / hypercube-sum operations.
type Sumcheckable interface {
	// Rounds reports the number of rounds remaining.
	Rounds() int
	// MaxVarDegree reports the degree of the univariate round polynomial.
	MaxVarDegree() int
	// RoundMessage returns the current round polynomial's values at
	// 0, 1, ..., MaxVarDegree() (MaxVarDegree()+1 values). Padded sends
	// one extra value, at MaxVarDegree()+1, during its padding rounds.
	RoundMessage() []field.FE
	// ReceiveChallenge folds the object by fixing the first remaining
	// variable to r; Rounds() decreases by one.
	ReceiveChallenge(r field.FE)
	// Eval fully evaluates the object at a point. MLEAdapter and
	// VPolyAdapter evaluate their current, possibly folded, state, so the
	// point needs one coordinate per remaining round: the original round
	// count before any ReceiveChallenge, and an empty point once every
	// round has been received. Padded.Eval always takes the original
	// round count and forwards the first part to its inner object.
	Eval(point []field.FE) field.FE
	// Commit binds the object into the transcript.
	Commit(t transcript.Transcript)
}
