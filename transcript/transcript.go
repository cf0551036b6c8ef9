// Package transcript declares the Fiat-Shamir collaborator the sumcheck
// driver talks to, and ships a concrete sha3-backed implementation of it.
package transcript

import "github.com/vybium/sumproof/field"

// Transcript is the external collaborator the sumcheck driver binds proof
// state to. Implementations must make prover and verifier absorb identical
// byte-streams given identical call order; the driver never distinguishes
// "absorb base vs extension" beyond what a polynomial's own Commit chooses.
type Transcript interface {
	// ObserveBase absorbs base-field elements into the transcript state.
	ObserveBase(xs ...field.BaseField)
	// ObserveExt absorbs extension-field elements into the transcript state.
	ObserveExt(xs ...field.ExtField)
	// SampleChallenge draws one Fiat-Shamir challenge from the extension field.
	SampleChallenge() field.ExtField
	// SampleNChallenges draws n independent challenges.
	SampleNChallenges(n int) []field.ExtField
	// Init resets the transcript to its deterministic initial state, so a
	// prover and a verifier can each start from the same seed.
	Init()
}
