package sumcheck

import (
	"strconv"

	"github.com/vybium/sumproof/field"
	"github.com/vybium/sumproof/internal/sumproof/errs"
	"github.com/vybium/sumproof/poly"
	"github.com/vybium/sumproof/transcript"
)

// Proof is the in-memory sumcheck transcript: one round polynomial (given
// by its evaluations at 0, 1, ..., MaxVarDegree) and the Fiat-Shamir
// challenge derived from it, per round.
type Proof struct {
	ClaimedSum       field.FE
	RoundPolynomials [][]field.FE
	Challenges       []field.FE
}

// Prove commits P and the claimed sum to the transcript, then delegates to
// ProvePartial.
func Prove(claimedSum field.FE, p Sumcheckable, t transcript.Transcript) Proof {
	p.Commit(t)
	t.ObserveExt(claimedSum.ToExtension())
	return ProvePartial(claimedSum, p, t)
}

// ProvePartial runs the round loop without committing P or the claimed sum
// first, so a higher protocol (GKR) can drive that commitment itself.
func ProvePartial(claimedSum field.FE, p Sumcheckable, t transcript.Transcript) Proof {
	rounds := p.Rounds()
	roundPolys := make([][]field.FE, 0, rounds)
	challenges := make([]field.FE, 0, rounds)

	for i := 0; i < rounds; i++ {
		m := p.RoundMessage()
		observeRow(t, m)
		r := field.Extension(t.SampleChallenge())
		p.ReceiveChallenge(r)

		roundPolys = append(roundPolys, m)
		challenges = append(challenges, r)
	}

	return Proof{ClaimedSum: claimedSum, RoundPolynomials: roundPolys, Challenges: challenges}
}

// Verify commits P and the proof's claimed sum to the transcript, checks
// every round's consistency via VerifyPartial, and performs the final
// oracle check: the folded value from the last round must equal P
// evaluated at the accumulated challenge vector.
func Verify(p Sumcheckable, proof Proof, t transcript.Transcript) (bool, error) {
	p.Commit(t)
	t.ObserveExt(proof.ClaimedSum.ToExtension())

	finalValue, challenges, err := VerifyPartial(proof, t)
	if err != nil {
		return false, err
	}
	if len(challenges) != p.Rounds() {
		return false, errs.New(errs.Precondition, "sumcheck proof has "+strconv.Itoa(len(challenges))+" rounds, P has "+strconv.Itoa(p.Rounds()))
	}

	oracleValue := p.Eval(challenges)
	if !finalValue.Equal(oracleValue) {
		return false, errs.New(errs.ProofRejected, "sumcheck oracle check failed: folded value disagrees with P evaluated at the challenge point")
	}
	return true, nil
}

// VerifyPartial replays the per-round consistency check and folds the
// claimed sum down to a final expected value, without performing the
// oracle check itself - that stays in Verify so GKR-style callers can
// chain the returned (value, challenges) into a following sumcheck
// instance instead of being forced to open an oracle at every layer.
func VerifyPartial(proof Proof, t transcript.Transcript) (field.FE, []field.FE, error) {
	expected := proof.ClaimedSum
	challenges := make([]field.FE, 0, len(proof.RoundPolynomials))

	for i, m := range proof.RoundPolynomials {
		if len(m) < 2 {
			return field.FE{}, nil, errs.New(errs.Precondition, "sumcheck round polynomial needs at least two evaluations")
		}
		if !m[0].Add(m[1]).Equal(expected) {
			return field.FE{}, nil, errs.New(errs.ProofRejected, "sumcheck round consistency check failed at round "+strconv.Itoa(i))
		}
		observeRow(t, m)
		r := field.Extension(t.SampleChallenge())
		expected = poly.BarycentricEval(m, r)
		challenges = append(challenges, r)
	}

	return expected, challenges, nil
}

func observeRow(t transcript.Transcript, row []field.FE) {
	for _, v := range row {
		t.ObserveExt(v.ToExtension())
	}
}
