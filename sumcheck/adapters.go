package sumcheck

import (
	"github.com/vybium/sumproof/field"
	"github.com/vybium/sumproof/poly"
	"github.com/vybium/sumproof/transcript"
)

// MLEAdapter presents an MLE as a Sumcheckable. ReceiveChallenge rebinds
// the held state to the freshly folded polynomial - a previous corpus
// version called partial_evaluate without reassigning and silently
// discarded the fold; that bug must not be repeated here.
type MLEAdapter struct {
	current poly.MLE
}

// NewMLEAdapter wraps p for the sumcheck driver.
func NewMLEAdapter(p poly.MLE) *MLEAdapter {
	return &MLEAdapter{current: p}
}

func (a *MLEAdapter) Rounds() int        { return a.current.NumVars() }
func (a *MLEAdapter) MaxVarDegree() int  { return a.current.MaxDegree() }
func (a *MLEAdapter) Eval(point []field.FE) field.FE {
	return a.current.Evaluate(point)
}
func (a *MLEAdapter) Commit(t transcript.Transcript) {
	a.current.Commit(t)
}

func (a *MLEAdapter) RoundMessage() []field.FE {
	d := a.MaxVarDegree()
	out := make([]field.FE, d+1)
	for t := 0; t <= d; t++ {
		out[t] = a.current.PartialEvaluate([]field.FE{field.BaseFromUint64(uint64(t))}).SumOverHypercube()
	}
	return out
}

func (a *MLEAdapter) ReceiveChallenge(r field.FE) {
	a.current = a.current.PartialEvaluate([]field.FE{r})
}

// VPolyAdapter presents a VPoly as a Sumcheckable, mirroring MLEAdapter.
type VPolyAdapter struct {
	current poly.VPoly
}

// NewVPolyAdapter wraps v for the sumcheck driver.
func NewVPolyAdapter(v poly.VPoly) *VPolyAdapter {
	return &VPolyAdapter{current: v}
}

func (a *VPolyAdapter) Rounds() int       { return a.current.NumVars() }
func (a *VPolyAdapter) MaxVarDegree() int { return a.current.MaxDegree() }
func (a *VPolyAdapter) Eval(point []field.FE) field.FE {
	return a.current.Evaluate(point)
}
func (a *VPolyAdapter) Commit(t transcript.Transcript) {
	a.current.Commit(t)
}

func (a *VPolyAdapter) RoundMessage() []field.FE {
	d := a.MaxVarDegree()
	out := make([]field.FE, d+1)
	for t := 0; t <= d; t++ {
		out[t] = a.current.PartialEvaluate([]field.FE{field.BaseFromUint64(uint64(t))}).SumOverHypercube()
	}
	return out
}

func (a *VPolyAdapter) ReceiveChallenge(r field.FE) {
	a.current = a.current.PartialEvaluate([]field.FE{r})
}

var (
	_ Sumcheckable = (*MLEAdapter)(nil)
	_ Sumcheckable = (*VPolyAdapter)(nil)
)
