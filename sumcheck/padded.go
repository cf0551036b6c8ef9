package sumcheck

import (
	"fmt"

	"github.com/vybium/sumproof/field"
	"github.com/vybium/sumproof/transcript"
)

// Padded wraps an inner Sumcheckable of n rounds to present n+padCount
// rounds, representing f(x_1,...,x_n) * x_{n+1} * ... * x_{n+padCount}.
// This is the trick that lets a single sumcheck instance run over
// polynomials of different variable counts inside a larger protocol.
type Padded struct {
	inner      Sumcheckable
	padCount   int
	n          int
	maxVarDeg  int
	roundsDone int
	e          field.FE
}

// NewPadded builds the adapter. padCount must be at least 1.
func NewPadded(inner Sumcheckable, padCount int) *Padded {
	if padCount < 1 {
		panic("sumcheck: padded-sumcheck pad count must be >= 1")
	}
	return &Padded{
		inner:     inner,
		padCount:  padCount,
		n:         inner.Rounds(),
		maxVarDeg: inner.MaxVarDegree(),
	}
}

func (p *Padded) Rounds() int {
	return p.n + p.padCount - p.roundsDone
}

func (p *Padded) MaxVarDegree() int {
	return p.maxVarDeg
}

func (p *Padded) RoundMessage() []field.FE {
	if p.roundsDone < p.n {
		return p.inner.RoundMessage()
	}
	d := p.maxVarDeg
	out := make([]field.FE, d+2)
	for t := 0; t <= d+1; t++ {
		out[t] = field.BaseFromUint64(uint64(t)).Mul(p.e)
	}
	return out
}

func (p *Padded) ReceiveChallenge(r field.FE) {
	if p.roundsDone < p.n {
		p.inner.ReceiveChallenge(r)
		p.roundsDone++
		if p.roundsDone == p.n {
			p.e = p.inner.Eval(nil)
		}
		return
	}
	p.e = p.e.Mul(r)
	p.roundsDone++
}

func (p *Padded) Eval(point []field.FE) field.FE {
	if len(point) != p.n+p.padCount {
		panic(fmt.Sprintf("sumcheck: Padded.Eval wants %d coordinates, got %d", p.n+p.padCount, len(point)))
	}
	innerVal := p.inner.Eval(point[:p.n])
	return innerVal.Mul(field.ProductOver(point[p.n:]))
}

func (p *Padded) Commit(t transcript.Transcript) {
	p.inner.Commit(t)
	t.ObserveBase(field.BaseFromUint64(uint64(p.padCount)).RawBase())
}

var _ Sumcheckable = (*Padded)(nil)
