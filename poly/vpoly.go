package poly

import (
	"fmt"

	"github.com/vybium/sumproof/field"
	"github.com/vybium/sumproof/transcript"
)

// CombineFn combines one column of values, one per constituent MLE, into a
// single field element. It is shared (not copied) across VPoly clones.
type CombineFn func(column []field.FE) field.FE

// VPoly is a vector of co-dimensional MLEs combined through a caller
// supplied CombineFn: V(x) = combine(p_1(x), ..., p_m(x)).
type VPoly struct {
	mles      []MLE
	maxDegree int
	numVars   int
	combineFn CombineFn
}

// NewVPoly builds a VPoly from mles sharing exactly numVars variables, a
// caller-asserted maxDegree bounding the degree of the sumcheck round
// polynomial, and the combining function. It panics if the MLEs disagree
// on their variable count.
func NewVPoly(mles []MLE, maxDegree, numVars int, combineFn CombineFn) VPoly {
	for _, m := range mles {
		if m.NumVars() != numVars {
			panic(fmt.Sprintf("poly: VPoly expects %d variables, got an MLE with %d", numVars, m.NumVars()))
		}
	}
	return VPoly{mles: mles, maxDegree: maxDegree, numVars: numVars, combineFn: combineFn}
}

func (v VPoly) MaxDegree() int { return v.maxDegree }
func (v VPoly) NumVars() int   { return v.numVars }
func (v VPoly) NumMLEs() int   { return len(v.mles) }

// MLEs returns the constituent polynomials.
func (v VPoly) MLEs() []MLE {
	out := make([]MLE, len(v.mles))
	copy(out, v.mles)
	return out
}

// Evaluate returns combine(p_1.Evaluate(point), ..., p_m.Evaluate(point)).
func (v VPoly) Evaluate(point []field.FE) field.FE {
	column := make([]field.FE, len(v.mles))
	for i, m := range v.mles {
		column[i] = m.Evaluate(point)
	}
	return v.combineFn(column)
}

// PartialEvaluate folds each constituent MLE independently, preserving
// maxDegree and the combining function.
func (v VPoly) PartialEvaluate(points []field.FE) VPoly {
	folded := make([]MLE, len(v.mles))
	for i, m := range v.mles {
		folded[i] = m.PartialEvaluate(points)
	}
	return VPoly{
		mles:      folded,
		maxDegree: v.maxDegree,
		numVars:   v.numVars - len(points),
		combineFn: v.combineFn,
	}
}

// SumOverHypercube sums combine(column) over every point of the Boolean
// hypercube, in the extension field.
func (v VPoly) SumOverHypercube() field.FE {
	sum := field.Zero().AsExtension()
	size := 1 << uint(v.numVars)
	column := make([]field.FE, len(v.mles))
	for i := 0; i < size; i++ {
		for j, m := range v.mles {
			column[j] = m.At(i)
		}
		sum = sum.Add(v.combineFn(column))
	}
	return sum
}

// Commit absorbs each constituent MLE in order, then the declared
// maxDegree and numVars as base-field integers. The combining function
// itself is never absorbed: callers composing a real protocol on top must
// bind it by observing an application-specific tag beforehand.
func (v VPoly) Commit(t transcript.Transcript) {
	for _, m := range v.mles {
		m.Commit(t)
	}
	t.ObserveBase(field.BaseFromUint64(uint64(v.maxDegree)).RawBase())
	t.ObserveBase(field.BaseFromUint64(uint64(v.numVars)).RawBase())
}
