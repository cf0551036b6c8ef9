// Package poly implements dense multilinear extensions (MLE) and virtual
// polynomials (VPoly) over the Boolean hypercube.
package poly

import (
	"fmt"

	"github.com/vybium/sumproof/field"
	"github.com/vybium/sumproof/transcript"
)

// MLE is a dense evaluation-form multilinear polynomial over its 2^n
// hypercube values. Variable 0 is the most significant index bit: index
// i = sum_k b_k*2^(n-1-k) holds p(b_0, b_1, ..., b_{n-1}), so fixing
// variable 0 selects the lower or upper half of the table.
type MLE struct {
	evaluations []field.FE
	nVars       int
}

// New builds an MLE from nVars variables and its 2^nVars hypercube values.
// It panics if the lengths don't match: a wrong-length evaluation vector is
// a programming error, not a recoverable one.
func New(nVars int, evals []field.FE) MLE {
	if len(evals) != 1<<uint(nVars) {
		panic(fmt.Sprintf("poly: MLE needs %d evaluations for %d variables, got %d", 1<<uint(nVars), nVars, len(evals)))
	}
	return MLE{evaluations: evals, nVars: nVars}
}

// Zero returns the all-zero MLE over nVars variables.
func Zero(nVars int) MLE {
	evals := make([]field.FE, 1<<uint(nVars))
	for i := range evals {
		evals[i] = field.Zero()
	}
	return MLE{evaluations: evals, nVars: nVars}
}

// NumVars returns the number of variables.
func (p MLE) NumVars() int {
	return p.nVars
}

// MaxDegree is always 1: every variable appears with degree at most 1.
func (p MLE) MaxDegree() int {
	return 1
}

// Evaluations exposes the underlying hypercube values in storage order.
func (p MLE) Evaluations() []field.FE {
	return p.evaluations
}

// At returns the raw stored evaluation at hypercube index i.
func (p MLE) At(i int) field.FE {
	return p.evaluations[i]
}

// PartialEvaluate fixes the first len(points) variables, in declaration
// order (variable 0 first), and returns the resulting MLE over the
// remaining nVars-len(points) variables. Boolean fixed points select a
// half of the table directly; any other point interpolates linearly.
func (p MLE) PartialEvaluate(points []field.FE) MLE {
	if len(points) > p.nVars {
		panic(fmt.Sprintf("poly: cannot fix %d variables on an MLE of %d variables", len(points), p.nVars))
	}

	current := append([]field.FE(nil), p.evaluations...)
	mid := len(current) / 2
	for _, r := range points {
		next := make([]field.FE, mid)
		for i := 0; i < mid; i++ {
			left := current[i]
			right := current[i+mid]
			switch {
			case r.IsBase() && r.RawBase().IsZero():
				next[i] = left
			case r.IsBase() && r.RawBase().IsOne():
				next[i] = right
			default:
				// left + r*(right - left)
				next[i] = left.AsExtension().Add(r.Mul(right.Sub(left)))
			}
		}
		current = next
		mid /= 2
	}

	return MLE{evaluations: current, nVars: p.nVars - len(points)}
}

// Evaluate fully evaluates the polynomial at a point of exactly NumVars
// coordinates.
func (p MLE) Evaluate(point []field.FE) field.FE {
	if len(point) != p.nVars {
		panic(fmt.Sprintf("poly: MLE.Evaluate wants %d coordinates, got %d", p.nVars, len(point)))
	}
	return p.PartialEvaluate(point).evaluations[0]
}

// SumOverHypercube sums every stored evaluation. The result is an
// Extension value if any stored evaluation is one, and stays Base otherwise.
func (p MLE) SumOverHypercube() field.FE {
	sum := field.Zero()
	for _, v := range p.evaluations {
		sum = sum.Add(v)
	}
	return sum
}

// Commit absorbs every evaluation into the transcript in storage order,
// routing base values through ObserveBase and extension values through
// ObserveExt.
func (p MLE) Commit(t transcript.Transcript) {
	for _, v := range p.evaluations {
		if v.IsBase() {
			t.ObserveBase(v.RawBase())
		} else {
			t.ObserveExt(v.RawExt())
		}
	}
}
