// Package sumproof provides a sumcheck interactive proof engine and a
// GKR-style layered arithmetic circuit evaluator, reusable as a building
// block inside a larger SNARK construction.
//
// # Features
//
// - Dense multilinear polynomial (MLE) evaluation, partial evaluation and
//   hypercube summation
// - Virtual polynomials (VPoly): vectors of MLEs combined through a
//   caller-supplied function
// - A protocol-agnostic sumcheck prover/verifier driven by the
//   Sumcheckable capability, in full and GKR-composable partial variants
// - A padded-sumcheck adapter extending a prover to a higher round count
// - A layered arithmetic circuit evaluator producing per-layer execution
//   traces and dense or sparse (Libra) selector MLEs
// - A Fiat-Shamir transcript reference implementation
//
// # Quick start
//
// Running a sumcheck proof over a multilinear polynomial:
//
//	p := sumproof.NewMLE(3, evaluations)
//	claimedSum := p.SumOverHypercube()
//
//	prover := transcript.NewFiatShamir("example")
//	proof := sumproof.Prove(claimedSum, sumproof.NewMLEAdapter(p), prover)
//
//	verifier := transcript.NewFiatShamir("example")
//	ok, err := sumproof.Verify(sumproof.NewMLEAdapter(p), proof, verifier)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if ok {
//		fmt.Println("proof accepted")
//	}
//
// Evaluating a layered circuit and obtaining a layer's selector MLEs for a
// GKR-style sumcheck:
//
//	c := sumproof.NewCircuit(layers, inputWidth)
//	trace := c.Execute(inputs)
//	addMLE, mulMLE := c.AddAndMulMLE(layerIndex)
//
// # Architecture
//
// - pkg/sumproof/: public API (this package)
// - field/, poly/, sumcheck/, circuit/, transcript/: implementation
//   packages, safe to import directly for callers that need more than
//   this façade re-exports
// - internal/sumproof/: shared ambient helpers (errors, bit-length
//   utilities, the Fiat-Shamir byte channel), not importable outside
//   this module
//
// # Non-goals
//
// This module does not implement zero-knowledge randomization, a
// polynomial commitment scheme, concrete hash primitives as first-class
// protocol components, full GKR/Libra-GKR proof composition, batching
// beyond what combining functions already provide, or parallel execution.
//
// # License
//
// This repository does not include a LICENSE file.
package sumproof
