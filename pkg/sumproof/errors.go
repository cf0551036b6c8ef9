package sumproof

import "github.com/vybium/sumproof/internal/sumproof/errs"

// ErrorKind classifies the three failure modes this module distinguishes.
type ErrorKind = errs.Kind

const (
	// ErrKindPrecondition marks a programming error: wrong vector length,
	// variable-count mismatch, out-of-range gate index, and the like.
	ErrKindPrecondition = errs.Precondition
	// ErrKindProofRejected marks a recoverable sumcheck verification failure.
	ErrKindProofRejected = errs.ProofRejected
	// ErrKindFieldArithmetic marks a field arithmetic anomaly, such as
	// inverting zero inside barycentric evaluation.
	ErrKindFieldArithmetic = errs.FieldArithmetic
)

// SumProofError is this module's public ambient error type, carrying an
// ErrorKind and an optional wrapped cause.
type SumProofError = errs.Error

// NewError builds a SumProofError with no wrapped cause.
func NewError(kind ErrorKind, message string) *SumProofError {
	return errs.New(kind, message)
}

// WrapError builds a SumProofError wrapping cause.
func WrapError(kind ErrorKind, message string, cause error) *SumProofError {
	return errs.Wrap(kind, message, cause)
}
