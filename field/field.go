// Package field implements the tagged base/extension field element used
// throughout the sumcheck and circuit packages.
//
// A value is either a base-field element or an extension-field element.
// Keeping the two apart avoids lifting every base value into the (wider)
// extension field eagerly; promotion happens lazily the first time a value
// touches an extension-field operand.
package field

import (
	"fmt"

	bfield "github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/xfield"
)

// BaseField and ExtField are the concrete element types this module binds
// FE's two cases to. They come from the project's real finite-field
// dependency rather than a hand-rolled implementation.
type BaseField = bfield.Element
type ExtField = xfield.XFieldElement

// Kind discriminates the two cases an FE can hold.
type Kind uint8

const (
	KindBase Kind = iota
	KindExtension
)

// FE is the tagged union Base(b) | Extension(e). Mixed-kind arithmetic
// always produces an Extension value.
type FE struct {
	kind Kind
	base BaseField
	ext  ExtField
}

// Base wraps a base-field element.
func Base(b BaseField) FE {
	return FE{kind: KindBase, base: b}
}

// Extension wraps an extension-field element.
func Extension(e ExtField) FE {
	return FE{kind: KindExtension, ext: e}
}

// BaseFromUint64 embeds a usize/uint64 into the base field canonically.
func BaseFromUint64(v uint64) FE {
	return Base(bfield.New(v))
}

// Zero returns the additive identity, stored as a base element.
func Zero() FE {
	return Base(bfield.Zero)
}

// One returns the multiplicative identity, stored as a base element.
func One() FE {
	return Base(bfield.One)
}

// Kind reports which case this value holds.
func (a FE) Kind() Kind {
	return a.kind
}

// IsBase reports whether the value is still stored in the base field.
func (a FE) IsBase() bool {
	return a.kind == KindBase
}

// RawBase returns the stored base element. Only meaningful when IsBase().
func (a FE) RawBase() BaseField {
	return a.base
}

// RawExt returns the stored extension element. Only meaningful when
// Kind() == KindExtension.
func (a FE) RawExt() ExtField {
	return a.ext
}

// ToExtension lifts a Base value to Extension; it is the identity on an
// already-Extension value.
func (a FE) ToExtension() ExtField {
	if a.kind == KindExtension {
		return a.ext
	}
	return xfield.NewConst(a.base)
}

// AsExtension returns a itself re-tagged as Extension.
func (a FE) AsExtension() FE {
	return Extension(a.ToExtension())
}

func (a FE) Add(b FE) FE {
	if a.kind == KindBase && b.kind == KindBase {
		return Base(a.base.Add(b.base))
	}
	return Extension(a.ToExtension().Add(b.ToExtension()))
}

func (a FE) Sub(b FE) FE {
	if a.kind == KindBase && b.kind == KindBase {
		return Base(a.base.Sub(b.base))
	}
	return Extension(a.ToExtension().Sub(b.ToExtension()))
}

func (a FE) Mul(b FE) FE {
	if a.kind == KindBase && b.kind == KindBase {
		return Base(a.base.Mul(b.base))
	}
	return Extension(a.ToExtension().Mul(b.ToExtension()))
}

func (a FE) Neg() FE {
	if a.kind == KindBase {
		return Base(a.base.Neg())
	}
	return Extension(a.ext.Neg())
}

// Inverse panics (via the underlying field) if a is zero; callers that can
// hit a zero denominator must check IsZero first - see poly.BarycentricEval.
func (a FE) Inverse() FE {
	if a.kind == KindBase {
		return Base(a.base.Inverse())
	}
	return Extension(a.ext.Inverse())
}

func (a FE) Div(b FE) FE {
	return a.Mul(b.Inverse())
}

func (a FE) IsZero() bool {
	if a.kind == KindBase {
		return a.base.IsZero()
	}
	return a.ext.IsZero()
}

func (a FE) IsOne() bool {
	if a.kind == KindBase {
		return a.base.IsOne()
	}
	return a.ext.IsOne()
}

func (a FE) Equal(b FE) bool {
	if a.kind == KindBase && b.kind == KindBase {
		return a.base.Equal(b.base)
	}
	return a.ToExtension().Equal(b.ToExtension())
}

func (a FE) String() string {
	if a.kind == KindBase {
		return fmt.Sprintf("Base(%s)", a.base.String())
	}
	return fmt.Sprintf("Ext(%s)", a.ext.String())
}

// ProductOver multiplies a sequence of FE values left to right, starting
// from Base(one).
func ProductOver(vals []FE) FE {
	acc := One()
	for _, v := range vals {
		acc = acc.Mul(v)
	}
	return acc
}
