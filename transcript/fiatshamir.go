package transcript

import (
	"math/big"

	bfield "github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/xfield"

	"github.com/vybium/sumproof/field"
	"github.com/vybium/sumproof/internal/sumproof/channel"
)

// FiatShamir is the reference Transcript implementation: a sha3 absorb/
// squeeze channel wrapping field-element (de)serialization via the
// elements' canonical string form, and extension-field challenge sampling
// by squeezing one base-field coordinate per extension-field coefficient.
type FiatShamir struct {
	label string
	ch    *channel.Channel
}

// NewFiatShamir seeds a fresh transcript deterministically from label; a
// prover and a verifier that construct one with the same label and then
// call identical sequences of operations absorb identical byte-streams.
func NewFiatShamir(label string) *FiatShamir {
	t := &FiatShamir{label: label}
	t.Init()
	return t
}

func (t *FiatShamir) Init() {
	t.ch = channel.New(t.label)
}

func (t *FiatShamir) ObserveBase(xs ...field.BaseField) {
	for _, x := range xs {
		t.ch.Absorb([]byte(x.String()))
	}
}

func (t *FiatShamir) ObserveExt(xs ...field.ExtField) {
	for _, x := range xs {
		t.ch.Absorb([]byte(x.String()))
	}
}

func (t *FiatShamir) SampleChallenge() field.ExtField {
	return t.sampleExt()
}

func (t *FiatShamir) SampleNChallenges(n int) []field.ExtField {
	out := make([]field.ExtField, n)
	for i := range out {
		out[i] = t.sampleExt()
	}
	return out
}

func (t *FiatShamir) sampleExt() field.ExtField {
	var coeffs [3]bfield.Element
	for i := range coeffs {
		coeffs[i] = t.sampleBase()
	}
	return xfield.New(coeffs)
}

func (t *FiatShamir) sampleBase() bfield.Element {
	raw := t.ch.Squeeze()
	v := new(big.Int).SetBytes(raw)
	modulus := new(big.Int).SetUint64(bfield.P)
	v.Mod(v, modulus)
	return bfield.New(v.Uint64())
}

var _ Transcript = (*FiatShamir)(nil)
