package poly

import (
	"fmt"

	"github.com/vybium/sumproof/field"
)

// BarycentricEval evaluates, at x, the degree-<=d polynomial given by its
// values y[0..d] at the integers 0..d:
//
//	m(x)   = prod_{j=0..d} (x - j)
//	d_i    = prod_{j!=i} (i - j)
//	result = m(x) * sum_i y_i / (d_i * (x - i))
//
// If x coincides exactly with one of the sample points i, the trivial
// lookup y[i] is returned instead (the formula's own m(x) term would make
// the general computation correct too, but dividing by x-i there requires
// the x==i term be excluded, so the direct path is both simpler and
// avoids a spurious inversion of zero).
func BarycentricEval(y []field.FE, x field.FE) field.FE {
	d := len(y) - 1
	if d < 1 {
		panic("poly: barycentric evaluation needs at least two sample points")
	}

	for i, yi := range y {
		if x.Sub(field.BaseFromUint64(uint64(i))).IsZero() {
			return yi
		}
	}

	m := field.One()
	for j := 0; j <= d; j++ {
		m = m.Mul(x.Sub(field.BaseFromUint64(uint64(j))))
	}

	sum := field.Zero()
	for i := 0; i <= d; i++ {
		di := field.One()
		for j := 0; j <= d; j++ {
			if j == i {
				continue
			}
			di = di.Mul(field.BaseFromUint64(uint64(i)).Sub(field.BaseFromUint64(uint64(j))))
		}
		denom := di.Mul(x.Sub(field.BaseFromUint64(uint64(i))))
		if denom.IsZero() {
			panic(fmt.Sprintf("poly: barycentric evaluation hit a zero denominator at i=%d; field characteristic too small for degree %d", i, d))
		}
		sum = sum.Add(y[i].Div(denom))
	}

	return m.Mul(sum)
}
