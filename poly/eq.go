package poly

import "github.com/vybium/sumproof/field"

// EQ builds the 2^n-entry evaluation table of the equality-indicator
// polynomial eq(r, x) = prod_k (r_k*x_k + (1-r_k)*(1-x_k)) for r =
// (r_1, ..., r_n), by iterative tensor expansion: starting from [1], each
// r_k replaces the current vector v with the concatenation of
// v*(1-r_k) and v*r_k.
func EQ(r []field.FE) MLE {
	v := []field.FE{field.One()}
	for _, rk := range r {
		oneMinusRk := field.One().Sub(rk)
		next := make([]field.FE, 0, len(v)*2)
		for _, e := range v {
			next = append(next, e.Mul(oneMinusRk))
		}
		for _, e := range v {
			next = append(next, e.Mul(rk))
		}
		v = next
	}
	return New(len(r), v)
}
