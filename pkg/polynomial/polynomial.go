// Package polynomial implements the polynomial engine the Shamir scheme in
// pkg/shamir is built on: evaluating a degree-(K-1) polynomial at a point,
// and reconstructing one from a set of points via Lagrange interpolation.
// All arithmetic is performed in GF(P) via pkg/field.
package polynomial

import (
	"io"
	"math/big"

	"github.com/duskfall-labs/threshold/pkg/field"
	"github.com/pkg/errors"
)

// Polynomial represents a polynomial of degree len(p)-1 with coefficients in
// GF(P), stored in *increasing* power of x:
//
//	p_0 + p_1 x^1 + p_2 x^2 + ... + p_n x^n
type Polynomial []*big.Int

// Random generates a new polynomial of the given degree with the provided
// constant term (the secret byte being shared) and coefficients drawn
// uniformly from [0, P) via r. Unlike some Shamir implementations, zero
// coefficients are permitted for c_1..c_{degree} -- the scheme's security
// does not depend on excluding them, and excluding them would make the
// distribution non-uniform.
func Random(degree uint, constant *big.Int, r io.Reader) (Polynomial, error) {
	poly := make(Polynomial, degree+1)
	poly[0] = new(big.Int).Mod(constant, field.Prime)
	for i := uint(1); i <= degree; i++ {
		c, err := field.Random(r)
		if err != nil {
			return nil, errors.Wrapf(err, "sample coefficient %d", i)
		}
		poly[i] = c
	}
	return poly, nil
}

// SumPolynomials computes P(x) = sum_i p_i(x) mod P, for a set of
// polynomials that need not share a degree. Used by Interpolate to combine
// the Lagrange basis polynomials into the final reconstructed polynomial.
func SumPolynomials(polynomials ...Polynomial) Polynomial {
	size := 1
	for _, poly := range polynomials {
		if len(poly) > size {
			size = len(poly)
		}
	}

	sum := make(Polynomial, size)
	for idx := range sum {
		sum[idx] = new(big.Int)
	}
	for _, poly := range polynomials {
		for idx := range poly {
			sum[idx] = field.Add(sum[idx], poly[idx])
		}
	}
	return sum
}

// SetConst sets the constant term (the coefficient of x^0) of the
// polynomial. It panics on an empty polynomial, which indicates a bug in the
// caller rather than a condition a caller can usefully recover from.
func (p Polynomial) SetConst(a0 *big.Int) {
	if len(p) < 1 {
		panic("polynomial: SetConst on empty Polynomial")
	}
	p[0] = new(big.Int).Set(a0)
}

// Const returns the constant term of the polynomial, i.e. f(0).
func (p Polynomial) Const() *big.Int {
	if len(p) < 1 {
		panic("polynomial: Const on empty Polynomial")
	}
	return p[0]
}

// Degree returns the "real" degree of p, the highest power of x with a
// non-zero coefficient. It is distinct from len(p)-1 when p has trailing
// zero coefficients.
func (p Polynomial) Degree() uint {
	degree := uint(len(p) - 1)
	for degree > 0 && p[degree].Sign() == 0 {
		degree--
	}
	return degree
}

// Evaluate computes p(x) mod P using Horner's method, which keeps every
// intermediate value reduced and avoids building up an oversized integer
// before taking the final modulus.
func (p Polynomial) Evaluate(x *big.Int) (*big.Int, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPolynomial
	}
	result := new(big.Int)
	for i := len(p) - 1; i >= 0; i-- {
		result = field.Add(field.Mul(result, x), p[i])
	}
	return result, nil
}
