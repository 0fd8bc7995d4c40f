package polynomial

import (
	"math/big"

	"github.com/duskfall-labs/threshold/pkg/field"
)

// Point represents an (x, y) pair used for Lagrange interpolation.
type Point struct {
	X, Y *big.Int
}

// uniquePoints returns the points with distinct x-coordinates (the first
// occurrence of each x wins), and reports whether any duplicate x-value
// disagreed with an earlier one on y.
func uniquePoints(points []Point) (unique []Point, inconsistent bool) {
	seen := map[string]int{}
	for idx, point := range points {
		key := point.X.String()
		if oldIdx, ok := seen[key]; !ok {
			unique = append(unique, point)
			seen[key] = idx
		} else if points[oldIdx].Y.Cmp(point.Y) != 0 {
			inconsistent = true
		}
	}
	return unique, inconsistent
}

// InterpolateConst interpolates the constant term of the degree-`degree`
// polynomial that fits the given points, using the optimised Lagrange
// expression that only ever computes L(0):
//
//	L(0) = sum_j f(x_j) * prod_{m!=j} x_m / (x_m - x_j)
//
// If more than degree+1 distinct points are supplied, only the first
// degree+1 (in the given order, after deduplication) are used -- callers
// that want every supplied point to influence the result should pass
// degree = len(points)-1, which is what pkg/shamir's Combine does.
func InterpolateConst(degree uint, points ...Point) (*big.Int, error) {
	if degree < 1 {
		return nil, ErrInvalidDegree
	}
	points, inconsistent := uniquePoints(points)
	if inconsistent {
		return nil, ErrDuplicateX
	}
	k := degree + 1
	if uint(len(points)) < k {
		return nil, ErrTooFewPoints
	}
	points = points[:k]

	l0 := new(big.Int)
	for j := range points {
		yj := points[j].Y
		prod := big.NewInt(1)
		for m := 0; uint(m) < k; m++ {
			if m == j {
				continue
			}
			xmXj := field.Sub(points[m].X, points[j].X)
			invXmXj, err := field.Inv(xmXj)
			if err != nil {
				return nil, err
			}
			frac := field.Mul(points[m].X, invXmXj)
			prod = field.Mul(prod, frac)
		}
		term := field.Mul(yj, prod)
		l0 = field.Add(l0, term)
	}
	return l0, nil
}

// combinations returns the set of r-length, in-original-order combinations
// of the indices [0, n), matching Python's itertools.combinations(range(n),
// r) semantics. Used by Interpolate to expand the Lagrange basis
// polynomials' numerators into explicit coefficients.
func combinations(n, r int) [][]int {
	switch {
	case n < 0, r < 0, r > n:
		return nil
	case r == 0:
		return [][]int{{}}
	}

	idxs := make([]int, r)
	for i := range idxs {
		idxs[i] = i
	}
	combs := [][]int{append([]int{}, idxs...)}
	for {
		var i int
		for i = r - 1; i >= 0; i-- {
			if idxs[i] != i+n-r {
				break
			}
		}
		if i < 0 {
			break
		}
		idxs[i]++
		for j := i + 1; j < r; j++ {
			idxs[j] = idxs[j-1] + 1
		}
		combs = append(combs, append([]int{}, idxs...))
	}
	return combs
}

// Interpolate reconstructs the entire degree-`degree` polynomial that fits
// the given points, not just its constant term. This costs substantially
// more than InterpolateConst, but the reconstructed Polynomial can then be
// evaluated at new points -- which is how pkg/shamir's Extend derives
// additional shares compatible with an existing set.
//
// The classical Lagrange expression
//
//	L(x)   = sum_j f(x_j) l_j(x)
//	l_j(x) = prod_{m!=j} (x - x_m) / (x_j - x_m)
//
// is rearranged so the denominator (a constant) is factored out and the
// numerator is expanded via multi-index notation:
//
//	(x+a_1)(x+a_2)...(x+a_n) = sum_i COMB(a,i) x^i
//
// where COMB(a,i) is the sum over length-i combinations (without
// replacement) of the a's.
func Interpolate(degree uint, points ...Point) (Polynomial, error) {
	if degree < 1 {
		return nil, ErrInvalidDegree
	}
	points, inconsistent := uniquePoints(points)
	if inconsistent {
		return nil, ErrDuplicateX
	}
	k := degree + 1
	if uint(len(points)) < k {
		return nil, ErrTooFewPoints
	}
	points = points[:k]

	var basisPolynomials []Polynomial
	for j := range points {
		scaleFactor := new(big.Int).Set(points[j].Y)
		prodXjXm := big.NewInt(1)
		for m := 0; uint(m) < k; m++ {
			if m == j {
				continue
			}
			xjXm := field.Sub(points[j].X, points[m].X)
			prodXjXm = field.Mul(prodXjXm, xjXm)
		}
		prodXjXmInv, err := field.Inv(prodXjXm)
		if err != nil {
			return nil, err
		}
		scaleFactor = field.Mul(scaleFactor, prodXjXmInv)

		var negXms []*big.Int
		for m := 0; uint(m) < k; m++ {
			if m == j {
				continue
			}
			negXms = append(negXms, field.Sub(new(big.Int), points[m].X))
		}

		basis := make(Polynomial, k)
		for m := 0; uint(m) < k; m++ {
			coeff := new(big.Int)
			for _, set := range combinations(len(negXms), int(k-1)-m) {
				part := big.NewInt(1)
				for _, setIdx := range set {
					part = field.Mul(part, negXms[setIdx])
				}
				coeff = field.Add(coeff, part)
			}
			basis[m] = field.Mul(coeff, scaleFactor)
		}
		basisPolynomials = append(basisPolynomials, basis)
	}

	return SumPolynomials(basisPolynomials...), nil
}
