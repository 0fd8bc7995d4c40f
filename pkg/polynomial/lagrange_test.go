package polynomial

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"reflect"
	"testing"

	"github.com/duskfall-labs/threshold/pkg/field"
)

// testInterpolateHelper builds a random polynomial of a random degree and a
// handful of points on it, for a range of point-set sizes around the
// polynomial's degree, and hands both to fn.
func testInterpolateHelper(t *testing.T, fn func(t *testing.T, poly Polynomial, points []Point)) {
	const trials = 16
	const maxDegree = 12
	for i := 0; i < trials; i++ {
		tn := fmt.Sprintf("trial_%d", i)
		t.Run(tn, func(t *testing.T) {
			degree := uint(rng.Intn(maxDegree)) + 1
			constant, err := field.Random(rand.Reader)
			if err != nil {
				t.Fatalf("failed to draw constant term: %v", err)
			}
			poly, err := Random(degree, constant, rand.Reader)
			if err != nil {
				t.Fatalf("failed to get Random(%d, ...): %v", degree, err)
			}

			lo := degree - 1
			if degree == 1 {
				lo = 0
			}
			for n := lo; n < degree+3; n++ {
				tn := fmt.Sprintf("points_n=%d", n)
				t.Run(tn, func(t *testing.T) {
					points := make([]Point, n)
					for idx := range points {
						x, err := field.Random(rand.Reader)
						if err != nil {
							t.Fatalf("failed to get random x value: %v", err)
						}
						y, err := poly.Evaluate(x)
						if err != nil {
							t.Fatalf("failed to evaluate poly(%v): %v", x, err)
						}
						points[idx] = Point{X: x, Y: y}
					}
					fn(t, poly, points)
				})
			}
		})
	}
}

// TestInterpolate checks that interpolating enough points of a random
// polynomial reconstructs it exactly, and that too few points fails.
func TestInterpolate(t *testing.T) {
	testInterpolateHelper(t, func(t *testing.T, poly Polynomial, points []Point) {
		interpolated, err := Interpolate(poly.Degree(), points...)
		if uint(len(points)) > poly.Degree() {
			if err != nil {
				t.Errorf("interpolation failed unexpectedly: %v", err)
			} else if !reflect.DeepEqual(poly, interpolated) {
				t.Errorf("incorrect interpolation: expected %v got %v", poly, interpolated)
			}
		} else if err == nil {
			t.Errorf("interpolation succeeded unexpectedly with too few points")
		}
	})
}

// TestInterpolateConst checks the same property for the constant-only fast
// path used by pkg/shamir's Combine.
func TestInterpolateConst(t *testing.T) {
	testInterpolateHelper(t, func(t *testing.T, poly Polynomial, points []Point) {
		p0, err := poly.Evaluate(new(big.Int))
		if err != nil {
			t.Fatalf("evaluation of polynomial failed unexpectedly: %v", err)
		}
		l0, err := InterpolateConst(poly.Degree(), points...)
		if uint(len(points)) > poly.Degree() {
			if err != nil {
				t.Errorf("interpolation failed unexpectedly: %v", err)
			} else if p0.Cmp(l0) != 0 {
				t.Errorf("incorrect interpolation: expected %v got %v", p0, l0)
			}
		} else if err == nil {
			t.Errorf("interpolation succeeded unexpectedly with too few points")
		}
	})
}

// TestInterpolateConstDuplicateX checks that an inconsistent duplicate
// x-coordinate is rejected rather than silently producing a wrong answer.
func TestInterpolateConstDuplicateX(t *testing.T) {
	x := big.NewInt(7)
	points := []Point{
		{X: x, Y: big.NewInt(1)},
		{X: x, Y: big.NewInt(2)},
		{X: big.NewInt(8), Y: big.NewInt(3)},
	}
	if _, err := InterpolateConst(1, points...); err != ErrDuplicateX {
		t.Errorf("expected ErrDuplicateX, got %v", err)
	}
}

// TestCombinations ensures combinations(n, r) produces nCr subsets, each of
// length r -- it underlies Interpolate's numerator expansion.
func TestCombinations(t *testing.T) {
	for n := 0; n < 8; n++ {
		for r := 0; r < 8; r++ {
			tn := fmt.Sprintf("C_n=%v_r=%v", n, r)
			t.Run(tn, func(t *testing.T) {
				sets := combinations(n, r)
				for idx, set := range sets {
					if len(set) != r {
						t.Errorf("set[%d] %v has unexpected length: expected %d got %d", idx, set, r, len(set))
					}
				}
				expected := new(big.Int).Binomial(int64(n), int64(r))
				if expected.Cmp(big.NewInt(int64(len(sets)))) != 0 {
					t.Errorf("set length is not nCr: expected %v got %d", expected, len(sets))
				}
			})
		}
	}
}
