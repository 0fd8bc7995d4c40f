package polynomial

import "github.com/pkg/errors"

var (
	// ErrEmptyPolynomial is returned when Evaluate is called on a
	// Polynomial with no coefficients at all (as opposed to Degree() == 0).
	ErrEmptyPolynomial = errors.New("polynomial has no coefficients")

	// ErrInvalidDegree is returned when a degree of zero or less is
	// requested for interpolation; a degree-0 "polynomial" is just its
	// constant and doesn't need Lagrange interpolation to recover.
	ErrInvalidDegree = errors.New("degree must be at least one")

	// ErrTooFewPoints is returned when fewer than degree+1 points are
	// supplied for interpolation.
	ErrTooFewPoints = errors.New("too few points for lagrange interpolation")

	// ErrDuplicateX is returned when two points share an x-coordinate but
	// disagree on y -- the point set doesn't describe a function. Points
	// that agree on y are silently deduplicated instead.
	ErrDuplicateX = errors.New("inconsistent points: duplicate x with different y")
)
