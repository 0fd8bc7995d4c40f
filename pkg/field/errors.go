package field

import "github.com/pkg/errors"

// ErrZeroInverse is returned when the modular inverse of zero is requested.
// Zero has no multiplicative inverse in any field, so callers hitting this
// have violated an invariant upstream (a duplicate or zero x-coordinate
// reaching the polynomial engine, for instance) -- it should never surface
// from the public shamir API.
var ErrZeroInverse = errors.New("zero has no inverse in GF(P)")
