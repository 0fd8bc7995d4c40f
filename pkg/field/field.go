// Package field implements arithmetic over GF(P), the finite field used by
// the Shamir secret sharing scheme in pkg/shamir. P is fixed and pinned here
// rather than being a parameter of the API: shares produced under one P are
// not interoperable with shares produced under another, so the choice is a
// property of the library, not of a caller's Config.
package field

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// Prime is P, the modulus of the field every share arithmetic operation is
// performed in. It is fixed at 2^257 - 93, which exceeds every possible byte
// value (0-255) by a wide margin, as required for the scheme's constant-term
// embedding to be lossless.
//
//nolint:gochecknoglobals // pinned library constant, computed once at init
var Prime = computePrime()

func computePrime() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 257)
	p.Sub(p, big.NewInt(93))
	return p
}

// ByteWidth is the number of bytes needed to hold any field element in a
// fixed-width big-endian encoding, i.e. ceil(log2(P)/8). This is the
// per-column y-value width used by the canonical share wire form.
var ByteWidth = (Prime.BitLen() + 7) / 8

// reduce returns x reduced into [0, P), normalizing negative results the way
// big.Int.Mod already does (Go's Mod always returns a non-negative result for
// a positive modulus, unlike Rem).
func reduce(x *big.Int) *big.Int {
	return new(big.Int).Mod(x, Prime)
}

// Add returns (a+b) mod P.
func Add(a, b *big.Int) *big.Int {
	sum := new(big.Int).Add(a, b)
	return reduce(sum)
}

// Sub returns (a-b) mod P, normalized to [0, P).
func Sub(a, b *big.Int) *big.Int {
	diff := new(big.Int).Sub(a, b)
	return reduce(diff)
}

// Mul returns (a*b) mod P.
func Mul(a, b *big.Int) *big.Int {
	prod := new(big.Int).Mul(a, b)
	return reduce(prod)
}

// Inv returns the unique x such that a*x = 1 (mod P), using the extended
// Euclidean algorithm (big.Int.ModInverse's implementation). It fails with
// ErrZeroInverse if a is congruent to zero mod P.
func Inv(a *big.Int) (*big.Int, error) {
	reduced := reduce(a)
	if reduced.Sign() == 0 {
		return nil, ErrZeroInverse
	}
	inv := new(big.Int).ModInverse(reduced, Prime)
	if inv == nil {
		// Unreachable given Prime is prime and reduced != 0, but ModInverse
		// returns nil rather than an error on failure so we guard explicitly.
		return nil, errors.Wrap(ErrZeroInverse, "modular inverse undefined")
	}
	return inv, nil
}

// Random draws a uniformly random element of [0, P) from r, which must be a
// cryptographically suitable source when used for share generation (a
// predictable source destroys secrecy -- see pkg/shamir's RandomnessFailure
// error).
func Random(r io.Reader) (*big.Int, error) {
	v, err := rand.Int(r, Prime)
	if err != nil {
		return nil, errors.Wrap(err, "draw random field element")
	}
	return v, nil
}

// InRange reports whether y is a valid field element, i.e. 0 <= y < P. Every
// y-value transmitted in a share must satisfy this.
func InRange(y *big.Int) bool {
	return y.Sign() >= 0 && y.Cmp(Prime) < 0
}
