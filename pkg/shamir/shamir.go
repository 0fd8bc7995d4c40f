// Package shamir implements Shamir's Secret Sharing Scheme over GF(P): it
// splits a secret byte string into N shares such that any K of them
// reconstruct the secret exactly, while fewer than K leak nothing beyond
// the secret's length. Each byte of the secret is the constant term of an
// independent degree-(K-1) polynomial; shares are that polynomial family
// evaluated at a shared set of x-coordinates. See pkg/field for the
// underlying arithmetic and pkg/polynomial for evaluation/interpolation.
//
// The package never logs and never panics on documented inputs; every
// failure mode except Extend's rejection of a non-positive count is a
// sentinel error in errors.go that callers can recognise with errors.Is.
// That one case returns a plain error with no sentinel.
package shamir

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/duskfall-labs/threshold/pkg/polynomial"
	"github.com/duskfall-labs/threshold/pkg/share"
	"github.com/pkg/errors"
)

// Split divides secret into cfg.SharesToCreate shares, cfg.Threshold of
// which reconstruct it exactly. random supplies the per-byte polynomial
// coefficients and must be a cryptographically suitable source; it
// defaults to crypto/rand.Reader when nil.
func Split(cfg Config, secret []byte, random io.Reader) ([]share.Share, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if len(secret) > cfg.MaxSecretSize {
		return nil, errors.Wrapf(ErrSecretTooLarge, "secret length %d exceeds max %d", len(secret), cfg.MaxSecretSize)
	}
	if random == nil {
		random = rand.Reader
	}

	ids := referenceIds(cfg.SharesToCreate)
	shares := make([]share.Share, len(ids))
	xs := make([]*big.Int, len(ids))
	for i, id := range ids {
		shares[i] = share.Share{ID: id, Points: make([]*big.Int, len(secret))}
		xs[i] = big.NewInt(int64(id))
	}

	degree := uint(cfg.Threshold - 1)
	for byteIdx, b := range secret {
		poly, err := polynomial.Random(degree, big.NewInt(int64(b)), random)
		if err != nil {
			return nil, errors.Wrap(ErrRandomnessFailure, err.Error())
		}
		for shareIdx, x := range xs {
			y, err := poly.Evaluate(x)
			if err != nil {
				return nil, errors.Wrapf(err, "evaluate byte %d at share %d", byteIdx, shares[shareIdx].ID)
			}
			shares[shareIdx].Points[byteIdx] = y
		}
	}
	return shares, nil
}

// Combine reconstructs the secret from a set of shares. It requires at
// least two shares, pairwise distinct ids, and points sequences of equal
// length; it does not and cannot verify that the supplied shares actually
// number at least the original threshold K. With fewer than K genuine
// shares it usually fails with ErrReconstructionOutOfRange, but it can
// also return a wrong secret without any error.
func Combine(shares []share.Share) ([]byte, error) {
	switch {
	case len(shares) == 0:
		return nil, ErrNoShares
	case len(shares) < 2:
		return nil, ErrInsufficientShares
	}

	seen := make(map[uint8]bool, len(shares))
	length := len(shares[0].Points)
	for _, s := range shares {
		if seen[s.ID] {
			return nil, errors.Wrapf(ErrDuplicateShareId, "id %d appears more than once", s.ID)
		}
		seen[s.ID] = true
		if len(s.Points) != length {
			return nil, errors.Wrapf(ErrRaggedShares, "share %d has %d points, expected %d", s.ID, len(s.Points), length)
		}
	}

	degree := uint(len(shares) - 1)
	secret := make([]byte, length)
	for i := 0; i < length; i++ {
		points := make([]polynomial.Point, len(shares))
		for j, s := range shares {
			points[j] = polynomial.Point{X: big.NewInt(int64(s.ID)), Y: s.Points[i]}
		}
		r, err := polynomial.InterpolateConst(degree, points...)
		if err != nil {
			return nil, errors.Wrapf(err, "interpolate byte column %d", i)
		}
		if r.Sign() < 0 || r.Cmp(big.NewInt(256)) >= 0 {
			return nil, errors.Wrapf(ErrReconstructionOutOfRange, "column %d reconstructed to %v", i, r)
		}
		secret[i] = byte(r.Int64())
	}
	return secret, nil
}
