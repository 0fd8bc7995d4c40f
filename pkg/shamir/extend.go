package shamir

import (
	"math/big"

	"github.com/duskfall-labs/threshold/pkg/polynomial"
	"github.com/duskfall-labs/threshold/pkg/share"
	"github.com/pkg/errors"
)

// Extend derives count new shares compatible with an existing share set,
// without access to the original secret or Config. It reconstructs the
// full per-byte-column polynomial from shares (via polynomial.Interpolate)
// and evaluates it at the lowest ids in [1, share.MaxID] that no supplied
// share carries. An id of an original share that was not supplied can
// therefore be picked, in which case that share is regenerated.
//
// Extend requires at least two shares -- the floor polynomial.Interpolate
// needs to reconstruct anything -- but cannot verify that shares actually
// contains the original threshold K; if it doesn't, the reconstructed
// polynomials are wrong and the new shares will simply fail to Combine
// with genuine ones, the same caveat spec.md documents for Combine itself.
func Extend(shares []share.Share, count int) ([]share.Share, error) {
	if len(shares) < 2 {
		return nil, ErrTooFewSharesToExtend
	}
	if count <= 0 {
		return nil, errors.New("extend count must be positive")
	}

	length := len(shares[0].Points)
	seen := make(map[uint8]bool, len(shares))
	for _, s := range shares {
		if seen[s.ID] {
			return nil, errors.Wrapf(ErrDuplicateShareId, "id %d appears more than once", s.ID)
		}
		seen[s.ID] = true
		if len(s.Points) != length {
			return nil, errors.Wrapf(ErrRaggedShares, "share %d has %d points, expected %d", s.ID, len(s.Points), length)
		}
	}

	newIds := unusedIds(seen, count)
	if len(newIds) < count {
		return nil, errors.Wrapf(ErrExtendExhausted, "only %d unused ids remain, need %d", len(newIds), count)
	}

	degree := uint(len(shares) - 1)
	newShares := make([]share.Share, len(newIds))
	for i, id := range newIds {
		newShares[i] = share.Share{ID: id, Points: make([]*big.Int, length)}
	}

	for col := 0; col < length; col++ {
		points := make([]polynomial.Point, len(shares))
		for j, s := range shares {
			points[j] = polynomial.Point{X: big.NewInt(int64(s.ID)), Y: s.Points[col]}
		}
		poly, err := polynomial.Interpolate(degree, points...)
		if err != nil {
			return nil, errors.Wrapf(err, "reconstruct byte column %d", col)
		}
		for i, id := range newIds {
			y, err := poly.Evaluate(big.NewInt(int64(id)))
			if err != nil {
				return nil, errors.Wrapf(err, "evaluate column %d at new share %d", col, id)
			}
			newShares[i].Points[col] = y
		}
	}
	return newShares, nil
}
