// Package share defines the in-memory and wire representations of a single
// Shamir share: an x-coordinate (id) shared across every byte-column of one
// split, and the per-byte y-values evaluated at that coordinate.
package share

import (
	"math/big"

	"github.com/duskfall-labs/threshold/pkg/field"
	"github.com/pkg/errors"
)

// MaxID is the largest id a Share may carry. It matches MAX_SHARES from the
// orchestration layer (pkg/shamir) so that an id always fits a single byte
// in both wire encodings below.
const MaxID = 255

// Share is one of the N outputs of a split: an id (the x-coordinate used for
// every byte-column of the split) and the per-byte y-values evaluated at
// that coordinate. A Share carries no copy of the threshold K or the
// original secret length beyond what's implicit in len(Points) -- K is a
// property of the set a Share came from, not of the Share itself.
type Share struct {
	// ID is the x-coordinate, a non-zero value in [1, MaxID] that is
	// distinct among the shares produced by one split and is used for
	// every byte-column of this share.
	ID uint8
	// Points holds f_i(ID) for each byte index i of the secret.
	Points []*big.Int
}

// Equal reports whether two shares are structurally identical. Share has no
// defined ordering, only structural equality.
func (s Share) Equal(other Share) bool {
	if s.ID != other.ID || len(s.Points) != len(other.Points) {
		return false
	}
	for i := range s.Points {
		if s.Points[i].Cmp(other.Points[i]) != 0 {
			return false
		}
	}
	return true
}

// Validate checks the structural invariants a single Share must satisfy on
// its own (id in range, every y-value a valid field element). It does not
// (and cannot) check the cross-share invariants -- distinct ids, matching
// lengths -- that pkg/shamir's Combine enforces across a set.
func (s Share) Validate() error {
	if s.ID == 0 {
		return errors.New("share id must be non-zero")
	}
	for i, y := range s.Points {
		if y == nil || !field.InRange(y) {
			return errors.Errorf("share point %d is not a valid field element", i)
		}
	}
	return nil
}
