package shamir

import (
	cryptorand "crypto/rand"
	"math/rand"
	"time"

	"github.com/duskfall-labs/threshold/pkg/share"
)

//nolint:gochecknoglobals // test-only convenience source, never used for share generation
var mrand = rand.New(rand.NewSource(time.Now().UnixNano()))

// mustRandomBytes returns n cryptographically random bytes, panicking on
// failure -- tests have no meaningful recovery path from a broken CSPRNG.
func mustRandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := cryptorand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// extendBytes repeats pattern until it is exactly n bytes long.
func extendBytes(pattern []byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = pattern[i%len(pattern)]
	}
	return out
}

// shuffleShares returns a shuffled copy of shares, for tests that check
// Combine is insensitive to the order shares are supplied in.
func shuffleShares(shares []share.Share) []share.Share {
	out := make([]share.Share, len(shares))
	copy(out, shares)
	mrand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
