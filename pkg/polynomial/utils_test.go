package polynomial

import (
	"math/rand"
	"time"
)

// rng is the non-cryptographic random source used to pick test trial
// parameters (degrees, point counts); it is never used for anything
// security-relevant.
//
//nolint:gochecknoglobals // test-only convenience source
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))
