package shamir

import "github.com/pkg/errors"

var (
	// ErrInvalidConfig is returned when a Config's K/N are out of range or
	// K > N.
	ErrInvalidConfig = errors.New("invalid config: threshold/share count out of range")

	// ErrEmptySecret is returned when Split is given a zero-length secret.
	ErrEmptySecret = errors.New("secret must not be empty")

	// ErrSecretTooLarge is returned when a secret exceeds the Config's
	// MaxSecretSize.
	ErrSecretTooLarge = errors.New("secret exceeds configured maximum size")

	// ErrNoShares is returned when Combine is given zero shares.
	ErrNoShares = errors.New("no shares supplied")

	// ErrInsufficientShares is returned when Combine is given fewer than
	// two shares -- see Combine's doc comment and spec §9 for why this does not
	// guarantee a caller actually supplied K genuine shares.
	ErrInsufficientShares = errors.New("fewer than two shares supplied")

	// ErrDuplicateShareId is returned when two shares in a set share an id.
	ErrDuplicateShareId = errors.New("two or more shares share the same id") //nolint:stylecheck // matches spec's DuplicateShareId kind

	// ErrRaggedShares is returned when shares disagree on points length.
	ErrRaggedShares = errors.New("shares disagree on points length")

	// ErrReconstructionOutOfRange is returned when an interpolated byte
	// column falls outside [0, 256) -- a best-effort, not guaranteed,
	// signal that fewer than the original threshold were supplied.
	ErrReconstructionOutOfRange = errors.New("reconstructed byte column out of range")

	// ErrRandomnessFailure wraps a failure to draw from the random source.
	ErrRandomnessFailure = errors.New("failed to draw from random source")

	// ErrTooFewSharesToExtend is returned when Extend is given fewer than
	// two shares, the floor Interpolate needs to reconstruct anything.
	ErrTooFewSharesToExtend = errors.New("extend requires at least two shares")

	// ErrExtendExhausted is returned when Extend is asked for more new
	// shares than there are unused ids left in [1, share.MaxID].
	ErrExtendExhausted = errors.New("no unused share ids remain to extend into")
)
