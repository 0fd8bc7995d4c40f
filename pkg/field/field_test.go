package field

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrimeExceedsByteRange(t *testing.T) {
	require.True(t, Prime.Cmp(big.NewInt(256)) > 0, "P must exceed every byte value")
	require.True(t, Prime.ProbablyPrime(32), "P must be prime")
}

func TestAddSubRoundTrip(t *testing.T) {
	a := big.NewInt(12345)
	b := big.NewInt(987654321)
	sum := Add(a, b)
	require.Equal(t, 0, Sub(sum, b).Cmp(reduce(a)))
}

func TestMulInvIdentity(t *testing.T) {
	a := big.NewInt(424242)
	inv, err := Inv(a)
	require.NoError(t, err)
	require.Equal(t, 0, Mul(a, inv).Cmp(big.NewInt(1)))
}

func TestInvZeroFails(t *testing.T) {
	_, err := Inv(big.NewInt(0))
	require.ErrorIs(t, err, ErrZeroInverse)

	// A value congruent to zero mod P (i.e. P itself) must also fail.
	_, err = Inv(new(big.Int).Set(Prime))
	require.ErrorIs(t, err, ErrZeroInverse)
}

func TestRandomInRange(t *testing.T) {
	for i := 0; i < 64; i++ {
		v, err := Random(rand.Reader)
		require.NoError(t, err)
		require.True(t, InRange(v))
	}
}

func TestInRange(t *testing.T) {
	require.True(t, InRange(big.NewInt(0)))
	require.True(t, InRange(new(big.Int).Sub(Prime, big.NewInt(1))))
	require.False(t, InRange(new(big.Int).Set(Prime)))
	require.False(t, InRange(big.NewInt(-1)))
}

func TestByteWidthCoversEveryElement(t *testing.T) {
	maxElem := new(big.Int).Sub(Prime, big.NewInt(1))
	require.LessOrEqual(t, len(maxElem.Bytes()), ByteWidth)
}
