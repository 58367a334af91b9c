package goosig

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMulSqrMod(t *testing.T) {
	n := big.NewInt(97)
	a := big.NewInt(60)
	b := big.NewInt(50)

	require.Equal(t, new(big.Int).Mod(new(big.Int).Mul(a, b), n), mulMod(a, b, n))
	require.Equal(t, new(big.Int).Exp(a, big.NewInt(2), n), sqrMod(a, n))
}

func TestJacobiOfSquareIsOne(t *testing.T) {
	n := big.NewInt(97)
	for _, v := range []int64{2, 3, 5, 11, 40} {
		sq := sqrMod(big.NewInt(v), n)
		require.Equal(t, 1, jacobi(sq, n), "jacobi of a square must be 1 (v=%d)", v)
	}
}

func TestIsPrimeCandidate(t *testing.T) {
	require.True(t, isPrimeCandidate(big.NewInt(104729), 20))
	require.False(t, isPrimeCandidate(big.NewInt(104730), 20))
}

func TestPowModPanicsOnNonInvertibleBase(t *testing.T) {
	require.Panics(t, func() {
		powMod(big.NewInt(10), big.NewInt(-1), big.NewInt(100))
	})
}

func TestInvertModRoundTrip(t *testing.T) {
	n := big.NewInt(97)
	for _, a := range []int64{1, 2, 5, 30, 96} {
		inv, err := invertMod(big.NewInt(a), n)
		require.NoError(t, err)
		require.Equal(t, big.NewInt(1), mulMod(big.NewInt(a), inv, n))
	}
}

func TestInvertModNotInvertible(t *testing.T) {
	n := big.NewInt(100)
	_, err := invertMod(big.NewInt(10), n)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrNotInvertible)
}

func TestPowModNegativeExponent(t *testing.T) {
	n := big.NewInt(97)
	base := big.NewInt(5)
	pos := powMod(base, big.NewInt(3), n)
	neg := powMod(base, big.NewInt(-3), n)
	require.Equal(t, big.NewInt(1), mulMod(pos, neg, n))
}

func TestCanonicalizeIsSmallerHalf(t *testing.T) {
	n := big.NewInt(97)
	for x := int64(1); x < 97; x++ {
		c := canonicalize(big.NewInt(x), n)
		alt := new(big.Int).Sub(n, c)
		require.True(t, c.Cmp(alt) <= 0, "canonical form %v should be <= its complement %v", c, alt)
		require.True(t, c.Sign() > 0)
	}
}

func TestExportImportBytesRoundTrip(t *testing.T) {
	x := big.NewInt(0x1234)
	b := exportBytes(x, 8)
	require.Len(t, b, 8)
	require.Equal(t, x, importBytes(b))
}

func TestExportBytesPanicsOnOverflow(t *testing.T) {
	require.Panics(t, func() {
		exportBytes(big.NewInt(0x10000), 1)
	})
}

func TestDivMod(t *testing.T) {
	q, r := divMod(big.NewInt(17), big.NewInt(5))
	require.Equal(t, big.NewInt(3), q)
	require.Equal(t, big.NewInt(2), r)
}
