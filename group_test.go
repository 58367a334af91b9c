package goosig

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGroupRejectsOutOfRangeModulus(t *testing.T) {
	tiny := big.NewInt(1000003)
	_, err := NewGroup(tiny, nil, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidParam)
}

func TestNewGroupDefaultsGenerators(t *testing.T) {
	grp, err := NewGroup(RSA2048(), nil, nil)
	require.NoError(t, err)
	require.Equal(t, sqrMod(big.NewInt(DefaultG), grp.n), grp.g)
	require.Equal(t, sqrMod(big.NewInt(DefaultH), grp.n), grp.h)
}

func TestNewGroupGeneratorsAreQuadraticResidues(t *testing.T) {
	grp, err := NewGroup(RSA2048(), nil, nil)
	require.NoError(t, err)
	require.Equal(t, 1, jacobi(grp.g, grp.n))
	require.Equal(t, 1, jacobi(grp.h, grp.n))
}

func TestNewGroupCachesGroupHash(t *testing.T) {
	grp, err := NewGroup(RSA2048(), nil, nil)
	require.NoError(t, err)
	want := groupHash(grp.n, grp.g, grp.h)
	require.Equal(t, want, grp.hashPrefix)
}

func TestGroupPowGMatchesPowMod(t *testing.T) {
	grp, err := NewGroup(RSA2048(), nil, nil)
	require.NoError(t, err)

	for _, e := range []int64{0, 1, 2, 65537, 1 << 20} {
		want := powMod(grp.g, big.NewInt(e), grp.n)
		got := grp.powG(big.NewInt(e))
		require.Equal(t, want, got, "exponent %d", e)
	}
}

func TestGroupPowGNegativeExponent(t *testing.T) {
	grp, err := NewGroup(RSA2048(), nil, nil)
	require.NoError(t, err)

	e := big.NewInt(777)
	pos := grp.powG(e)
	neg := grp.powG(new(big.Int).Neg(e))
	require.Equal(t, big.NewInt(1), mulMod(pos, neg, grp.n))
}

func TestGroupMulPowGH(t *testing.T) {
	grp, err := NewGroup(RSA2048(), nil, nil)
	require.NoError(t, err)

	e1, e2 := big.NewInt(12345), big.NewInt(67890)
	want := mulMod(powMod(grp.g, e1, grp.n), powMod(grp.h, e2, grp.n), grp.n)
	require.Equal(t, want, grp.mulPowGH(e1, e2))
}

func TestNewGroupDefaultUsesAOL2(t *testing.T) {
	grp, err := NewGroupDefault()
	require.NoError(t, err)
	require.Equal(t, AOL2(), grp.n)
}

func TestCanonicalizeViaGroup(t *testing.T) {
	grp, err := NewGroup(RSA2048(), nil, nil)
	require.NoError(t, err)

	x := big.NewInt(12345)
	c := grp.reduce(x)
	alt := new(big.Int).Sub(grp.n, c)
	require.True(t, c.Cmp(alt) <= 0)
}
