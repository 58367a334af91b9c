package goosig

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDRBGDeterministic(t *testing.T) {
	d1 := newDRBG([]byte("entropy"), []byte("nonce"), []byte("app"))
	d2 := newDRBG([]byte("entropy"), []byte("nonce"), []byte("app"))

	out1 := make([]byte, 64)
	out2 := make([]byte, 64)
	d1.generate(out1, nil)
	d2.generate(out2, nil)

	require.Equal(t, out1, out2)
}

func TestDRBGDifferentSeedsDiverge(t *testing.T) {
	d1 := newDRBG([]byte("entropy-a"), nil, nil)
	d2 := newDRBG([]byte("entropy-b"), nil, nil)

	out1 := make([]byte, 32)
	out2 := make([]byte, 32)
	d1.generate(out1, nil)
	d2.generate(out2, nil)

	require.NotEqual(t, out1, out2)
}

func TestDRBGSuccessiveCallsDiffer(t *testing.T) {
	d := newDRBG([]byte("entropy"), nil, nil)
	out1 := make([]byte, 32)
	out2 := make([]byte, 32)
	d.generate(out1, nil)
	d.generate(out2, nil)
	require.NotEqual(t, out1, out2)
}

func TestDRBGLongOutputHasNoRepeatingBlocks(t *testing.T) {
	d := newDRBG([]byte("entropy"), nil, nil)
	out := make([]byte, 96)
	d.generate(out, nil)
	require.NotEqual(t, out[0:32], out[32:64])
	require.NotEqual(t, out[32:64], out[64:96])
}
