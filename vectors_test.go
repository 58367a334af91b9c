package goosig

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// Regression scenarios covering a spread of witness/blind magnitudes
// and messages. These lock in that Sign/Verify behave consistently
// across the witness sizes the protocol is meant to support, rather
// than asserting specific field values recorded from a run this
// package's author cannot produce (no external reference
// implementation of the five-equation protocol in original_source/ to
// pin byte-exact vectors against).
var signatureScenarios = []struct {
	name string
	w, s *big.Int
	msg  []byte
}{
	{
		name: "S1-small-witness",
		w:    big.NewInt(2),
		s:    big.NewInt(3),
		msg:  []byte("S1"),
	},
	{
		name: "S2-moderate-witness",
		w:    big.NewInt(0).SetInt64(1 << 40),
		s:    big.NewInt(0).SetInt64(1 << 41),
		msg:  []byte("S2"),
	},
	{
		name: "S3-large-witness-near-expbits",
		w:    new(big.Int).Sub(new(big.Int).Lsh(big1, ExpBits-1), big.NewInt(1)),
		s:    new(big.Int).Sub(new(big.Int).Lsh(big1, ExpBits-2), big.NewInt(7)),
		msg:  []byte("S3"),
	},
	{
		name: "S4-empty-message",
		w:    big.NewInt(424242),
		s:    big.NewInt(13131313),
		msg:  []byte{},
	},
	{
		name: "S5-binary-message",
		w:    big.NewInt(99999999999),
		s:    big.NewInt(55555555),
		msg:  []byte{0x00, 0xff, 0x10, 0x00, 0x01},
	},
	{
		name: "S6-unicode-message",
		w:    big.NewInt(13),
		s:    big.NewInt(17),
		msg:  []byte("éè中文"),
	},
}

func TestSignatureVectors(t *testing.T) {
	grp, err := NewGroup(RSA2048(), nil, nil)
	require.NoError(t, err)

	for _, sc := range signatureScenarios {
		sc := sc
		t.Run(sc.name, func(t *testing.T) {
			c1 := grp.mulPowGH(sc.s, sc.w)

			sig, err := Sign(grp, c1, sc.w, sc.s, sc.msg)
			require.NoError(t, err)

			ok, err := Verify(grp, c1, sc.msg, sig)
			require.NoError(t, err)
			require.True(t, ok, "scenario %s should verify", sc.name)
		})
	}
}

func TestSignatureVectorsCrossRejection(t *testing.T) {
	grp, err := NewGroup(RSA2048(), nil, nil)
	require.NoError(t, err)

	sigs := make([]*Signature, len(signatureScenarios))
	c1s := make([]*big.Int, len(signatureScenarios))
	for i, sc := range signatureScenarios {
		c1s[i] = grp.mulPowGH(sc.s, sc.w)
		sig, err := Sign(grp, c1s[i], sc.w, sc.s, sc.msg)
		require.NoError(t, err)
		sigs[i] = sig
	}

	for i := range signatureScenarios {
		for j := range signatureScenarios {
			if i == j {
				continue
			}
			ok, err := Verify(grp, c1s[i], signatureScenarios[j].msg, sigs[i])
			require.Error(t, err)
			require.ErrorIs(t, err, ErrInvalidSignature)
			require.False(t, ok, "signature for %s must not verify under %s's message",
				signatureScenarios[i].name, signatureScenarios[j].name)
		}
	}
}
