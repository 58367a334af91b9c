package goosig

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleSignature() *Signature {
	return &Signature{
		C2: big.NewInt(111), C3: big.NewInt(222), T: big.NewInt(333),
		Chal: big.NewInt(444), Ell: big.NewInt(555),
		Aq: big.NewInt(666), Bq: big.NewInt(777), Cq: big.NewInt(888),
		Dq: big.NewInt(999), Eq: big.NewInt(1010),
		Zw: big.NewInt(1111), Zw2: big.NewInt(1212), Zs1: big.NewInt(1313),
		Za: big.NewInt(1414), Zan: big.NewInt(1414), Zs1w: big.NewInt(1515),
		Zsa: big.NewInt(1616), Zs2: big.NewInt(1717),
	}
}

func TestSignatureMarshalRoundTrip(t *testing.T) {
	sig := sampleSignature()
	data, err := sig.Marshal()
	require.NoError(t, err)

	got, err := UnmarshalSignature(data)
	require.NoError(t, err)
	require.Equal(t, sig, got)
}

func TestSignatureMarshalRejectsMissingField(t *testing.T) {
	sig := sampleSignature()
	sig.Bq = nil
	_, err := sig.Marshal()
	require.Error(t, err)
}

func TestUnmarshalSignatureRejectsTruncatedData(t *testing.T) {
	sig := sampleSignature()
	data, err := sig.Marshal()
	require.NoError(t, err)

	_, err = UnmarshalSignature(data[:len(data)-5])
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestUnmarshalSignatureRejectsTrailingData(t *testing.T) {
	sig := sampleSignature()
	data, err := sig.Marshal()
	require.NoError(t, err)

	_, err = UnmarshalSignature(append(data, 0x00))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestUnmarshalSignatureRejectsEmptyInput(t *testing.T) {
	_, err := UnmarshalSignature(nil)
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestSignatureWireLengthIsFixed(t *testing.T) {
	small := sampleSignature()
	smallData, err := small.Marshal()
	require.NoError(t, err)

	large := sampleSignature()
	large.T = new(big.Int).Lsh(big.NewInt(1), 8100)
	large.Zw = new(big.Int).Lsh(big.NewInt(1), 8300)
	largeData, err := large.Marshal()
	require.NoError(t, err)

	require.Equal(t, sigWireLen(), len(smallData))
	require.Equal(t, len(smallData), len(largeData))
}

func TestSignatureMarshalRejectsOversizeField(t *testing.T) {
	sig := sampleSignature()
	sig.Chal = new(big.Int).Lsh(big.NewInt(1), ChalBits)
	_, err := sig.Marshal()
	require.Error(t, err)
}
