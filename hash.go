package goosig

import (
	"encoding/binary"
	"math/big"
)

// deriveChallenge and deriveEll turn a signature's public transcript
// into the two Fiat-Shamir scalars (chal, ell) both Sign and Verify
// must agree on. Both are seeded through grp.transcript, which mixes in
// the group's cached H_g ahead of the transcript data (spec §4.4: "H_g
// prefixed to every transcript") — binding every commitment plus the
// message into the DERIVE-tagged stream is what ties the signature to
// this exact (group, C1, C2, C3, t, msg) tuple; change any one of them
// and the re-derived chal/ell won't match what's in the Signature, so
// verification fails closed rather than silently accepting a
// substituted transcript.
func deriveChallenge(grp *Group, c1, c2, c3, t *big.Int, msg []byte) *big.Int {
	p := grp.transcript(tagPRNGDerive, c1.Bytes(), c2.Bytes(), c3.Bytes(), t.Bytes(), msg)
	return p.uniform(ChalBits)
}

// deriveEll draws the Fiat-Shamir prime ell. Each attempt mixes a
// distinct monotonic counter into an EXPAND-tagged child of the DERIVE
// transcript, so retries are themselves deterministic and mutually
// distinguishable rather than silently reusing the same candidate
// stream; the number of attempts is bounded by EllDiffMax; exhausting
// it fails with ErrNoPrime per spec §4.4's "attempts are bounded" rule.
func deriveEll(grp *Group, c1, c2, c3, t *big.Int, msg []byte, chal *big.Int) (*big.Int, error) {
	base := grp.transcript(tagPRNGDerive, c1.Bytes(), c2.Bytes(), c3.Bytes(), t.Bytes(), msg, chal.Bytes())
	seed := base.bytes(32)

	for attempt := 0; attempt < EllDiffMax; attempt++ {
		var counter [8]byte
		binary.BigEndian.PutUint64(counter[:], uint64(attempt))
		sub := newTranscriptPRNG(tagPRNGExpand, seed, counter[:])
		if ell, err := sub.randomPrime(EllBits); err == nil {
			return ell, nil
		}
	}
	return nil, newError(codeNoPrime, "deriveEll", nil)
}
