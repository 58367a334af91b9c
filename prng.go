package goosig

import (
	"crypto/sha256"
	"math/big"
)

// transcriptPRNG is a Fiat-Shamir-bound deterministic random source: its
// entire output stream is a function of a fixed 32-byte domain tag plus
// whatever transcript data the caller feeds it, so two calls with the
// same (tag, data) always draw the same sequence of values. This is
// what lets deriveChallenge/deriveEll (hash.go) and Sign's blinding
// draws (sign.go) be deterministic given the same inputs, and is the
// generalization of the tagged-hash challenge derivation used by the
// facproof/dlnproof examples (SHA512_256i_TAGGED) from a one-shot hash
// into a full byte stream.
//
// Each instance owns its own drbg — per the concurrency note in
// group.go, the PRNG is never attached to a *Group, so concurrent
// Sign/Verify calls never share state here.
type transcriptPRNG struct {
	gen *drbg
}

func newTranscriptPRNG(tag [32]byte, data ...[]byte) *transcriptPRNG {
	h := sha256.New()
	h.Write(tag[:])
	for _, d := range data {
		writeLenPrefixed(h, d)
	}
	seed := h.Sum(nil)
	return &transcriptPRNG{gen: newDRBG(seed, tag[:], nil)}
}

// sub derives an independent child stream scoped to an additional tag,
// used to keep e.g. primality-testing randomness (tagPRNGPrimality)
// cryptographically separate from the blinding draws of the same
// signing operation (tagPRNGSign).
func (p *transcriptPRNG) sub(tag [32]byte) *transcriptPRNG {
	return newTranscriptPRNG(tag, p.bytes(32))
}

// bytes returns n fresh deterministic bytes from the stream.
func (p *transcriptPRNG) bytes(n int) []byte {
	out := make([]byte, n)
	p.gen.generate(out, nil)
	return out
}

// uniform draws a uniformly random non-negative integer with exactly
// the requested bit budget (i.e. in [0, 2^bits)).
func (p *transcriptPRNG) uniform(bits int) *big.Int {
	if bits <= 0 {
		return new(big.Int)
	}
	nbytes := (bits + 7) / 8
	buf := p.bytes(nbytes)
	excess := uint(nbytes*8 - bits)
	if excess > 0 {
		buf[0] &= 0xff >> excess
	}
	return new(big.Int).SetBytes(buf)
}

// randomInt draws a uniformly random integer in [0, max) using
// rejection sampling against the smallest covering bit length.
func (p *transcriptPRNG) randomInt(max *big.Int) *big.Int {
	if max.Sign() <= 0 {
		return new(big.Int)
	}
	bits := max.BitLen()
	for {
		v := p.uniform(bits)
		if v.Cmp(max) < 0 {
			return v
		}
	}
}

// randomPrime draws a uniformly random odd prime with the requested bit
// length, Miller-Rabin witnesses sourced from a PRIMALITY-tagged child
// stream so that the candidate search and the witness selection never
// share entropy. Gives up after a generous bound and returns ErrNoPrime
// — under normal parameters (bits >= 64) this bound is never hit in
// practice, by the prime number theorem's density estimate.
func (p *transcriptPRNG) randomPrime(bits int) (*big.Int, error) {
	witness := p.sub(tagPRNGPrimality)
	const maxAttempts = 1 << 16
	for attempt := 0; attempt < maxAttempts; attempt++ {
		cand := p.uniform(bits)
		cand.SetBit(cand, bits-1, 1) // fix the top bit: exact requested size
		cand.SetBit(cand, 0, 1)      // odd
		if millerRabin(cand, witness, 32) {
			return cand, nil
		}
	}
	return nil, newError(codeNoPrime, "randomPrime", nil)
}

// millerRabin runs rounds of Miller-Rabin primality testing on n, with
// witnesses drawn from src rather than math/big's internal randomness,
// so the whole derivation stays reproducible from the signing
// transcript (spec-mandated determinism; math/big.ProbablyPrime alone
// would reach into crypto/rand internally for some code paths).
func millerRabin(n *big.Int, src *transcriptPRNG, rounds int) bool {
	if n.Cmp(big2) < 0 {
		return false
	}
	if n.Cmp(big2) == 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}

	nMinus1 := new(big.Int).Sub(n, big1)
	d := new(big.Int).Set(nMinus1)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	nMinus3 := new(big.Int).Sub(n, big.NewInt(3))

	for i := 0; i < rounds; i++ {
		a := new(big.Int).Add(src.randomInt(nMinus3), big2)
		x := new(big.Int).Exp(a, d, n)
		if x.Cmp(big1) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}
		composite := true
		for j := 0; j < r-1; j++ {
			x.Mul(x, x)
			x.Mod(x, n)
			if x.Cmp(nMinus1) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}

func writeLenPrefixed(h interface{ Write([]byte) (int, error) }, b []byte) {
	var lenBuf [8]byte
	n := uint64(len(b))
	for i := 0; i < 8; i++ {
		lenBuf[i] = byte(n >> (56 - 8*i))
	}
	h.Write(lenBuf[:])
	h.Write(b)
}
