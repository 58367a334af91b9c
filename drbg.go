package goosig

import (
	"crypto/hmac"
	"crypto/sha256"
	"sync"
)

// drbg is an HMAC-DRBG (NIST SP 800-90A) over SHA-256. It is the
// deterministic byte source underneath the transcript PRNG in prng.go:
// every uniform/prime draw in the signature protocol ultimately reads
// from one of these, seeded from a domain-separated transcript so that
// two calls with the same tag and data always produce the same stream.
//
// The state-machine shape (separate seed vs. generate phases, a mutex
// guarding the running (K,V) pair) follows the reader/state split in
// sixafter-nanoid's ctrdrbg, adapted here from AES-CTR blocks to
// HMAC-SHA256 since every hash operation in this scheme is pinned to
// SHA-256.
type drbg struct {
	mu sync.Mutex
	k  [sha256.Size]byte
	v  [sha256.Size]byte
}

func newDRBG(entropy, nonce, personalization []byte) *drbg {
	d := &drbg{}
	for i := range d.k {
		d.k[i] = 0x00
	}
	for i := range d.v {
		d.v[i] = 0x01
	}
	seed := concatBytes(entropy, nonce, personalization)
	d.update(seed)
	return d
}

func (d *drbg) hmac(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// update implements the HMAC-DRBG Update function from SP 800-90A
// §10.1.2.2.
func (d *drbg) update(providedData []byte) {
	k := d.hmac(d.k[:], concatBytes(d.v[:], []byte{0x00}, providedData))
	copy(d.k[:], k)
	v := d.hmac(d.k[:], d.v[:])
	copy(d.v[:], v)

	if len(providedData) == 0 {
		return
	}

	k = d.hmac(d.k[:], concatBytes(d.v[:], []byte{0x01}, providedData))
	copy(d.k[:], k)
	v = d.hmac(d.k[:], d.v[:])
	copy(d.v[:], v)
}

// reseed mixes fresh material into the running state. Unused by the
// signature protocol today (each transcript PRNG is instantiated fresh
// per call) but kept as a first-class operation since SP 800-90A treats
// instantiate/reseed/generate as the three primitives of a DRBG and a
// long-lived DRBG handle would need it.
func (d *drbg) reseed(entropy []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.update(entropy)
}

// generate fills out with deterministic output, per SP 800-90A
// §10.1.2.5, and mixes additionalInput into the state first when
// provided.
func (d *drbg) generate(out []byte, additionalInput []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(additionalInput) > 0 {
		d.update(additionalInput)
	}

	n := 0
	for n < len(out) {
		v := d.hmac(d.k[:], d.v[:])
		copy(d.v[:], v)
		n += copy(out[n:], d.v[:])
	}

	d.update(additionalInput)
}

func concatBytes(parts ...[]byte) []byte {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]byte, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
