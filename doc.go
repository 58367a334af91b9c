// Package goosig implements a non-interactive zero-knowledge proof of
// knowledge of an RSA factoring witness, carried out inside a group of
// unknown order: the quotient group (Z/nZ)*/{±1} for a public RSA
// modulus n.
//
// A prover who knows a witness binding a secret factorization of n can
// produce a Signature over a message that convinces any verifier
// holding only n, the public generators g and h, and the prover's
// earlier commitment C1 — without revealing the witness itself. The
// protocol is built from five proof-of-exponentiation relations over a
// single Fiat-Shamir-derived challenge and prime, following the
// structure implied by the bundled reference implementation's
// goo_sig_t wire layout.
//
// Build a Group once per RSA modulus with NewGroup or NewGroupDefault;
// it precomputes the fixed-base tables Sign and Verify both need and is
// safe for concurrent use. Sign and Verify take no PRNG or mutable
// state of their own: every random draw is derived deterministically
// from the signing transcript, so calling either concurrently across
// goroutines sharing one Group is safe.
package goosig
