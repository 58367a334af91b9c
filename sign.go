package goosig

import "math/big"

// Sign produces a proof of knowledge of the RSA factoring witness w
// bound into C1 = g^s · h^w (the commitment the prover published
// earlier and which the caller supplies here; it is never re-sent as
// part of the Signature). w and s are the prover's secrets; msg is the
// message this particular proof run is bound to via Fiat-Shamir.
//
// The protocol runs five proof-of-exponentiation checks over a single
// (chal, ell) pair derived from the public transcript, the same
// "one challenge, several base/witness pairs verified against it"
// shape as the generalized multi-base Schnorr proof in the
// schnorr-dlog example, generalized here from known-order discrete-log
// equality to hidden-order PoE, and is the point where this package
// departs furthest from anything demonstrated by the teacher: srp.go
// never runs a from-scratch sigma protocol, only the two-flow SRP-6a
// exchange, so this file is new code grounded on internal.h's
// goo_sig_t field list and DESIGN.md's resolution of its structure.
func Sign(grp *Group, c1, w, s *big.Int, msg []byte) (*Signature, error) {
	if grp == nil || c1 == nil || w == nil || s == nil {
		return nil, newError(codeInvalidParam, "Sign", nil)
	}
	c1 = grp.reduce(c1)

	logger.Debug().Int("msg_bytes", len(msg)).Msg("goosig: sign")

	prng := grp.transcript(tagPRNGSign, c1.Bytes(), w.Bytes(), s.Bytes(), msg)
	sPrime := prng.uniform(ExpBits)
	s1 := new(big.Int).Add(sPrime, s)
	s2 := prng.uniform(ExpBits)
	a := prng.uniform(ExpBits)

	t := new(big.Int).Mul(a, w)

	// w and t are g-exponents and s1 an h-exponent; each must fit the
	// comb bit budget, or a caller-supplied oversize w or s would panic
	// inside comb.exp instead of returning an error.
	if w.BitLen() > grp.combG.spec.bits || t.BitLen() > grp.combG.spec.bits ||
		s1.BitLen() > grp.combH.spec.bits {
		return nil, newError(codeInvalidParam, "Sign", nil)
	}

	c2 := grp.reduce(grp.mulPowGH(w, s1))
	c3 := grp.reduce(grp.mulPowGH(a, s2))

	chal := deriveChallenge(grp, c1, c2, c3, t, msg)
	ell, err := deriveEll(grp, c1, c2, c3, t, msg, chal)
	if err != nil {
		return nil, newError(codeNoPrime, "Sign", err)
	}

	ya := grp.powG(a)

	// Relation 1 binds w to both Y_w = g^w and t = a*w (i.e. Y_a^w =
	// g^t) in a single check by combining the two bases multiplicatively:
	// (g*Y_a)^w = g^w * Y_a^w = Y_w * g^t when both hold. Verify.go
	// reconstructs the matching target the same way from Y_w, Y_a, t.
	base1 := mulMod(grp.g, ya, grp.n)
	bq, zw := poeProve(grp, w, ell, chal, base1)

	aq, za := poeProve(grp, a, ell, chal, grp.g)
	dq, zs1w := poeProve(grp, new(big.Int).Mul(w, s1), ell, chal, grp.g)
	eq, zsa := poeProve(grp, new(big.Int).Mul(a, s1), ell, chal, grp.g)
	cq, zw2 := poeProve(grp, new(big.Int).Mul(w, s2), ell, chal, grp.g)

	return &Signature{
		C2: c2, C3: c3, T: t, Chal: chal, Ell: ell,
		Aq: aq, Bq: bq, Cq: cq, Dq: dq, Eq: eq,
		Zw: zw, Zw2: zw2, Zs1: s1, Za: za, Zan: new(big.Int).Set(za),
		Zs1w: zs1w, Zsa: zsa, Zs2: s2,
	}, nil
}

// poeProve computes the proof-of-exponentiation pair (b^(witness div
// ell), (witness mod ell) + chal*witness) for base b, the shape every
// relation in Sign/Verify reduces to: b^z * quotient^ell == target^(chal+1).
// The quotient is canonicalized before being handed back, since it
// becomes a wire field of the Signature and spec §4.3 requires every
// group element to be in canonical form before it is ever compared.
func poeProve(grp *Group, witness, ell, chal, base *big.Int) (quotient, z *big.Int) {
	q, r := divMod(witness, ell)
	z = new(big.Int).Add(r, new(big.Int).Mul(chal, witness))
	quotient = grp.reduce(grp.powDyn(base, q))
	return quotient, z
}
