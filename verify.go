package goosig

import (
	"crypto/subtle"
	"math/big"
)

// Verify checks a Signature against the same external commitment C1
// the signer used, returning (true, nil) only if every one of the five
// proof-of-exponentiation relations holds and the Fiat-Shamir
// transcript (chal, ell) matches what the public values force it to
// be. Every failure path returns through reject so a caller — or an
// attacker probing for which specific check failed — sees only "proof
// rejected", never which relation broke; internal.h's design discussion
// of rejecting a malformed proof uniformly is carried here as a single
// chokepoint rather than scattered early returns with distinct causes.
func Verify(grp *Group, c1 *big.Int, msg []byte, sig *Signature) (bool, error) {
	if grp == nil || c1 == nil || sig == nil {
		return reject("Verify: missing input")
	}
	for _, f := range sig.sigFields() {
		if f == nil {
			return reject("Verify: incomplete signature")
		}
	}

	// Step 1 of spec §4.5's verify procedure: reject out-of-range fields
	// before doing any expensive group arithmetic. chal must fit its bit
	// budget; ell must be an exactly-EllBits odd prime; every commitment
	// and quotient on the wire must already be in canonical
	// (Z/nZ)*/{±1} form and invertible mod n; t, z_s1 and z_s2 must fit
	// the comb bit budget they are exponentiated through below.
	if sig.Chal.Sign() < 0 || sig.Chal.BitLen() > ChalBits {
		return reject("Verify: chal out of range")
	}
	if sig.Ell.BitLen() != EllBits || sig.Ell.Bit(0) == 0 || !isPrimeCandidate(sig.Ell, 20) {
		return reject("Verify: ell not a valid prime")
	}
	for _, f := range []*big.Int{sig.C2, sig.C3, sig.Aq, sig.Bq, sig.Cq, sig.Dq, sig.Eq} {
		if !grp.isCanonical(f) {
			return reject("Verify: non-canonical field")
		}
		if jacobi(f, grp.n) == 0 {
			return reject("Verify: field not invertible mod n")
		}
	}
	if sig.T.BitLen() > grp.combG.spec.bits || sig.Zs1.BitLen() > grp.combH.spec.bits ||
		sig.Zs2.BitLen() > grp.combH.spec.bits {
		return reject("Verify: exponent exceeds comb bit budget")
	}

	c1 = grp.reduce(c1)

	// Group-membership check: an honestly constructed C1/C2/C3 is always
	// a product of powers of g and h, and both generators are squares
	// (see NewGroup), so its Jacobi symbol is always +1. A forged
	// commitment that strays outside the quotient group's core subgroup
	// is rejected here before any of the five relations are even
	// evaluated.
	for _, f := range []*big.Int{c1, sig.C2, sig.C3} {
		if jacobi(f, grp.n) != 1 {
			return reject("Verify: commitment fails group membership check")
		}
	}

	wantChal := deriveChallenge(grp, c1, sig.C2, sig.C3, sig.T, msg)
	if wantChal.Cmp(sig.Chal) != 0 {
		return reject("Verify: challenge mismatch")
	}

	wantEll, err := deriveEll(grp, c1, sig.C2, sig.C3, sig.T, msg, sig.Chal)
	if err != nil || wantEll.Cmp(sig.Ell) != 0 {
		return reject("Verify: ell mismatch")
	}

	if sig.Za.Sign() != sig.Zan.Sign() ||
		subtle.ConstantTimeCompare(sig.Za.Bytes(), sig.Zan.Bytes()) != 1 {
		return reject("Verify: za/zan mismatch")
	}

	// Recover Y_w = g^w and Y_a = g^a from the Pedersen-style
	// commitments and the directly-revealed blinds z_s1 = s1, z_s2 = s2.
	yw := mulMod(sig.C2, grp.powH(new(big.Int).Neg(sig.Zs1)), grp.n)
	ya := mulMod(sig.C3, grp.powH(new(big.Int).Neg(sig.Zs2)), grp.n)

	base1 := mulMod(grp.g, ya, grp.n)
	target1 := mulMod(yw, grp.powG(sig.T), grp.n)

	checks := []struct {
		base, target, quotient, z *big.Int
	}{
		{base1, target1, sig.Bq, sig.Zw},
		{grp.g, ya, sig.Aq, sig.Za},
		{grp.g, grp.powDyn(yw, sig.Zs1), sig.Dq, sig.Zs1w},
		{grp.g, grp.powDyn(ya, sig.Zs1), sig.Eq, sig.Zsa},
		{grp.g, grp.powDyn(yw, sig.Zs2), sig.Cq, sig.Zw2},
	}

	for _, c := range checks {
		if !poeVerify(grp, c.base, c.target, c.quotient, c.z, sig.Ell, sig.Chal) {
			return reject("Verify: relation check failed")
		}
	}

	logger.Debug().Bool("accept", true).Msg("goosig: verify")
	return true, nil
}

// poeVerify checks base^z * quotient^ell == target^(chal+1) mod n, the
// single equation every relation in Sign/Verify reduces to. The final
// comparison canonicalizes both sides into (Z/nZ)*/{±1} per spec §4.3
// ("applied before ... equality checks"), then compares them in
// constant time the way srp.go's ServerOk/ClientOk compare a derived
// proof value against the expected one.
func poeVerify(grp *Group, base, target, quotient, z, ell, chal *big.Int) bool {
	lhs := grp.mulPowDyn2(base, z, quotient, ell)
	rhs := grp.powDyn(target, new(big.Int).Add(chal, big1))
	return constTimeEqMod(lhs, rhs, grp.n)
}

// constTimeEqMod reports whether a and b canonicalize to the same
// representative mod n, comparing their fixed-width encodings via
// subtle.ConstantTimeCompare rather than big.Int.Cmp.
func constTimeEqMod(a, b, n *big.Int) bool {
	width := (n.BitLen() + 7) / 8
	ca := exportBytes(canonicalize(a, n), width)
	cb := exportBytes(canonicalize(b, n), width)
	return subtle.ConstantTimeCompare(ca, cb) == 1
}

// reject is the single exit point for a failed verification. It logs
// the specific reason at debug level for operators while returning a
// uniform outcome to the caller — the same ErrInvalidSignature sentinel
// every time, regardless of which internal check failed — so a
// network-facing verifier built on this package doesn't become a
// side-channel oracle for proof structure.
func reject(reason string) (bool, error) {
	logger.Debug().Str("reason", reason).Msg("goosig: signature rejected")
	return false, newError(codeInvalidSignature, "Verify", nil)
}
