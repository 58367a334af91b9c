package goosig

import (
	"crypto/sha256"
	"math/big"

	"golang.org/x/sync/errgroup"
)

// Group is a group of unknown order backed by an RSA modulus n, together
// with the two public generators g and h and every precomputed
// exponentiation table Sign and Verify need. Once built, a Group holds
// no secret state and no per-call PRNG (see prng.go's transcriptPRNG),
// so the same *Group can be shared across goroutines — every exported
// method here only reads its tables, mirroring how srp.go's package
// vars (N, g) are read-only after init() and safe to share.
//
// This is a deliberate generalization of srp.go's single hardcoded
// modulus into a runtime-configurable one: NewGroup accepts any RSA
// modulus (the signer's or verifier's public key), while
// NewGroupDefault fixes it to the bundled AOL2 modulus (one of the four
// in params.go) the way srp.go bakes in its one RFC 5054 group.
type Group struct {
	n    *big.Int
	g, h *big.Int
	bits int

	// hashPrefix is H_g = SHA256(PREFIX || n || g || h), cached once at
	// construction and mixed into every transcript this Group starts
	// (see transcript below), per spec §4.4's "cached per group handle,
	// prefixed to every transcript" rule.
	hashPrefix [32]byte

	combG, combH *comb

	gPos, gNeg [tableLen]*big.Int
	hPos, hNeg [tableLen]*big.Int
}

// groupHash computes H_g from a group's modulus and generators. Each
// operand is encoded into a fixed MaxRSABytes-wide slab — goo_group_t's
// `slab` scratch buffer in internal.h — rather than each big.Int's
// variable-length Bytes(), so two groups with identical (n, g, h) always
// hash identically regardless of how many leading zero bytes a
// variable-width encoding would have dropped.
func groupHash(n, g, h *big.Int) [32]byte {
	slab := make([]byte, 0, 3*MaxRSABytes)
	slab = append(slab, exportBytes(n, MaxRSABytes)...)
	slab = append(slab, exportBytes(g, MaxRSABytes)...)
	slab = append(slab, exportBytes(h, MaxRSABytes)...)

	d := sha256.New()
	d.Write(tagHashPrefix[:])
	d.Write(slab)

	var out [32]byte
	copy(out[:], d.Sum(nil))
	return out
}

// NewGroup builds a Group over modulus n with the given generators.
// Building precomputes two comb tables and two WNAF odd-multiple tables
// in parallel via errgroup.Group, the same fan-out-independent-setup-
// then-Wait shape the gnark fflonk prover uses for its own one-time
// precomputation phase.
func NewGroup(n, g, h *big.Int) (*Group, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, newError(codeInvalidParam, "NewGroup", nil)
	}
	bits := n.BitLen()
	if bits < MinRSABits || bits > MaxRSABits {
		return nil, newError(codeInvalidParam, "NewGroup", nil)
	}
	if n.Bit(0) == 0 {
		return nil, newError(codeInvalidParam, "NewGroup", nil)
	}
	if g == nil {
		g = big.NewInt(DefaultG)
	}
	if h == nil {
		h = big.NewInt(DefaultH)
	}

	// Generators are squared before use so that every product g^x*h^y
	// they appear in has Jacobi symbol +1 over n regardless of x, y
	// (J(v^2) = J(v)^2 = 1 for any v coprime to n): this is what lets
	// Verify's group-membership check on C1/C2/C3 (see verify.go) reject
	// forged commitments without ever rejecting an honestly constructed
	// one, the same quadratic-residue trick the Boneh-Bunz-Fisch GUO
	// construction uses to land both generators inside the group's core
	// subgroup.
	grp := &Group{
		n:    new(big.Int).Set(n),
		g:    sqrMod(new(big.Int).Mod(g, n), n),
		h:    sqrMod(new(big.Int).Mod(h, n), n),
		bits: bits,
	}
	grp.hashPrefix = groupHash(grp.n, grp.g, grp.h)

	// The combs must cover not just a single ExpBits-sized blinding
	// exponent but sums (s1 = s' + s, raised on h's comb) and the
	// products (t = a*w, raised on g's comb in Verify), so they are
	// sized to 2*ExpBits headroom rather than ExpBits itself.
	spec := bestCombSpec(2*ExpBits, MaxCombSize)

	var eg errgroup.Group
	eg.Go(func() error {
		grp.combG = newComb(grp.g, grp.n, spec)
		return nil
	})
	eg.Go(func() error {
		grp.combH = newComb(grp.h, grp.n, spec)
		return nil
	})
	eg.Go(func() error {
		grp.gPos = oddMultiples(grp.g, grp.n)
		return nil
	})
	eg.Go(func() error {
		grp.hPos = oddMultiples(grp.h, grp.n)
		return nil
	})
	_ = eg.Wait() // every goroutine above is infallible

	grp.gNeg = inverseTable(grp.gPos, grp.n)
	grp.hNeg = inverseTable(grp.hPos, grp.n)

	logger.Debug().Int("bits", grp.bits).Hex("hash_prefix", grp.hashPrefix[:]).
		Msg("goosig: group initialized")

	return grp, nil
}

// NewGroupDefault builds a Group over the bundled 4096-bit AOL2 modulus
// with the default generators (g=2, h=3), the configuration used when
// signer and verifier have not negotiated a signer-specific RSA key.
func NewGroupDefault() (*Group, error) {
	return NewGroup(AOL2(), nil, nil)
}

// Modulus returns the group's RSA modulus.
func (grp *Group) Modulus() *big.Int { return new(big.Int).Set(grp.n) }

// Bits returns the modulus bit length.
func (grp *Group) Bits() int { return grp.bits }

// reduce canonicalizes x into (Z/nZ)*/{±1}.
func (grp *Group) reduce(x *big.Int) *big.Int {
	return canonicalize(x, grp.n)
}

// isCanonical reports whether x is already its own canonical
// representative, i.e. x == min(x mod n, n - x mod n). Sign always
// emits canonical commitments/quotients (see sign.go); Verify uses this
// to reject a signature whose fields were not, per spec §4.3's "applied
// before hashing and before equality checks" rule.
func (grp *Group) isCanonical(x *big.Int) bool {
	return x.Cmp(canonicalize(x, grp.n)) == 0
}

// transcript starts a tag-scoped PRNG stream bound to this group's
// cached H_g, so deriveChallenge/deriveEll/Sign's blinding draws never
// collide across two Groups with different (n, g, h) even if handed the
// same commitments and message.
func (grp *Group) transcript(tag [32]byte, data ...[]byte) *transcriptPRNG {
	all := make([][]byte, 0, len(data)+1)
	all = append(all, grp.hashPrefix[:])
	all = append(all, data...)
	return newTranscriptPRNG(tag, all...)
}

// powG raises the fixed generator g to e using the precomputed comb.
func (grp *Group) powG(e *big.Int) *big.Int {
	if e.Sign() < 0 {
		return grp.powGNegExp(e)
	}
	return grp.combG.exp(e)
}

func (grp *Group) powGNegExp(e *big.Int) *big.Int {
	pos := grp.combG.exp(new(big.Int).Neg(e))
	inv, err := invertMod(pos, grp.n)
	if err != nil {
		panic("goosig: generator g became non-invertible")
	}
	return inv
}

// powH raises the fixed generator h to e using the precomputed comb.
func (grp *Group) powH(e *big.Int) *big.Int {
	if e.Sign() < 0 {
		pos := grp.combH.exp(new(big.Int).Neg(e))
		inv, err := invertMod(pos, grp.n)
		if err != nil {
			panic("goosig: generator h became non-invertible")
		}
		return inv
	}
	return grp.combH.exp(e)
}

// mulPowGH computes g^e1 * h^e2 mod n, the shape Sign uses to build the
// Pedersen-style commitments C2 and C3.
func (grp *Group) mulPowGH(e1, e2 *big.Int) *big.Int {
	return mulMod(grp.powG(e1), grp.powH(e2), grp.n)
}

// wnafTerm builds a wnafBase for a multi-exponentiation term, attaching
// g's or h's precomputed odd-multiple tables when the base is one of
// the two fixed generators so a product that mixes a fixed generator
// with a witness-derived base reuses the fixed share's tables instead
// of rebuilding them, and building fresh tables on the fly otherwise.
func (grp *Group) wnafTerm(base, e *big.Int) wnafBase {
	switch {
	case base.Cmp(grp.g) == 0:
		return wnafBase{base: grp.g, exp: e, pos: &grp.gPos, neg: &grp.gNeg}
	case base.Cmp(grp.h) == 0:
		return wnafBase{base: grp.h, exp: e, pos: &grp.hPos, neg: &grp.hNeg}
	default:
		return wnafBase{base: base, exp: e}
	}
}

// powDyn raises an arbitrary base to e via WNAF multi-exponentiation,
// used for the signature-dependent bases (Y_w, Y_a, and their products)
// that can't be precomputed since they change every signature.
func (grp *Group) powDyn(base, e *big.Int) *big.Int {
	return multiExpWNAF(grp.n, []wnafBase{grp.wnafTerm(base, e)})
}

// mulPowDyn2 computes b0^e0 * b1^e1 mod n for two bases, at least one of
// which is not a fixed generator.
func (grp *Group) mulPowDyn2(b0, e0, b1, e1 *big.Int) *big.Int {
	return multiExpWNAF(grp.n, []wnafBase{
		grp.wnafTerm(b0, e0),
		grp.wnafTerm(b1, e1),
	})
}
