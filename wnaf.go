package goosig

import "math/big"

// Width-6 NAF (non-adjacent form) simultaneous multi-exponentiation.
// Every multi-base product in this package (the five verifier equations
// in verify.go, and the quotient exponentiations sign.go's poeProve
// performs) is evaluated by a single left-to-right double-and-add pass shared
// across all bases, rather than one modexp per base followed by
// modular multiplications — the same "one randomized-value commitment,
// many bases" shape as the schnorr example's GetProofRandomData, just
// combined into one pass instead of a sequential loop of Exp calls.
//
// Group's gPos/gNeg and hPos/hNeg tables play the role of goo_group_t's
// table_p1/table_n1/table_p2/table_n2: Pos tables hold the positive odd
// multiples of a fixed generator, Neg tables their modular inverses, so
// a negative NAF digit never needs an inverse computed at
// exponentiation time.

const wnafWindow = WindowSize // 6

// oddMultiples returns table[i] = base^(2*i+1) mod n for i in
// [0, tableLen), i.e. the odd multiples 1, 3, 5, ..., 2*tableLen-1.
func oddMultiples(base, n *big.Int) [tableLen]*big.Int {
	var table [tableLen]*big.Int
	sq := sqrMod(base, n)
	table[0] = new(big.Int).Mod(base, n)
	for i := 1; i < tableLen; i++ {
		table[i] = mulMod(table[i-1], sq, n)
	}
	return table
}

// inverseTable returns the modular inverse of every entry in table.
func inverseTable(table [tableLen]*big.Int, n *big.Int) [tableLen]*big.Int {
	var inv [tableLen]*big.Int
	for i, v := range table {
		iv, err := invertMod(v, n)
		if err != nil {
			// The caller guarantees gcd(base, n) == 1 for any base used
			// as a signature generator; a failure here means the group
			// was misconfigured.
			panic("goosig: non-invertible base in WNAF table")
		}
		inv[i] = iv
	}
	return inv
}

// wnafDigits computes the width-w NAF representation of e, as signed
// odd digits (or 0), index 0 being the least-significant digit.
func wnafDigits(e *big.Int, w uint) []int32 {
	if e.Sign() == 0 {
		return nil
	}
	k := new(big.Int).Set(e)
	if k.Sign() < 0 {
		k.Neg(k)
	}
	neg := e.Sign() < 0

	var digits []int32
	mod := int64(1) << w
	half := mod / 2
	mask := big.NewInt(mod - 1)

	for k.Sign() > 0 {
		var d int32
		if k.Bit(0) == 1 {
			low := new(big.Int).And(k, mask)
			m := low.Int64()
			if m >= half {
				d = int32(m - mod)
			} else {
				d = int32(m)
			}
			k.Sub(k, big.NewInt(int64(d)))
		}
		digits = append(digits, d)
		k.Rsh(k, 1)
	}

	if neg {
		for i := range digits {
			digits[i] = -digits[i]
		}
	}
	return digits
}

// wnafBase is one term of a simultaneous multi-exponentiation: a base
// raised to an exponent, with optional precomputed odd-multiple tables
// (positive and, for handling negative NAF digits without a per-call
// inverse, the matching inverse table). When the tables are nil they
// are built on the fly from base.
type wnafBase struct {
	base *big.Int
	exp  *big.Int
	pos  *[tableLen]*big.Int
	neg  *[tableLen]*big.Int
}

// multiExpWNAF computes the product of base_i^exp_i (mod n) for all
// terms in one combined left-to-right pass.
func multiExpWNAF(n *big.Int, terms []wnafBase) *big.Int {
	type prepared struct {
		digits []int32
		pos    [tableLen]*big.Int
		neg    [tableLen]*big.Int
	}

	prep := make([]prepared, len(terms))
	maxLen := 0
	for i, t := range terms {
		var p prepared
		if t.pos != nil {
			p.pos = *t.pos
		} else {
			p.pos = oddMultiples(t.base, n)
		}
		if t.neg != nil {
			p.neg = *t.neg
		} else {
			p.neg = inverseTable(p.pos, n)
		}
		p.digits = wnafDigits(t.exp, wnafWindow)
		if len(p.digits) > maxLen {
			maxLen = len(p.digits)
		}
		prep[i] = p
	}

	acc := new(big.Int).Set(big1)
	if maxLen == 0 {
		return acc
	}

	for pos := maxLen - 1; pos >= 0; pos-- {
		acc = sqrMod(acc, n)
		for _, p := range prep {
			if pos >= len(p.digits) {
				continue
			}
			d := p.digits[pos]
			if d == 0 {
				continue
			}
			idx := (abs32(d) - 1) / 2
			var factor *big.Int
			if d > 0 {
				factor = p.pos[idx]
			} else {
				factor = p.neg[idx]
			}
			acc = mulMod(acc, factor, n)
		}
	}
	return acc
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// wnafTripleProduct computes b0^e0 * b1^e1 * b2^e2 (mod n). verify.go
// does not call it: its relations are evaluated as a two-term product
// (Group.mulPowDyn2) compared against a single power (Group.powDyn).
func wnafTripleProduct(n *big.Int, b0, e0, b1, e1, b2, e2 *big.Int) *big.Int {
	return multiExpWNAF(n, []wnafBase{
		{base: b0, exp: e0},
		{base: b1, exp: e1},
		{base: b2, exp: e2},
	})
}
