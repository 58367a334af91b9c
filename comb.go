package goosig

import "math/big"

// Fixed-base "comb" exponentiation for the two public generators g and
// h. Unlike the WNAF tables in wnaf.go, which serve bases that vary per
// call (the witness-derived commitments), g and h are baked into a
// *Group at construction time, so their exponentiation tables can be
// built once and reused across every Sign/Verify call on that Group.
// This mirrors srp.go's init()-time pflist table: a fixed, named
// parameter baked once and read many times, never recomputed per call.
//
// The construction here is a single-level Lim-Lee comb: the exponent's
// bit budget is split into pointsPerAdd equal-width blocks, one
// precomputed point per block, and every nonzero subset of blocks gets
// its own table entry so that an exponentiation walks the blocks'
// shared bit position top-to-bottom, one squaring and one table lookup
// per bit of a block. internal.h's goo_combspec_t additionally searches
// a second "shifts" dimension that trades table size for fewer
// squarings by precomputing several independently-shifted point sets;
// that second dimension is dropped here in favor of a construction
// whose correctness is easy to verify by hand without running the
// exponentiation, at the cost of a larger table for the same squaring
// count.
type combSpec struct {
	pointsPerAdd int
	blockBits    int
	bits         int // blockBits * pointsPerAdd, >= the requested budget
	size         int // table entries: 2^pointsPerAdd
}

// bestCombSpec searches pointsPerAdd for the cheapest comb able to
// cover a maxBits-bit exponent within a maxComb table-size bound. Ties
// are broken deterministically: fewest squaring rounds (blockBits)
// first, then smallest table size, then smallest pointsPerAdd — so two
// callers with identical inputs always pick the identical comb.
func bestCombSpec(maxBits, maxComb int) combSpec {
	var best combSpec
	haveBest := false

	for pointsPerAdd := 2; pointsPerAdd <= 16; pointsPerAdd++ {
		size := 1 << uint(pointsPerAdd)
		if size > maxComb {
			continue
		}
		blockBits := ceilDiv(maxBits, pointsPerAdd)
		cand := combSpec{
			pointsPerAdd: pointsPerAdd,
			blockBits:    blockBits,
			bits:         blockBits * pointsPerAdd,
			size:         size,
		}
		if !haveBest || combLess(cand, best) {
			best = cand
			haveBest = true
		}
	}

	if !haveBest {
		panic("goosig: no comb spec fits the requested bit budget and table size")
	}
	return best
}

func combLess(a, b combSpec) bool {
	if a.blockBits != b.blockBits {
		return a.blockBits < b.blockBits
	}
	if a.size != b.size {
		return a.size < b.size
	}
	return a.pointsPerAdd < b.pointsPerAdd
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// comb is a fully materialized fixed-base exponentiation table for one
// base under one combSpec, against one modulus.
type comb struct {
	spec  combSpec
	n     *big.Int
	table []*big.Int // table[mask], mask in [0, 2^pointsPerAdd)
}

// newComb builds a comb for base under spec, against modulus n.
//
// point[j] = base^(2^(j*blockBits)) mod n for j in [0, pointsPerAdd);
// table[mask] is the product of point[j] over every bit j set in mask,
// built incrementally via the lowest set bit so each entry costs one
// multiplication given the entry with that bit cleared.
func newComb(base, n *big.Int, spec combSpec) *comb {
	c := &comb{spec: spec, n: n}

	point := make([]*big.Int, spec.pointsPerAdd)
	for j := 0; j < spec.pointsPerAdd; j++ {
		e := new(big.Int).Lsh(big1, uint(j*spec.blockBits))
		point[j] = powMod(base, e, n)
	}

	c.table = make([]*big.Int, spec.size)
	c.table[0] = new(big.Int).Set(big1)
	for mask := 1; mask < spec.size; mask++ {
		low := mask & (mask - 1)
		j := trailingZero(mask &^ low)
		c.table[mask] = mulMod(c.table[low], point[j], n)
	}
	return c
}

func trailingZero(x int) int {
	n := 0
	for x&1 == 0 {
		x >>= 1
		n++
	}
	return n
}

// exp evaluates base^e mod c.n using the precomputed table. Every bit
// position up to spec.bits contributes; an exponent wider than that is
// rejected by the caller sizing combSpec generously rather than
// truncated silently here.
func (c *comb) exp(e *big.Int) *big.Int {
	spec := c.spec
	if e.BitLen() > spec.bits {
		panic("goosig: exponent exceeds comb bit budget")
	}

	acc := new(big.Int).Set(big1)
	for bitPos := spec.blockBits - 1; bitPos >= 0; bitPos-- {
		acc = sqrMod(acc, c.n)
		mask := 0
		for j := 0; j < spec.pointsPerAdd; j++ {
			idx := j*spec.blockBits + bitPos
			if idx < e.BitLen() && e.Bit(idx) == 1 {
				mask |= 1 << uint(j)
			}
		}
		if mask != 0 {
			acc = mulMod(acc, c.table[mask], c.n)
		}
	}
	return acc
}
