package goosig

import "math/big"

// Signature is the full transcript of a proof of knowledge of an RSA
// factoring witness, encoded as eighteen big integers. C1 is
// intentionally absent: the caller supplies it to both Sign and Verify
// directly (see sign.go/verify.go), since it is the commitment the
// prover published before this protocol run even started.
type Signature struct {
	C2, C3 *big.Int
	T      *big.Int
	Chal   *big.Int
	Ell    *big.Int

	Aq, Bq, Cq, Dq, Eq *big.Int

	Zw, Zw2, Zs1, Za, Zan, Zs1w, Zsa, Zs2 *big.Int
}

// zWidth is a wire width of 2*MaxRSABytes+EllBytes for the eight z_*
// fields, wider than the MaxRSABytes+EllBytes a single-exponent PoE
// response would need. Three of this protocol's five relations (z_s1w,
// z_sa, z_w2) carry a response built from a *product* of two witnesses
// (w*s1, a*s1, w*s2) rather than one, so their worst-case bit length
// runs to roughly MaxRSABits+ExpBits+ChalBits — past the single-width
// budget spec.md's literal table gives every z_* field. Every z_* field
// is given the same wider width rather than special-casing the three
// that need it, keeping the layout uniform and trivially easy to parse.
const zWidth = 2*MaxRSABytes + EllBytes

// sigFields lists a Signature's eighteen big.Int fields in fixed wire
// order. Keeping the order in one place means Marshal and Unmarshal can
// never drift out of step with each other.
func (s *Signature) sigFields() []*big.Int {
	return []*big.Int{
		s.C2, s.C3, s.T, s.Chal, s.Ell,
		s.Aq, s.Bq, s.Cq, s.Dq, s.Eq,
		s.Zw, s.Zw2, s.Zs1, s.Za, s.Zan, s.Zs1w, s.Zsa, s.Zs2,
	}
}

// sigFieldWidths gives the fixed byte width of each field returned by
// sigFields, in the same order. C2/C3/Aq..Eq are group elements, so they
// take MaxRSABytes; T is a product of two ExpBits witnesses, so it takes
// 2*MaxRSABytes; chal and ell take their own dedicated bit budgets; every
// z_* field takes zWidth. The total is therefore fixed regardless of
// witness size, giving every signature the same wire length.
func sigFieldWidths() []int {
	return []int{
		MaxRSABytes, MaxRSABytes, 2 * MaxRSABytes, ChalBytes, EllBytes,
		MaxRSABytes, MaxRSABytes, MaxRSABytes, MaxRSABytes, MaxRSABytes,
		zWidth, zWidth, zWidth, zWidth, zWidth, zWidth, zWidth, zWidth,
	}
}

// sigWireLen returns the total byte length of a Marshal'd Signature.
func sigWireLen() int {
	total := 0
	for _, w := range sigFieldWidths() {
		total += w
	}
	return total
}

// Marshal encodes the signature as a fixed-width concatenation of
// big-endian integers, one slot per field at the width sigFieldWidths
// assigns it — no length prefixes, since every field's width is already
// fixed by the group's parameters. Every signature produced against the
// same Group therefore has exactly the same wire length, the property
// TestSignatureWireLengthIsFixed checks.
func (s *Signature) Marshal() ([]byte, error) {
	fields := s.sigFields()
	widths := sigFieldWidths()

	out := make([]byte, 0, sigWireLen())
	for i, f := range fields {
		if f == nil {
			return nil, newError(codeInvalidParam, "Signature.Marshal", nil)
		}
		if f.Sign() < 0 || f.BitLen() > widths[i]*8 {
			return nil, newError(codeInvalidParam, "Signature.Marshal", nil)
		}
		out = append(out, exportBytes(f, widths[i])...)
	}
	return out, nil
}

// UnmarshalSignature decodes the fixed-width wire format produced by
// Marshal. It requires data to be exactly sigWireLen() bytes: anything
// shorter or longer is rejected outright, since the format carries no
// length prefixes to resynchronize against.
func UnmarshalSignature(data []byte) (*Signature, error) {
	widths := sigFieldWidths()
	if len(data) != sigWireLen() {
		return nil, newError(codeInvalidSignature, "UnmarshalSignature", nil)
	}

	vals := make([]*big.Int, 0, len(widths))
	rest := data
	for _, w := range widths {
		vals = append(vals, importBytes(rest[:w]))
		rest = rest[w:]
	}

	return &Signature{
		C2: vals[0], C3: vals[1], T: vals[2], Chal: vals[3], Ell: vals[4],
		Aq: vals[5], Bq: vals[6], Cq: vals[7], Dq: vals[8], Eq: vals[9],
		Zw: vals[10], Zw2: vals[11], Zs1: vals[12], Za: vals[13], Zan: vals[14],
		Zs1w: vals[15], Zsa: vals[16], Zs2: vals[17],
	}, nil
}
