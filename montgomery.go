package mpi

// montgInit computes mm = -N[0]^-1 mod 2^wordBits for an odd modulus whose
// least significant limb is n0, via the same doubling-precision Newton
// iteration as the C original's mpi_montg_init: each step doubles the
// number of correct low bits of x = n0^-1 mod 2^k until k reaches wordBits.
// Word arithmetic wraps mod 2^wordBits the same way the C original's native
// word type does, so the formula ports unchanged.
func montgInit(n0 Word) Word {
	x := n0
	x += ((n0 + 2) & 4) << 1
	for i := wordBits; i >= 8; i /= 2 {
		x *= 2 - n0*x
	}
	return ^x + 1
}

// montMul sets x = a*b*R^-1 mod n (HAC 14.36), where n is an odd modulus
// and mm = montgInit(n.limbs[0]). a and b are read as if zero-padded to
// len(n.limbs) limbs; x may alias a or b. The final conditional subtraction
// is done as an unconditional subtract-and-mask-select rather than a
// data-dependent branch, extending the same crypto/subtle-style masking
// used by CondAssign/CondSwap so the Montgomery reduction step runs in
// constant time.
func montMul(x, a, b *Int, n *Int, mm Word) error {
	nn := len(n.limbs)
	m := len(b.limbs)
	if m > nn {
		m = nn
	}

	T := make([]Word, nn+2)
	for i := 0; i < nn; i++ {
		u0 := wordAt(a.limbs, i)
		sum, _ := addWW(T[0], mulLow(u0, wordAt(b.limbs, 0)), 0)
		u1 := sum * mm

		mulHlp(b.limbs[:m], T, u0)
		mulHlp(n.limbs, T, u1)

		copy(T, T[1:])
		T[len(T)-1] = 0
	}

	result := append([]Word(nil), T[:nn+1]...)

	nExt := make([]Word, nn+1)
	copy(nExt, n.limbs)
	diff := make([]Word, nn+1)
	borrow := subVV(diff, result, nExt)

	notBorrow := Word(1) - borrow
	mask := maskWord(int(notBorrow))
	for i := range result {
		result[i] = (result[i] &^ mask) | (diff[i] & mask)
	}

	x.limbs = norm(result)
	x.neg = false
	return nil
}

// mulLow returns the low word of x*y without the high word, a small
// convenience wrapper around mulWW for the single-limb product used while
// deriving Montgomery's per-iteration u1.
func mulLow(x, y Word) Word {
	_, lo := mulWW(x, y)
	return lo
}

// montRed sets x = a*R^-1 mod n, i.e. montMul(x, a, 1, n, mm): reducing out
// one factor of R.
func montRed(x, a, n *Int, mm Word) error {
	one := NewInt(1)
	return montMul(x, a, one, n, mm)
}
