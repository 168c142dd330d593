package mpi

// Exp sets x = a^e mod n using sliding-window Montgomery exponentiation
// (HAC 14.85). n must be a positive odd modulus and e must be
// non-negative, else ErrBadInput. rr is an optional Montgomery R^2 mod N
// cache: pass a zero-value *Int the first time and reuse it across calls
// with the same n to skip recomputing R^2 mod N; pass nil to skip caching
// entirely.
func Exp(x, a, e, n *Int, rr *Int) error {
	if n.sign() <= 0 || n.limbs[0]&1 == 0 {
		return ErrBadInput
	}
	if e.sign() < 0 {
		return ErrBadInput
	}

	mm := montgInit(n.limbs[0])
	nn := len(n.limbs)

	ebits := e.BitLen()
	wsize := 1
	switch {
	case ebits > 671:
		wsize = 6
	case ebits > 239:
		wsize = 5
	case ebits > 79:
		wsize = 4
	case ebits > 23:
		wsize = 3
	}
	if wsize > WindowMax {
		wsize = WindowMax
	}

	neg := a.sign() < 0
	base := a
	if neg {
		base = a.Clone()
		base.neg = false
	}

	RR := rr
	if RR == nil {
		RR = new(Int)
	}
	if RR.sign() == 0 {
		RR.SetInt64(1)
		if err := RR.Lsh(uint(nn * 2 * wordBits)); err != nil {
			return err
		}
		if err := Mod(RR, RR, n); err != nil {
			return err
		}
	}

	W := make([]*Int, 1<<uint(wsize))
	W[1] = new(Int)
	if base.Cmp(n) >= 0 {
		if err := Mod(W[1], base, n); err != nil {
			return err
		}
	} else {
		W[1].Set(base)
	}
	if err := montMul(W[1], W[1], RR, n, mm); err != nil {
		return err
	}

	if err := montRed(x, RR, n, mm); err != nil {
		return err
	}

	if wsize > 1 {
		j := 1 << uint(wsize-1)
		W[j] = W[1].Clone()
		for i := 0; i < wsize-1; i++ {
			if err := montMul(W[j], W[j], W[j], n, mm); err != nil {
				return err
			}
		}
		for i := j + 1; i < 1<<uint(wsize); i++ {
			W[i] = W[i-1].Clone()
			if err := montMul(W[i], W[i], W[1], n, mm); err != nil {
				return err
			}
		}
	}

	const (
		stateLeading = iota
		statePending
		stateWindow
	)
	state := stateLeading
	nbits := 0
	wbits := 0

	for limb := len(e.limbs); limb > 0; limb-- {
		word := e.limbs[limb-1]
		for b := wordBits; b > 0; b-- {
			ei := int((word >> uint(b-1)) & 1)

			if ei == 0 && state == stateLeading {
				continue
			}
			if ei == 0 && state == statePending {
				if err := montMul(x, x, x, n, mm); err != nil {
					return err
				}
				continue
			}

			state = stateWindow
			nbits++
			wbits |= ei << uint(wsize-nbits)

			if nbits == wsize {
				for i := 0; i < wsize; i++ {
					if err := montMul(x, x, x, n, mm); err != nil {
						return err
					}
				}
				if err := montMul(x, x, W[wbits], n, mm); err != nil {
					return err
				}
				state = statePending
				nbits = 0
				wbits = 0
			}
		}
	}

	for i := 0; i < nbits; i++ {
		if err := montMul(x, x, x, n, mm); err != nil {
			return err
		}
		wbits <<= 1
		if wbits&(1<<uint(wsize)) != 0 {
			if err := montMul(x, x, W[1], n, mm); err != nil {
				return err
			}
		}
	}

	if err := montRed(x, x, n, mm); err != nil {
		return err
	}

	if neg {
		x.neg = true
		if err := x.Add(n, x); err != nil {
			return err
		}
	}
	return nil
}
