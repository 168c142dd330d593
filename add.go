package mpi

// addAbs sets x = |a|+|b|.
func addAbs(x, a, b *Int) error {
	if len(a.limbs) < len(b.limbs) {
		a, b = b, a
	}
	n, m := len(a.limbs), len(b.limbs)
	buf, err := grow(nil, n+1)
	if err != nil {
		return err
	}
	copy(buf, a.limbs)
	c := addVV(buf[:m], a.limbs[:m], b.limbs)
	if c != 0 {
		c = addVW(buf[m:n], buf[m:n], c)
	}
	if c != 0 {
		buf[n] = c
	}
	x.limbs = norm(buf)
	x.neg = false
	return nil
}

// subAbs sets x = |a|-|b|. Requires |a| >= |b|, else
// ErrNegativeValue.
func subAbs(x, a, b *Int) error {
	if cmpAbs(a.limbs, b.limbs) < 0 {
		return ErrNegativeValue
	}
	buf, err := grow(nil, len(a.limbs))
	if err != nil {
		return err
	}
	copy(buf, a.limbs)
	subHlp(b.limbs, buf)
	x.limbs = norm(buf)
	x.neg = false
	return nil
}

// subHlp subtracts the (shorter-or-equal) vector s from d in place, letting
// any borrow ripple past the end of s, exactly the C original's
// mpi_sub_hlp two-step borrow chain.
func subHlp(s, d []Word) {
	n := len(s)
	c := subVV(d[:n], d[:n], s)
	for i := n; i < len(d) && c != 0; i++ {
		d[i], c = subWW(d[i], c, 0)
	}
}

// Add sets x = a+b and returns nil on success. Sign dispatch follows the
// schoolbook rule: same-sign operands add magnitudes, opposite-sign
// operands subtract the smaller magnitude from the larger.
func (x *Int) Add(a, b *Int) error {
	aNeg := a.neg
	if a.neg != b.neg {
		if cmpAbs(a.limbs, b.limbs) >= 0 {
			if err := subAbs(x, a, b); err != nil {
				return err
			}
			x.neg = aNeg && len(x.limbs) > 0
		} else {
			if err := subAbs(x, b, a); err != nil {
				return err
			}
			x.neg = !aNeg && len(x.limbs) > 0
		}
		return nil
	}
	if err := addAbs(x, a, b); err != nil {
		return err
	}
	x.neg = aNeg && len(x.limbs) > 0
	return nil
}

// Sub sets x = a-b and returns nil on success.
func (x *Int) Sub(a, b *Int) error {
	aNeg := a.neg
	if a.neg == b.neg {
		if cmpAbs(a.limbs, b.limbs) >= 0 {
			if err := subAbs(x, a, b); err != nil {
				return err
			}
			x.neg = aNeg && len(x.limbs) > 0
		} else {
			if err := subAbs(x, b, a); err != nil {
				return err
			}
			x.neg = !aNeg && len(x.limbs) > 0
		}
		return nil
	}
	if err := addAbs(x, a, b); err != nil {
		return err
	}
	x.neg = aNeg && len(x.limbs) > 0
	return nil
}

// AddInt64 sets x = a+b for a scalar b, reusing the full Add path against a
// throwaway one-limb Int the way add_int wraps b on the C stack.
func (x *Int) AddInt64(a *Int, b int64) error {
	return x.Add(a, intFromInt64(b))
}

// SubInt64 sets x = a-b for a scalar b.
func (x *Int) SubInt64(a *Int, b int64) error {
	return x.Sub(a, intFromInt64(b))
}

func intFromInt64(z int64) *Int {
	neg := z < 0
	u := uint64(z)
	if neg {
		u = uint64(-z)
	}
	return setSmall(neg, u)
}
