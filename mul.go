package mpi

// mulHlp computes d[0:n+1] += s[0:n]*b, the schoolbook multiply-accumulate
// inner loop behind Mul, built on addMulVVW with the trailing carry rippled
// into d exactly as the C original's do/while tail does.
func mulHlp(s []Word, d []Word, b Word) {
	c := addMulVVW(d[:len(s)], s, b)
	i := len(s)
	for c != 0 {
		d[i], c = addWW(d[i], c, 0)
		i++
	}
}

// Mul sets x = a*b and returns nil on success.
// Aliasing x with a or b is handled by snapshotting the aliased operand
// first, since the accumulation below writes into x progressively.
func (x *Int) Mul(a, b *Int) error {
	if x == a {
		aCopy := a.Clone()
		a = aCopy
	}
	if x == b {
		bCopy := b.Clone()
		b = bCopy
	}

	i, j := len(a.limbs), len(b.limbs)
	if i == 0 || j == 0 {
		x.limbs = x.limbs[:0]
		x.neg = false
		return nil
	}

	buf, err := grow(nil, i+j)
	if err != nil {
		return err
	}
	for k := j; k > 0; k-- {
		mulHlp(a.limbs, buf[k-1:], b.limbs[k-1])
	}

	x.limbs = norm(buf)
	x.neg = (a.sign() * b.sign()) < 0
	return nil
}

// MulInt64 sets x = a*b for a non-negative scalar multiplier b.
func (x *Int) MulInt64(a *Int, b uint64) error {
	return x.Mul(a, setSmall(false, b))
}
