package mpi

// Bit returns the value of the i'th bit of x (0 for any index past the end
// of x's limbs), mirroring mpi_get_bit.
func (x *Int) Bit(i int) uint {
	if i < 0 {
		return 0
	}
	limb := i / wordBits
	if limb >= len(x.limbs) {
		return 0
	}
	return uint(x.limbs[limb]>>uint(i%wordBits)) & 1
}

// SetBit sets the i'th bit of x to val (which must be 0 or 1, else
// ErrBadInput). Setting a bit past the current limb count with val == 1
// grows x exactly as far as needed; the call is a no-op when val == 0 and i
// is already out of range, avoiding a pointless grow (mirrors mpi_set_bit).
func (x *Int) SetBit(i int, val uint) error {
	if val > 1 {
		return ErrBadInput
	}
	if i < 0 {
		return ErrBadInput
	}
	limb := i / wordBits
	idx := uint(i % wordBits)

	if limb >= len(x.limbs) {
		if val == 0 {
			return nil
		}
		grown, err := grow(x.limbs, limb+1)
		if err != nil {
			return err
		}
		x.limbs = grown
	}

	x.limbs[limb] &^= Word(1) << idx
	x.limbs[limb] |= Word(val) << idx
	x.limbs = norm(x.limbs)
	return nil
}

// TrailingZeroBits returns the number of trailing zero bits in |x|, i.e.
// lsb(X): the count of trailing zero bits, 0 by convention when x is zero.
func (x *Int) TrailingZeroBits() int {
	for i, w := range x.limbs {
		if w != 0 {
			return i*wordBits + trailingZeros(w)
		}
	}
	return 0
}

// BitLen returns the length of |x| in bits: 1 + the index of the highest set
// bit, or 0 for x == 0 (msb(X) in the C original's terms). It scans down
// from the top of the limb buffer for the highest nonzero limb rather than
// trusting len(limbs) to be exactly that limb, since CondAssign/CondSwap
// deliberately leave high zero limbs in place past their logical
// significance.
func (x *Int) BitLen() int {
	for n := len(x.limbs); n > 0; n-- {
		if x.limbs[n-1] != 0 {
			return (n-1)*wordBits + bitLen(x.limbs[n-1])
		}
	}
	return 0
}

// ByteLen returns ceil(BitLen(x)/8), the minimum number of bytes needed to
// hold |x| in big-endian form.
func (x *Int) ByteLen() int {
	return (x.BitLen() + 7) / 8
}
