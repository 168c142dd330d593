package mpi

// CmpAbs compares |x| and |y|, returning -1, 0 or +1 as |x| < |y|, |x| == |y|
// or |x| > |y|.
func (x *Int) CmpAbs(y *Int) int {
	return cmpAbs(x.limbs, y.limbs)
}

// cmpAbs compares two little-endian word vectors that are not necessarily
// normalized (callers inside div.go build ephemeral buffers with a zero
// guard limb), so it trims trailing zero limbs from both sides first.
func cmpAbs(x, y []Word) int {
	x, y = norm(x), norm(y)
	if len(x) != len(y) {
		if len(x) > len(y) {
			return 1
		}
		return -1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] > y[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Cmp compares x and y, returning -1, 0 or +1. Zero compares equal
// regardless of its (always-positive) sign bit.
func (x *Int) Cmp(y *Int) int {
	if x.sign() == 0 && y.sign() == 0 {
		return 0
	}
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := cmpAbs(x.limbs, y.limbs)
	if x.neg {
		return -c
	}
	return c
}

// CmpInt64 compares x against the int64 z, via a throwaway Int the way the
// C original's mpi_cmp_int builds a stack-allocated one-limb mpi_t.
func (x *Int) CmpInt64(z int64) int {
	var t Int
	t.SetInt64(z)
	return x.Cmp(&t)
}
