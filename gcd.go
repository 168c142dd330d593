package mpi

// GCD sets g = gcd(|a|, |b|) using Stein's binary algorithm: strip the
// common factor of two, then repeatedly strip each operand's own trailing
// zeros and subtract the smaller from the larger until one side vanishes.
func GCD(g, a, b *Int) error {
	A := a.Clone()
	A.neg = false
	B := b.Clone()
	B.neg = false

	if A.sign() == 0 {
		g.Set(B)
		return nil
	}
	if B.sign() == 0 {
		g.Set(A)
		return nil
	}

	lz := A.TrailingZeroBits()
	if bz := B.TrailingZeroBits(); bz < lz {
		lz = bz
	}
	A.Rsh(uint(lz))
	B.Rsh(uint(lz))

	for A.sign() != 0 {
		A.Rsh(uint(A.TrailingZeroBits()))
		B.Rsh(uint(B.TrailingZeroBits()))
		if A.Cmp(B) >= 0 {
			if err := A.Sub(A, B); err != nil {
				return err
			}
			A.Rsh(1)
		} else {
			if err := B.Sub(B, A); err != nil {
				return err
			}
			B.Rsh(1)
		}
	}

	if err := B.Lsh(uint(lz)); err != nil {
		return err
	}
	g.Set(B)
	return nil
}

// ModInverse sets x = a^-1 mod n via the binary extended GCD (HAC 14.61,
// mirroring the C original's inv_mod): n <= 0 gives ErrNegativeValue and
// gcd(a, n) != 1 gives ErrNotAcceptable.
func ModInverse(x, a, n *Int) error {
	if n.sign() <= 0 {
		return ErrNegativeValue
	}
	if n.Cmp(NewInt(1)) == 0 {
		x.SetInt64(0)
		return nil
	}

	var g Int
	if err := GCD(&g, a, n); err != nil {
		return err
	}
	if g.Cmp(NewInt(1)) != 0 {
		return ErrNotAcceptable
	}

	TA := new(Int)
	if err := Mod(TA, a, n); err != nil {
		return err
	}
	TB := n.Clone()
	TU := TA.Clone()
	TV := n.Clone()
	U1, U2 := NewInt(1), NewInt(0)
	V1, V2 := NewInt(0), NewInt(1)

	for TU.sign() != 0 {
		for TU.Bit(0) == 0 {
			TU.Rsh(1)
			if U1.Bit(0) != 0 || U2.Bit(0) != 0 {
				if err := U1.Add(U1, TB); err != nil {
					return err
				}
				if err := U2.Sub(U2, TA); err != nil {
					return err
				}
			}
			U1.Rsh(1)
			U2.Rsh(1)
		}

		for TV.Bit(0) == 0 {
			TV.Rsh(1)
			if V1.Bit(0) != 0 || V2.Bit(0) != 0 {
				if err := V1.Add(V1, TB); err != nil {
					return err
				}
				if err := V2.Sub(V2, TA); err != nil {
					return err
				}
			}
			V1.Rsh(1)
			V2.Rsh(1)
		}

		if TU.Cmp(TV) >= 0 {
			if err := TU.Sub(TU, TV); err != nil {
				return err
			}
			if err := U1.Sub(U1, V1); err != nil {
				return err
			}
			if err := U2.Sub(U2, V2); err != nil {
				return err
			}
		} else {
			if err := TV.Sub(TV, TU); err != nil {
				return err
			}
			if err := V1.Sub(V1, U1); err != nil {
				return err
			}
			if err := V2.Sub(V2, U2); err != nil {
				return err
			}
		}
	}

	for V1.sign() < 0 {
		if err := V1.Add(V1, n); err != nil {
			return err
		}
	}
	for V1.Cmp(n) >= 0 {
		if err := V1.Sub(V1, n); err != nil {
			return err
		}
	}

	x.Set(V1)
	return nil
}
