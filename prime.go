package mpi

import "io"

// smallPrimes lists the primes up to 997 used to sieve out obviously
// composite candidates before paying for Miller-Rabin. The C original terminates this table with a
// sentinel value (-103); a Go slice already carries its own length, so the
// sentinel is dropped rather than preserved.
var smallPrimes = []int{
	3, 5, 7, 11, 13, 17, 19, 23,
	29, 31, 37, 41, 43, 47, 53, 59,
	61, 67, 71, 73, 79, 83, 89, 97,
	101, 103, 107, 109, 113, 127, 131, 137,
	139, 149, 151, 157, 163, 167, 173, 179,
	181, 191, 193, 197, 199, 211, 223, 227,
	229, 233, 239, 241, 251, 257, 263, 269,
	271, 277, 281, 283, 293, 307, 311, 313,
	317, 331, 337, 347, 349, 353, 359, 367,
	373, 379, 383, 389, 397, 401, 409, 419,
	421, 431, 433, 439, 443, 449, 457, 461,
	463, 467, 479, 487, 491, 499, 503, 509,
	521, 523, 541, 547, 557, 563, 569, 571,
	577, 587, 593, 599, 601, 607, 613, 617,
	619, 631, 641, 643, 647, 653, 659, 661,
	673, 677, 683, 691, 701, 709, 719, 727,
	733, 739, 743, 751, 757, 761, 769, 773,
	787, 797, 809, 811, 821, 823, 827, 829,
	839, 853, 857, 859, 863, 877, 881, 883,
	887, 907, 911, 919, 929, 937, 941, 947,
	953, 967, 971, 977, 983, 991, 997,
}

// checkSmallFactors divides a positive X by every prime in smallPrimes,
// returning certain == true when X is itself small enough to be certainly
// prime, err == ErrNotAcceptable when a small factor divides X, and
// certain == false, err == nil when nothing conclusive was found.
func checkSmallFactors(x *Int) (certain bool, err error) {
	if x.limbs[0]&1 == 0 {
		return false, ErrNotAcceptable
	}
	for _, p := range smallPrimes {
		if x.CmpInt64(int64(p)) <= 0 {
			return true, nil
		}
		r, err := ModInt64(x, int64(p))
		if err != nil {
			return false, err
		}
		if r == 0 {
			return false, ErrNotAcceptable
		}
	}
	return false, nil
}

// millerRabinRounds mirrors HAC table 4.4, keyed on msb(X).
func millerRabinRounds(msb int) int {
	switch {
	case msb >= 1300:
		return 2
	case msb >= 850:
		return 3
	case msb >= 650:
		return 4
	case msb >= 350:
		return 8
	case msb >= 250:
		return 12
	case msb >= 150:
		return 18
	default:
		return 27
	}
}

// millerRabin runs the Miller-Rabin pseudo-primality test on positive X
// (HAC 4.24): it returns ErrNotAcceptable as soon as a composite witness
// is found, nil if X survives every round.
func millerRabin(x *Int, r io.Reader) error {
	w := new(Int)
	if err := w.SubInt64(x, 1); err != nil {
		return err
	}
	s := w.TrailingZeroBits()
	rr := w.Clone()
	rr.Rsh(uint(s))

	n := millerRabinRounds(x.BitLen())
	var rrCache Int

	for i := 0; i < n; i++ {
		a := new(Int)
		if err := a.FillRandom(len(x.limbs)*(wordBits/8), r); err != nil {
			return err
		}
		if a.Cmp(w) >= 0 {
			j := a.BitLen() - w.BitLen()
			a.Rsh(uint(j + 1))
		}
		orWithThree(a)

		if err := Exp(a, a, rr, x, &rrCache); err != nil {
			return err
		}

		if a.Cmp(w) == 0 || a.CmpInt64(1) == 0 {
			continue
		}

		for j := 1; j < s && a.Cmp(w) != 0; j++ {
			t := new(Int)
			if err := t.Mul(a, a); err != nil {
				return err
			}
			if err := Mod(a, t, x); err != nil {
				return err
			}
			if a.CmpInt64(1) == 0 {
				break
			}
		}

		// not prime if A != |X|-1 or A == 1
		if a.Cmp(w) != 0 || a.CmpInt64(1) == 0 {
			return ErrNotAcceptable
		}
	}
	return nil
}

// orWithThree sets the two low bits of x's magnitude, growing x to at
// least one limb first; this is the Go rendition of the C original's
// "A.p[0] |= 3" (ensuring the Miller-Rabin witness is odd and >= 3).
func orWithThree(x *Int) {
	if len(x.limbs) == 0 {
		x.limbs = append(x.limbs, 0)
	}
	x.limbs[0] |= 3
}

// IsProbablyPrime reports whether |x| is prime with high probability,
// running the small-factor sieve first and falling back to Miller-Rabin
// only when that is inconclusive. 0 and 1 are
// rejected, 2 is accepted outright.
func IsProbablyPrime(x *Int, r io.Reader) error {
	abs := x.Clone()
	abs.neg = false

	if abs.sign() == 0 || abs.CmpInt64(1) == 0 {
		return ErrNotAcceptable
	}
	if abs.CmpInt64(2) == 0 {
		return nil
	}

	certain, err := checkSmallFactors(abs)
	if err != nil {
		return err
	}
	if certain {
		return nil
	}
	return millerRabin(abs, r)
}

// GeneratePrime returns a random prime found by starting from a random odd
// candidate of exactly nbits bits and stepping upward from it; a search that
// steps past 2^nbits returns a prime of nbits+1 bits. When safe is true, the result p additionally satisfies that
// (p-1)/2 is also prime (a safe prime, suitable for Diffie-Hellman groups);
// the search adjusts candidates to keep p = 3 mod 4 and p = 2 mod 3 so both
// p and (p-1)/2 stay plausible candidates across retries. Any error other
// than a composite witness aborts the search immediately.
func GeneratePrime(nbits int, safe bool, r io.Reader) (*Int, error) {
	if nbits < 3 || nbits > MaxBits {
		return nil, ErrBadInput
	}

	n := (nbits + wordBits - 1) / wordBits
	x := new(Int)
	if err := x.FillRandom(n*(wordBits/8), r); err != nil {
		return nil, err
	}

	k := x.BitLen()
	if k < nbits {
		if err := x.Lsh(uint(nbits - k)); err != nil {
			return nil, err
		}
	}
	if k > nbits {
		x.Rsh(uint(k - nbits))
	}
	orWithThree(x)

	if !safe {
		for {
			err := IsProbablyPrime(x, r)
			if err == nil {
				return x, nil
			}
			if err != ErrNotAcceptable {
				return nil, err
			}
			if err := x.AddInt64(x, 2); err != nil {
				return nil, err
			}
		}
	}

	rem, err := ModInt64(x, 3)
	if err != nil {
		return nil, err
	}
	switch rem {
	case 0:
		if err := x.AddInt64(x, 8); err != nil {
			return nil, err
		}
	case 1:
		if err := x.AddInt64(x, 4); err != nil {
			return nil, err
		}
	}

	y := x.Clone()
	y.Rsh(1)

	for {
		// Check small factors on both candidates before paying for
		// Miller-Rabin on either.
		_, err := checkSmallFactors(x)
		if err == nil {
			_, err = checkSmallFactors(y)
		}
		if err == nil {
			err = millerRabin(x, r)
		}
		if err == nil {
			err = millerRabin(y, r)
		}
		if err == nil {
			return x, nil
		}
		if err != ErrNotAcceptable {
			return nil, err
		}
		if err := x.AddInt64(x, 12); err != nil {
			return nil, err
		}
		if err := y.AddInt64(y, 6); err != nil {
			return nil, err
		}
	}
}
