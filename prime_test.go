package mpi

import (
	"math/rand"
	"testing"
)

// detReader is a deterministic io.Reader backed by a seeded PRNG, standing
// in for the injected RNG context so that prime-search tests are
// reproducible without touching crypto/rand.
type detReader struct{ r *rand.Rand }

func newDetReader(seed int64) *detReader {
	return &detReader{r: rand.New(rand.NewSource(seed))}
}

func (d *detReader) Read(p []byte) (int, error) {
	return d.r.Read(p)
}

func TestScenarioS7(t *testing.T) {
	// 561 = 3 * 11 * 17 is the smallest Carmichael number; the small-factor
	// sieve must reject it before Miller-Rabin is even reached.
	if err := IsProbablyPrime(NewInt(561), newDetReader(1)); err != ErrNotAcceptable {
		t.Errorf("is_prime(561) = %v, want ErrNotAcceptable", err)
	}
}

func TestIsProbablyPrimeKnownPrimes(t *testing.T) {
	for _, p := range []int64{2, 3, 5, 7, 11, 97, 65537, 104729} {
		if err := IsProbablyPrime(NewInt(p), newDetReader(2)); err != nil {
			t.Errorf("is_prime(%d) = %v, want nil", p, err)
		}
	}
}

func TestIsProbablyPrimeKnownComposites(t *testing.T) {
	for _, c := range []int64{0, 1, 4, 6, 9, 15, 100, 561, 1105} {
		if err := IsProbablyPrime(NewInt(c), newDetReader(3)); err != ErrNotAcceptable {
			t.Errorf("is_prime(%d) = %v, want ErrNotAcceptable", c, err)
		}
	}
}

func TestScenarioS8(t *testing.T) {
	p, err := GeneratePrime(128, false, newDetReader(42))
	if err != nil {
		t.Fatal(err)
	}
	if p.BitLen() != 128 {
		t.Errorf("GeneratePrime(128) bit length = %d, want 128", p.BitLen())
	}
	if p.Bit(0) != 1 {
		t.Error("GeneratePrime(128) produced an even candidate")
	}
	if err := IsProbablyPrime(p, newDetReader(43)); err != nil {
		t.Errorf("generated candidate failed primality check: %v", err)
	}
}

func TestGeneratePrimeSafe(t *testing.T) {
	p, err := GeneratePrime(64, true, newDetReader(7))
	if err != nil {
		t.Fatal(err)
	}
	if p.BitLen() != 64 {
		t.Errorf("GeneratePrime(64, safe) bit length = %d, want 64", p.BitLen())
	}
	if err := IsProbablyPrime(p, newDetReader(8)); err != nil {
		t.Errorf("safe prime candidate failed primality check: %v", err)
	}

	q := p.Clone()
	q.Rsh(1)
	if err := IsProbablyPrime(q, newDetReader(9)); err != nil {
		t.Errorf("(p-1)/2 failed primality check: %v", err)
	}
}

func TestGeneratePrimeRejectsBadBitLength(t *testing.T) {
	if _, err := GeneratePrime(2, false, newDetReader(1)); err != ErrBadInput {
		t.Errorf("GeneratePrime(2, ...) = %v, want ErrBadInput", err)
	}
	if _, err := GeneratePrime(MaxBits+1, false, newDetReader(1)); err != ErrBadInput {
		t.Errorf("GeneratePrime(MaxBits+1, ...) = %v, want ErrBadInput", err)
	}
}
