package mpi

import "testing"

func TestScenarioS3(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{693, 609, 21},
		{1764, 868, 28},
	}
	for _, c := range cases {
		g := new(Int)
		if err := GCD(g, NewInt(c.a), NewInt(c.b)); err != nil {
			t.Fatal(err)
		}
		if g.CmpInt64(c.want) != 0 {
			t.Errorf("gcd(%d,%d) = %v, want %d", c.a, c.b, g, c.want)
		}
	}
}

func TestGCDZeroOperand(t *testing.T) {
	g := new(Int)
	if err := GCD(g, NewInt(0), NewInt(42)); err != nil {
		t.Fatal(err)
	}
	if g.CmpInt64(42) != 0 {
		t.Errorf("gcd(0,42) = %v, want 42", g)
	}
}

func TestScenarioS4(t *testing.T) {
	x := new(Int)
	if err := ModInverse(x, NewInt(3), NewInt(11)); err != nil {
		t.Fatal(err)
	}
	if x.CmpInt64(4) != 0 {
		t.Errorf("inv_mod(3,11) = %v, want 4", x)
	}

	if err := ModInverse(new(Int), NewInt(6), NewInt(9)); err != ErrNotAcceptable {
		t.Errorf("inv_mod(6,9) = %v, want ErrNotAcceptable", err)
	}
}

func TestModInverseProperty(t *testing.T) {
	mods := []int64{11, 97, 65537, 1000000007}
	for _, n := range mods {
		for _, a := range []int64{2, 3, 5, 7, 123456} {
			x := new(Int)
			err := ModInverse(x, NewInt(a), NewInt(n))
			if err == ErrNotAcceptable {
				continue
			}
			if err != nil {
				t.Fatal(err)
			}
			prod := new(Int)
			prod.Mul(NewInt(a), x)
			r := new(Int)
			if err := Mod(r, prod, NewInt(n)); err != nil {
				t.Fatal(err)
			}
			if r.CmpInt64(1) != 0 {
				t.Errorf("(%d * inv_mod(%d,%d)) mod %d = %v, want 1", a, a, n, n, r)
			}
		}
	}
}
