package mpi

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestFillRandomReadsExactSize(t *testing.T) {
	src := bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04})
	x := new(Int)
	if err := x.FillRandom(4, src); err != nil {
		t.Fatal(err)
	}
	want := NewInt(0x01020304)
	if x.Cmp(want) != 0 {
		t.Errorf("FillRandom = %v, want %v", x, want)
	}
}

func TestFillRandomShortReadPropagatesError(t *testing.T) {
	src := bytes.NewReader([]byte{0x01})
	x := new(Int)
	err := x.FillRandom(4, src)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("FillRandom with short reader = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestFillRandomRejectsNonPositiveSize(t *testing.T) {
	x := new(Int)
	if err := x.FillRandom(0, bytes.NewReader(nil)); err != ErrBadInput {
		t.Errorf("FillRandom(0, ...) = %v, want ErrBadInput", err)
	}
}
