package bitstream

import "testing"

func TestPeekConsumeWithinBytes(t *testing.T) {
	r := New([]byte{0b10110100, 0b01100000})

	v, err := r.Peek(3)
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}

	if v != 0b101 {
		t.Fatalf("Peek(3) = %b, want %b", v, 0b101)
	}

	if err := r.Consume(3); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	v, err = r.Peek(5)
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}

	if v != 0b10100 {
		t.Fatalf("Peek(5) = %b, want %b", v, 0b10100)
	}
}

func TestReadPastEndYieldsZero(t *testing.T) {
	r := New([]byte{0xFF})

	if err := r.Consume(8); err != nil {
		t.Fatalf("Consume: %v", err)
	}

	v, err := r.Peek(16)
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}

	if v != 0 {
		t.Fatalf("Peek(16) past EOF = %d, want 0", v)
	}

	if !r.Exhausted() {
		t.Fatal("Exhausted() = false, want true")
	}
}

func TestInvalidWidthRejected(t *testing.T) {
	r := New([]byte{0})

	if _, err := r.Peek(0); err != ErrInvalidWidth {
		t.Fatalf("Peek(0) err = %v, want ErrInvalidWidth", err)
	}

	if _, err := r.Peek(17); err != ErrInvalidWidth {
		t.Fatalf("Peek(17) err = %v, want ErrInvalidWidth", err)
	}
}
