package byteio_test

import (
	"errors"
	"testing"

	"github.com/go-nef/nefdecode/internal/byteio"
)

func TestReaderScalars(t *testing.T) {
	t.Parallel()

	buf := []byte{
		0x01,             // u8
		0xFF,             // i8 (-1)
		0x12, 0x34,       // u16
		0x00, 0x2A,       // next u32 lead-in (unused)
		0x00, 0x00, 0x00, 0x2A, // u32 = 42
	}

	r := byteio.New(buf)

	u8, err := r.ReadU8()
	if err != nil || u8 != 0x01 {
		t.Fatalf("ReadU8() = %v, %v", u8, err)
	}

	i8, err := r.ReadI8()
	if err != nil || i8 != -1 {
		t.Fatalf("ReadI8() = %v, %v", i8, err)
	}

	u16, err := r.ReadU16()
	if err != nil || u16 != 0x1234 {
		t.Fatalf("ReadU16() = %#x, %v", u16, err)
	}

	if err := r.SeekRel(2); err != nil {
		t.Fatalf("SeekRel: %v", err)
	}

	u32, err := r.ReadU32()
	if err != nil || u32 != 42 {
		t.Fatalf("ReadU32() = %v, %v", u32, err)
	}
}

func TestReaderTruncated(t *testing.T) {
	t.Parallel()

	r := byteio.New([]byte{0x01, 0x02})

	if _, err := r.ReadU32(); !errors.Is(err, byteio.ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestReaderSeekAbsRel(t *testing.T) {
	t.Parallel()

	r := byteio.New([]byte{0, 1, 2, 3, 4, 5})

	if err := r.SeekAbs(4); err != nil {
		t.Fatalf("SeekAbs: %v", err)
	}

	if got := r.Tell(); got != 4 {
		t.Fatalf("Tell() = %d, want 4", got)
	}

	v, err := r.ReadU8()
	if err != nil || v != 4 {
		t.Fatalf("ReadU8() = %v, %v", v, err)
	}

	if err := r.SeekAbs(-1); !errors.Is(err, byteio.ErrNegativeOffset) {
		t.Fatalf("expected ErrNegativeOffset, got %v", err)
	}
}

func TestReaderFloats(t *testing.T) {
	t.Parallel()

	// 1.0 as big-endian float32 and float64.
	buf := []byte{
		0x3F, 0x80, 0x00, 0x00,
		0x3F, 0xF0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	r := byteio.New(buf)

	f32, err := r.ReadF32()
	if err != nil || f32 != 1.0 {
		t.Fatalf("ReadF32() = %v, %v", f32, err)
	}

	f64, err := r.ReadF64()
	if err != nil || f64 != 1.0 {
		t.Fatalf("ReadF64() = %v, %v", f64, err)
	}
}
