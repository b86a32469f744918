package makernote

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/go-nef/nefdecode/internal/byteio"
	"github.com/go-nef/nefdecode/internal/tifftags"
)

// buildInnerIFD mirrors the ifd package's test helper: one flat IFD with
// inline-only entries, relative to whatever base the caller later seeks
// from.
func buildInnerIFD(entries [][4]uint16, values [][4]byte) []byte {
	var buf []byte

	buf = binary.BigEndian.AppendUint16(buf, uint16(len(entries)))

	for i, e := range entries {
		buf = binary.BigEndian.AppendUint16(buf, e[0])
		buf = binary.BigEndian.AppendUint16(buf, e[1])
		buf = binary.BigEndian.AppendUint32(buf, uint32(e[2])<<16|uint32(e[3]))
		buf = append(buf, values[i][:]...)
	}

	buf = binary.BigEndian.AppendUint32(buf, 0)

	return buf
}

func buildMakernote(innerIFD []byte, innerOffset uint32) []byte {
	var buf []byte

	buf = append(buf, []byte("Nikon\x00")...)
	buf = binary.BigEndian.AppendUint16(buf, 2) // version
	buf = binary.BigEndian.AppendUint16(buf, 0) // reserved
	buf = append(buf, []byte("MM")...)
	buf = binary.BigEndian.AppendUint16(buf, 42)
	buf = binary.BigEndian.AppendUint32(buf, innerOffset)
	buf = append(buf, innerIFD...)

	return buf
}

func TestParseValidMakernote(t *testing.T) {
	inner := buildInnerIFD(
		[][4]uint16{{tifftags.NikonISO, 3, 0, 1}},
		[][4]byte{{0, 200, 0, 0}},
	)

	mn := buildMakernote(inner, 8)

	r := byteio.New(mn)

	dir, err := Parse(context.Background(), nil, r, 0)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	e, ok := dir.Get(tifftags.NikonISO)
	if !ok {
		t.Fatal("missing ISO entry")
	}

	v, ok := e.Value.AsU32()
	if !ok || v != 200 {
		t.Fatalf("ISO = %v, %v; want 200, true", v, ok)
	}
}

func TestParseRejectsBadPreamble(t *testing.T) {
	buf := []byte("Canon\x00")
	buf = append(buf, make([]byte, 20)...)

	r := byteio.New(buf)

	_, err := Parse(context.Background(), nil, r, 0)
	if err != ErrUnsupportedVendor {
		t.Fatalf("got %v, want ErrUnsupportedVendor", err)
	}
}

func TestParseRejectsBadSentinel(t *testing.T) {
	var buf []byte
	buf = append(buf, []byte("Nikon\x00")...)
	buf = binary.BigEndian.AppendUint16(buf, 2)
	buf = binary.BigEndian.AppendUint16(buf, 0)
	buf = append(buf, []byte("II")...) // wrong byte order sentinel
	buf = binary.BigEndian.AppendUint16(buf, 42)
	buf = binary.BigEndian.AppendUint32(buf, 8)

	r := byteio.New(buf)

	_, err := Parse(context.Background(), nil, r, 0)
	if err != ErrBadMagic {
		t.Fatalf("got %v, want ErrBadMagic", err)
	}
}
