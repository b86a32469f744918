package ifd

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/go-nef/nefdecode/internal/byteio"
	"github.com/go-nef/nefdecode/internal/tifftags"
)

// buildIFD appends one IFD at the current end of buf: entry count, each
// 12-byte entry, then the 4-byte next-IFD offset. Out-of-line values are
// appended after nextOffset and entries patched to point at them.
type rawEntry struct {
	tagID    uint16
	typeCode uint16
	count    uint32
	inline   []byte // exactly 4 bytes when set
	outline  []byte // appended after the directory when len > 4
}

func buildIFD(buf []byte, entries []rawEntry, nextIFD uint32) ([]byte, int64) {
	start := int64(len(buf))

	buf = binary.BigEndian.AppendUint16(buf, uint16(len(entries)))

	patchAt := make([]int, len(entries))

	for i, e := range entries {
		buf = binary.BigEndian.AppendUint16(buf, e.tagID)
		buf = binary.BigEndian.AppendUint16(buf, e.typeCode)
		buf = binary.BigEndian.AppendUint32(buf, e.count)

		if e.outline != nil {
			patchAt[i] = len(buf)
			buf = append(buf, 0, 0, 0, 0)
		} else {
			v := e.inline

			buf = append(buf, v[0], v[1], v[2], v[3])
		}
	}

	buf = binary.BigEndian.AppendUint32(buf, nextIFD)

	for i, e := range entries {
		if e.outline == nil {
			continue
		}

		off := uint32(len(buf))
		binary.BigEndian.PutUint32(buf[patchAt[i]:], off)
		buf = append(buf, e.outline...)
	}

	return buf, start
}

func namer(tagID uint16) string { return tifftags.Name(tagID) }

func TestWalkSingleIFDInlineValues(t *testing.T) {
	buf := make([]byte, 8) // header-sized lead-in: an IFD never sits at offset 0

	buf, start := buildIFD(buf, []rawEntry{
		{tagID: tifftags.ImageWidth, typeCode: 3, count: 1, inline: []byte{0x10, 0x00, 0, 0}},
		{tagID: tifftags.ImageHeight, typeCode: 3, count: 1, inline: []byte{0x0c, 0x00, 0, 0}},
	}, 0)

	r := byteio.New(buf)

	dirs, err := Walk(context.Background(), nil, r, start, namer, false, 0)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	if len(dirs) != 1 {
		t.Fatalf("got %d IFDs, want 1", len(dirs))
	}

	e, ok := dirs[0].Get(tifftags.ImageWidth)
	if !ok {
		t.Fatal("missing ImageWidth entry")
	}

	v, ok := e.Value.AsU32()
	if !ok || v != 0x1000 {
		t.Fatalf("ImageWidth = %v, %v; want 0x1000, true", v, ok)
	}
}

func TestWalkChildIFDIsTraversed(t *testing.T) {
	// Build the child IFD first so we know its offset, then the parent
	// pointing at it via an inline LONG value (a single LONG always fits in
	// the 4-byte value slot).
	all := make([]byte, 8) // header-sized lead-in: offset 0 ends a chain

	all, childStart := buildIFD(all, []rawEntry{
		{tagID: tifftags.ImageBPS, typeCode: 3, count: 1, inline: []byte{0, 12, 0, 0}},
	}, 0)

	childOffsetBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(childOffsetBytes, uint32(childStart))

	all, parentStart := buildIFD(all, []rawEntry{
		{tagID: tifftags.ExifIFDOffset, typeCode: 4, count: 1, inline: childOffsetBytes},
	}, 0)

	r := byteio.New(all)

	dirs, err := Walk(context.Background(), nil, r, parentStart, namer, false, 0)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	if len(dirs) != 2 {
		t.Fatalf("got %d IFDs, want 2 (parent + EXIF child)", len(dirs))
	}

	found := false

	for _, d := range dirs {
		if e, ok := d.Get(tifftags.ImageBPS); ok {
			found = true

			v, _ := e.Value.AsU32()
			if v != 12 {
				t.Fatalf("ImageBPS = %d, want 12", v)
			}
		}
	}

	if !found {
		t.Fatal("child IFD was not walked")
	}
}

func TestWalkOutOfLineASCIIValue(t *testing.T) {
	buf := make([]byte, 8) // header-sized lead-in: an IFD never sits at offset 0

	buf, start := buildIFD(buf, []rawEntry{
		{tagID: 305, typeCode: 2, count: 9, outline: []byte("nefdecode")},
	}, 0)

	r := byteio.New(buf)

	dirs, err := Walk(context.Background(), nil, r, start, namer, false, 0)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	e, ok := dirs[0].Get(305)
	if !ok {
		t.Fatal("missing software tag entry")
	}

	if got := string(e.Value.ASCII()); got != "nefdecode" {
		t.Fatalf("ASCII() = %q, want %q", got, "nefdecode")
	}
}

func TestWalkMakernoteStoresAbsoluteOffsetWithoutDereferencing(t *testing.T) {
	buf := make([]byte, 8) // header-sized lead-in: an IFD never sits at offset 0

	// Out-of-line Makernote blob the walker must NOT try to decode as TIFF
	// entries — if it did, it would try to read far more bytes than exist.
	blob := make([]byte, 200)

	buf, start := buildIFD(buf, []rawEntry{
		{tagID: tifftags.Makernote, typeCode: 7, count: 200, outline: blob},
	}, 0)

	r := byteio.New(buf)

	dirs, err := Walk(context.Background(), nil, r, start, namer, true, 0)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}

	e, ok := dirs[0].Get(tifftags.Makernote)
	if !ok {
		t.Fatal("missing Makernote entry")
	}

	absOffset, ok := e.Value.AsU32()
	if !ok {
		t.Fatal("Makernote entry value is not a scalar offset")
	}

	if int64(absOffset) != e.ValueLocation {
		t.Fatalf("Makernote value %d != recorded ValueLocation %d", absOffset, e.ValueLocation)
	}
}

func TestWalkBudgetExceeded(t *testing.T) {
	// A single IFD whose "next" pointer points back at itself loops forever
	// without the budget guard.
	buf := make([]byte, 8) // header-sized lead-in: an IFD never sits at offset 0
	buf, start := buildIFD(buf, nil, 0)
	binary.BigEndian.PutUint32(buf[len(buf)-4:], uint32(start))

	r := byteio.New(buf)

	_, err := Walk(context.Background(), nil, r, start, namer, false, 0)
	if err == nil {
		t.Fatal("expected ErrMalformedStructure on cyclic IFD chain, got nil")
	}
}
