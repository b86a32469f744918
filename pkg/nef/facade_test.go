package nef_test

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/go-nef/nefdecode/internal/ifd"
	"github.com/go-nef/nefdecode/internal/tifftags"
	"github.com/go-nef/nefdecode/internal/tiffvalue"
	"github.com/go-nef/nefdecode/pkg/nef"
)

func u16Entry(tagID uint16, v uint16) ifd.Entry {
	raw := make([]byte, 2)
	binary.BigEndian.PutUint16(raw, v)

	return ifd.Entry{
		TagID:    tagID,
		TypeCode: 3,
		Count:    1,
		Value:    tiffvalue.Decode(3, 1, raw),
	}
}

func rawIFDFixture() ifd.IFD {
	dir := ifd.IFD{
		tifftags.ImageType:        u16Entry(tifftags.ImageType, 0),
		tifftags.ImageWidth:       u16Entry(tifftags.ImageWidth, 4288),
		tifftags.ImageHeight:      u16Entry(tifftags.ImageHeight, 2848),
		tifftags.ImageBPS:         u16Entry(tifftags.ImageBPS, 12),
		tifftags.ImageCompression: u16Entry(tifftags.ImageCompression, 34713),
	}

	offsetRaw := make([]byte, 4)
	binary.BigEndian.PutUint32(offsetRaw, 4096)
	dir[tifftags.ImageOffset] = ifd.Entry{
		TagID:    tifftags.ImageOffset,
		TypeCode: 4,
		Count:    1,
		Value:    tiffvalue.Decode(4, 1, offsetRaw),
	}

	repeatRaw := []byte{0, 2, 0, 2}
	dir[tifftags.CFARepeatPattern] = ifd.Entry{
		TagID:    tifftags.CFARepeatPattern,
		TypeCode: 3,
		Count:    2,
		Value:    tiffvalue.Decode(3, 2, repeatRaw),
	}

	dir[tifftags.CFAPattern] = ifd.Entry{
		TagID:    tifftags.CFAPattern,
		TypeCode: 1,
		Count:    4,
		Value:    tiffvalue.Decode(1, 4, []byte{0, 1, 1, 2}),
	}

	return dir
}

func TestFindRawIFDLocatesImageTypeZero(t *testing.T) {
	preview := ifd.IFD{tifftags.ImageType: u16Entry(tifftags.ImageType, 1)}
	raw := rawIFDFixture()

	got, err := nef.FindRawIFD([]ifd.IFD{preview, raw})
	if err != nil {
		t.Fatalf("FindRawIFD: %v", err)
	}

	w, _ := got.Get(tifftags.ImageWidth)
	if v, _ := w.Value.AsU32(); v != 4288 {
		t.Fatalf("width = %d, want 4288", v)
	}
}

func TestFindRawIFDMissingYieldsErrMissingTag(t *testing.T) {
	preview := ifd.IFD{tifftags.ImageType: u16Entry(tifftags.ImageType, 1)}

	_, err := nef.FindRawIFD([]ifd.IFD{preview})
	if !errors.Is(err, nef.ErrMissingTag) {
		t.Fatalf("got %v, want ErrMissingTag", err)
	}
}

func TestGeometryReadsAllFields(t *testing.T) {
	raw := rawIFDFixture()

	g, err := nef.Geometry(raw)
	if err != nil {
		t.Fatalf("Geometry: %v", err)
	}

	if g.Width != 4288 || g.Height != 2848 || g.BitsPerSample != 12 {
		t.Fatalf("unexpected geometry: %+v", g)
	}

	if g.Offset != 4096 || g.Compression != 34713 {
		t.Fatalf("unexpected strip layout: %+v", g)
	}
}

func TestGeometryMissingTagFails(t *testing.T) {
	raw := rawIFDFixture()
	delete(raw, tifftags.ImageHeight)

	_, err := nef.Geometry(raw)
	if !errors.Is(err, nef.ErrMissingTag) {
		t.Fatalf("got %v, want ErrMissingTag", err)
	}
}

func TestCfaReadsPatternAndRepeat(t *testing.T) {
	raw := rawIFDFixture()

	c, err := nef.Cfa(raw)
	if err != nil {
		t.Fatalf("Cfa: %v", err)
	}

	if c.RepeatRows != 2 || c.RepeatCols != 2 {
		t.Fatalf("unexpected repeat dims: %+v", c)
	}

	want := [4]uint8{0, 1, 1, 2}
	if c.Pattern != want {
		t.Fatalf("pattern = %v, want %v", c.Pattern, want)
	}
}

func TestFindMakernoteOffsetReturnsAbsoluteOffset(t *testing.T) {
	raw := make([]byte, 4)
	binary.BigEndian.PutUint32(raw, 9000)

	dir := ifd.IFD{
		tifftags.Makernote: {
			TagID:    tifftags.Makernote,
			TypeCode: 4,
			Count:    1,
			Value:    tiffvalue.Decode(4, 1, raw),
		},
	}

	off, err := nef.FindMakernoteOffset([]ifd.IFD{dir})
	if err != nil {
		t.Fatalf("FindMakernoteOffset: %v", err)
	}

	if off != 9000 {
		t.Fatalf("offset = %d, want 9000", off)
	}
}

func TestFindMakernoteOffsetAbsentYieldsErrNoMakernote(t *testing.T) {
	_, err := nef.FindMakernoteOffset([]ifd.IFD{{}})
	if !errors.Is(err, nef.ErrNoMakernote) {
		t.Fatalf("got %v, want ErrNoMakernote", err)
	}
}
