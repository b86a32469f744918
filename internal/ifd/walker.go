// nefdecode decodes Nikon Electronic Format (NEF) raw camera files into a
// linear, demosaic-ready pixel raster plus structured metadata.
// Copyright (C) 2026  R. Voss
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package ifd

import (
	"context"
	"log/slog"

	"github.com/go-nef/nefdecode/internal/byteio"
	"github.com/go-nef/nefdecode/internal/tifftags"
	"github.com/go-nef/nefdecode/internal/tiffvalue"
)

// childIFDTags are the tag ids whose decoded values are themselves relative
// offsets to child IFDs (Child IFD Offsets, EXIF IFD Offset).
var childIFDTags = map[uint16]bool{
	tifftags.ChildIFDOffsets: true,
	tifftags.ExifIFDOffset:   true,
}

// Namer resolves a tag id to a best-effort display name.
type Namer func(tagID uint16) string

// Walk recursively parses IFDs starting at initialOffset (relative to
// baseOffset) and returns them in the order their parse completed.
//
// baseOffset is 0 everywhere except when re-entering from the Makernote
// parser (C4), which shifts it to the Makernote's local base. When
// detectMakernote is true, a Nikon Makernote tag (37500) has its absolute
// offset stored as the entry's value instead of being dereferenced, so a
// later pass can re-enter with the correct base.
func Walk(
	ctx context.Context,
	log *slog.Logger,
	r *byteio.Reader,
	initialOffset int64,
	namer Namer,
	detectMakernote bool,
	baseOffset int64,
) ([]IFD, error) {
	worklist := []int64{initialOffset}

	var out []IFD

	for len(worklist) > 0 {
		offset := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if offset == 0 {
			continue
		}

		if len(out) >= budget {
			return nil, ErrMalformedStructure
		}

		dir, nextOffsets, err := walkOneIFD(ctx, log, r, offset, namer, detectMakernote, baseOffset)
		if err != nil {
			return nil, err
		}

		out = append(out, dir)
		worklist = append(worklist, nextOffsets...)
	}

	return out, nil
}

func walkOneIFD(
	ctx context.Context,
	log *slog.Logger,
	r *byteio.Reader,
	relOffset int64,
	namer Namer,
	detectMakernote bool,
	baseOffset int64,
) (IFD, []int64, error) {
	if err := r.SeekAbs(baseOffset + relOffset); err != nil {
		return nil, nil, err
	}

	n, err := r.ReadU16()
	if err != nil {
		return nil, nil, err
	}

	dir := make(IFD, n)

	var pending []int64

	for i := uint16(0); i < n; i++ {
		entry, childOffsets, err := readEntry(ctx, log, r, namer, detectMakernote, baseOffset)
		if err != nil {
			return nil, nil, err
		}

		dir[entry.TagID] = entry
		pending = append(pending, childOffsets...)
	}

	next, err := r.ReadU32()
	if err != nil {
		return nil, nil, err
	}

	if next != 0 {
		pending = append(pending, int64(next))
	}

	return dir, pending, nil
}

func readEntry(
	ctx context.Context,
	log *slog.Logger,
	r *byteio.Reader,
	namer Namer,
	detectMakernote bool,
	baseOffset int64,
) (Entry, []int64, error) {
	tagID, err := r.ReadU16()
	if err != nil {
		return Entry{}, nil, err
	}

	typeCode, err := r.ReadU16()
	if err != nil {
		return Entry{}, nil, err
	}

	count, err := r.ReadU32()
	if err != nil {
		return Entry{}, nil, err
	}

	valueLocation := r.Tell()

	elemSize, known := tiffvalue.TypeSize(typeCode)
	if !known && log != nil {
		log.DebugContext(ctx, "downgraded unknown type code to U8",
			slog.Int("tag_id", int(tagID)), slog.Int("type_code", int(typeCode)))
	}

	totalSize := elemSize * int(count)

	var value tiffvalue.TypedValue

	switch {
	case totalSize > 4:
		relOffset, err := r.ReadU32()
		if err != nil {
			return Entry{}, nil, err
		}

		absOffset := baseOffset + int64(relOffset)
		valueLocation = absOffset

		if detectMakernote && tagID == tifftags.Makernote {
			value = syntheticOffset(absOffset)
			break
		}

		here := r.Tell()
		if err := r.SeekAbs(absOffset); err != nil {
			return Entry{}, nil, err
		}

		raw, err := r.ReadExact(totalSize)
		if err != nil {
			return Entry{}, nil, err
		}

		value = tiffvalue.Decode(typeCode, count, raw)

		if err := r.SeekAbs(here); err != nil {
			return Entry{}, nil, err
		}
	default:
		raw, err := r.ReadExact(4)
		if err != nil {
			return Entry{}, nil, err
		}

		value = tiffvalue.Decode(typeCode, count, raw[:totalSize])
	}

	entry := Entry{
		TagID:         tagID,
		TagName:       namer(tagID),
		TypeCode:      typeCode,
		Count:         count,
		ValueLocation: valueLocation,
		Value:         value,
	}

	if log != nil {
		log.DebugContext(ctx, "decoded ifd entry",
			slog.Int("tag_id", int(tagID)), slog.String("tag_name", entry.TagName),
			slog.Int64("value_location", valueLocation))
	}

	var childOffsets []int64
	if childIFDTags[tagID] {
		childOffsets = extractOffsets(value)
	}

	return entry, childOffsets, nil
}

// syntheticOffset builds a TypedValue carrying an absolute offset as a
// scalar uint32, used for the Makernote entry whose value is deliberately
// not dereferenced during the outer walk (see C4).
func syntheticOffset(absOffset int64) tiffvalue.TypedValue {
	raw := []byte{
		byte(absOffset >> 24), byte(absOffset >> 16),
		byte(absOffset >> 8), byte(absOffset),
	}

	return tiffvalue.Decode(4, 1, raw)
}

// extractOffsets widens a child-IFD-pointer value (LONG or SHORT array) to
// a slice of relative offsets to push onto the walk worklist.
func extractOffsets(v tiffvalue.TypedValue) []int64 {
	switch v.Kind {
	case tiffvalue.KindU32:
		out := make([]int64, len(v.U32s()))
		for i, x := range v.U32s() {
			out[i] = int64(x)
		}

		return out
	case tiffvalue.KindU16:
		out := make([]int64, len(v.U16s()))
		for i, x := range v.U16s() {
			out[i] = int64(x)
		}

		return out
	default:
		return nil
	}
}
