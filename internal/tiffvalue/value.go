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

// Package tiffvalue interprets a (type-code, count, raw-bytes) IFD entry
// triple as a typed value: the 12 TIFF 6.0 base types.
package tiffvalue

import (
	"encoding/binary"
	"math"
)

// Kind identifies which TIFF base type a TypedValue holds.
type Kind uint8

// The 12 TIFF 6.0 base types.
const (
	KindU8 Kind = iota + 1
	KindASCII
	KindU16
	KindU32
	KindURational
	KindI8
	KindUndefined
	KindI16
	KindI32
	KindSRational
	KindF32
	KindF64
)

// URational is an unsigned rational stored as its raw numerator/denominator
// pair; formatting ("a/b") or division is left to the caller.
type URational struct{ Num, Den uint32 }

// SRational is a signed rational stored as its raw numerator/denominator
// pair.
type SRational struct{ Num, Den int32 }

// sizes maps a TIFF type code to its per-element byte size.
var sizes = map[uint16]int{
	1: 1, 2: 1, 3: 2, 4: 4, 5: 8,
	6: 1, 7: 1, 8: 2, 9: 4, 10: 8, 11: 4, 12: 8,
}

var kindOf = map[uint16]Kind{
	1: KindU8, 2: KindASCII, 3: KindU16, 4: KindU32, 5: KindURational,
	6: KindI8, 7: KindUndefined, 8: KindI16, 9: KindI32, 10: KindSRational,
	11: KindF32, 12: KindF64,
}

// TypeSize reports the per-element byte size of typeCode, and whether
// typeCode is a known TIFF base type. Unknown/private type codes (0 or
// outside 1..12) report size 1 (the U8 fallback) and ok=false.
func TypeSize(typeCode uint16) (size int, ok bool) {
	if s, known := sizes[typeCode]; known {
		return s, true
	}

	return 1, false
}

// TypedValue is a tagged union over the 12 TIFF base types. A count of 1
// yields a scalar value (IsScalar is true) for every kind except ASCII,
// which is always a byte span; Len reports the sequence length.
type TypedValue struct {
	Kind       Kind
	Downgraded bool // true if an unknown type code was coerced to U8
	u8s        []uint8
	i8s        []int8
	u16s       []uint16
	i16s       []int16
	u32s       []uint32
	i32s       []int32
	f32s       []float32
	f64s       []float64
	ascii      []byte
	urat       []URational
	srat       []SRational
}

// Len reports the element count of the underlying sequence.
func (v TypedValue) Len() int {
	switch v.Kind {
	case KindU8, KindUndefined:
		return len(v.u8s)
	case KindI8:
		return len(v.i8s)
	case KindU16:
		return len(v.u16s)
	case KindI16:
		return len(v.i16s)
	case KindU32:
		return len(v.u32s)
	case KindI32:
		return len(v.i32s)
	case KindF32:
		return len(v.f32s)
	case KindF64:
		return len(v.f64s)
	case KindASCII:
		return len(v.ascii)
	case KindURational:
		return len(v.urat)
	case KindSRational:
		return len(v.srat)
	default:
		return 0
	}
}

// IsScalar reports whether this value holds exactly one element. An ASCII
// value is never scalar.
func (v TypedValue) IsScalar() bool { return v.Kind != KindASCII && v.Len() == 1 }

// U8s returns the unsigned byte sequence (valid for KindU8/KindUndefined).
func (v TypedValue) U8s() []uint8 { return v.u8s }

// I8s returns the signed byte sequence (valid for KindI8).
func (v TypedValue) I8s() []int8 { return v.i8s }

// U16s returns the uint16 sequence (valid for KindU16).
func (v TypedValue) U16s() []uint16 { return v.u16s }

// I16s returns the int16 sequence (valid for KindI16).
func (v TypedValue) I16s() []int16 { return v.i16s }

// U32s returns the uint32 sequence (valid for KindU32).
func (v TypedValue) U32s() []uint32 { return v.u32s }

// I32s returns the int32 sequence (valid for KindI32).
func (v TypedValue) I32s() []int32 { return v.i32s }

// F32s returns the float32 sequence (valid for KindF32).
func (v TypedValue) F32s() []float32 { return v.f32s }

// F64s returns the float64 sequence (valid for KindF64).
func (v TypedValue) F64s() []float64 { return v.f64s }

// ASCII returns the raw byte span for KindASCII, untruncated at NUL.
func (v TypedValue) ASCII() []byte { return v.ascii }

// URationals returns the unsigned rational sequence (valid for KindURational).
func (v TypedValue) URationals() []URational { return v.urat }

// SRationals returns the signed rational sequence (valid for KindSRational).
func (v TypedValue) SRationals() []SRational { return v.srat }

// AsU32 best-effort widens a scalar integer-kind value to uint32; it is a
// convenience for callers (e.g. the metadata façade) that only care about
// magnitude and know the tag is integral.
func (v TypedValue) AsU32() (uint32, bool) {
	switch v.Kind {
	case KindU8, KindUndefined:
		if len(v.u8s) == 1 {
			return uint32(v.u8s[0]), true
		}
	case KindU16:
		if len(v.u16s) == 1 {
			return uint32(v.u16s[0]), true
		}
	case KindU32:
		if len(v.u32s) == 1 {
			return v.u32s[0], true
		}
	}

	return 0, false
}

// FromU16Sequence builds a KindU16 value directly from an already-decoded
// sequence, for passes that construct a value in memory rather than
// reading it off the wire (the Makernote linearization-curve entry is
// rewritten this way once C5 has expanded it).
func FromU16Sequence(values []uint16) TypedValue {
	return TypedValue{Kind: KindU16, u16s: append([]uint16(nil), values...)}
}

// Decode interprets raw as count elements of the TIFF type typeCode.
// Unknown type codes fall back to U8 with element size 1 (Downgraded=true);
// this is the documented forward-compatibility path, not an error.
func Decode(typeCode uint16, count uint32, raw []byte) TypedValue {
	kind, known := kindOf[typeCode]

	if !known {
		kind = KindU8
	}

	v := TypedValue{Kind: kind, Downgraded: !known}

	switch kind {
	case KindU8, KindUndefined:
		v.u8s = append([]uint8(nil), raw[:minInt(len(raw), int(count))]...)
	case KindI8:
		n := minInt(len(raw), int(count))
		v.i8s = make([]int8, n)
		for i := 0; i < n; i++ {
			v.i8s[i] = int8(raw[i])
		}
	case KindASCII:
		v.ascii = append([]byte(nil), raw...)
	case KindU16:
		v.u16s = decodeU16s(raw, int(count))
	case KindI16:
		u := decodeU16s(raw, int(count))
		v.i16s = make([]int16, len(u))
		for i, x := range u {
			v.i16s[i] = int16(x)
		}
	case KindU32:
		v.u32s = decodeU32s(raw, int(count))
	case KindI32:
		u := decodeU32s(raw, int(count))
		v.i32s = make([]int32, len(u))
		for i, x := range u {
			v.i32s[i] = int32(x)
		}
	case KindF32:
		u := decodeU32s(raw, int(count))
		v.f32s = make([]float32, len(u))
		for i, x := range u {
			v.f32s[i] = math.Float32frombits(x)
		}
	case KindF64:
		v.f64s = make([]float64, 0, count)
		for i := 0; i+8 <= len(raw) && len(v.f64s) < int(count); i += 8 {
			v.f64s = append(v.f64s, math.Float64frombits(binary.BigEndian.Uint64(raw[i:i+8])))
		}
	case KindURational:
		v.urat = make([]URational, 0, count)
		for i := 0; i+8 <= len(raw) && len(v.urat) < int(count); i += 8 {
			v.urat = append(v.urat, URational{
				Num: binary.BigEndian.Uint32(raw[i : i+4]),
				Den: binary.BigEndian.Uint32(raw[i+4 : i+8]),
			})
		}
	case KindSRational:
		v.srat = make([]SRational, 0, count)
		for i := 0; i+8 <= len(raw) && len(v.srat) < int(count); i += 8 {
			v.srat = append(v.srat, SRational{
				Num: int32(binary.BigEndian.Uint32(raw[i : i+4])),
				Den: int32(binary.BigEndian.Uint32(raw[i+4 : i+8])),
			})
		}
	}

	return v
}

func decodeU16s(raw []byte, count int) []uint16 {
	out := make([]uint16, 0, count)
	for i := 0; i+2 <= len(raw) && len(out) < count; i += 2 {
		out = append(out, binary.BigEndian.Uint16(raw[i:i+2]))
	}

	return out
}

func decodeU32s(raw []byte, count int) []uint32 {
	out := make([]uint32, 0, count)
	for i := 0; i+4 <= len(raw) && len(out) < count; i += 4 {
		out = append(out, binary.BigEndian.Uint32(raw[i:i+4]))
	}

	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
