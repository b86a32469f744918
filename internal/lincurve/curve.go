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

// Package lincurve decodes the Nikon linearization curve embedded in the
// Makernote (C5): the lookup that maps compressed sensor codes back to
// linear samples, plus the optional mid-frame Huffman tree split.
package lincurve

import (
	"context"
	"log/slog"

	"github.com/go-nef/nefdecode/internal/byteio"
	"github.com/go-nef/nefdecode/internal/ifd"
)

// noSplitRow marks a curve with no mid-frame tree switch.
const noSplitRow int32 = -1

const splitRowFieldOffset = 562

const versionByteCoolpixA = 0x49
const versionByteDf = 0x58
const versionByteSplitLead = 0x44
const versionByteSplitTrail = 0x20
const versionByte14Bit = 0x46
const maxVerbatimPoints = 16385

const bps14 = 14

// Curve is the expanded linearization lookup plus the Huffman tree variant
// selector derived alongside it.
type Curve struct {
	Version       [2]uint8
	VertPred      [2][2]uint16
	HPred         [2]uint16
	NumPoints     int
	ExpandedCurve []uint16
	SplitRow      int32
	TreeIndex     uint8
}

// Decode reads and expands the linearization curve found at entry's
// recorded value location.
func Decode(ctx context.Context, log *slog.Logger, r *byteio.Reader, entry ifd.Entry, sensorBPS uint16) (Curve, error) {
	if err := r.SeekAbs(entry.ValueLocation); err != nil {
		return Curve{}, err
	}

	v0, err := r.ReadU8()
	if err != nil {
		return Curve{}, err
	}

	v1, err := r.ReadU8()
	if err != nil {
		return Curve{}, err
	}

	treeIndex := uint8(0)
	if v0 == versionByte14Bit {
		treeIndex += 2
	}

	if sensorBPS == bps14 {
		treeIndex += 3
	}

	if v0 == versionByteCoolpixA || v1 == versionByteDf {
		if err := r.SeekRel(2110); err != nil {
			return Curve{}, err
		}
	}

	var vertPred [2][2]uint16

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			p, err := r.ReadU16()
			if err != nil {
				return Curve{}, err
			}

			vertPred[i][j] = p
		}
	}

	numPoints, err := r.ReadU16()
	if err != nil {
		return Curve{}, err
	}

	maxCurveLen := 1 << (sensorBPS & 0x7FFF)

	step := 0
	if numPoints > 1 {
		step = maxCurveLen / (int(numPoints) - 1)
	}

	values := make([]uint16, numPoints)

	for i := range values {
		v, err := r.ReadU16()
		if err != nil {
			return Curve{}, err
		}

		values[i] = v
	}

	if log != nil {
		log.DebugContext(ctx, "linearization curve header",
			slog.Int("v0", int(v0)), slog.Int("v1", int(v1)),
			slog.Int("num_points", int(numPoints)), slog.Int("tree_index", int(treeIndex)))
	}

	var (
		expanded []uint16
		splitRow int32 = noSplitRow
	)

	switch {
	case v0 == versionByteSplitLead && v1 == versionByteSplitTrail && step > 0:
		expanded = interpolate(values, maxCurveLen, step)

		if err := r.SeekAbs(entry.ValueLocation + splitRowFieldOffset); err != nil {
			return Curve{}, err
		}

		sr, err := r.ReadU16()
		if err != nil {
			return Curve{}, err
		}

		splitRow = int32(sr)
	case v0 != versionByte14Bit && int(numPoints) <= maxVerbatimPoints:
		expanded = values
	default:
		return Curve{}, ErrUnsupportedVariant
	}

	expanded = trimTrailingDuplicates(expanded)

	return Curve{
		Version:       [2]uint8{v0, v1},
		VertPred:      vertPred,
		HPred:         [2]uint16{0, 0},
		NumPoints:     len(expanded),
		ExpandedCurve: expanded,
		SplitRow:      splitRow,
		TreeIndex:     treeIndex,
	}, nil
}

// interpolate places values[i] at index i*step and fills the gaps with
// integer-linear interpolation; any tail past the last placed index is held
// at the last known value.
func interpolate(values []uint16, maxCurveLen, step int) []uint16 {
	out := make([]uint16, maxCurveLen)

	for i := 0; i < len(values)-1; i++ {
		lo, hi := int(values[i]), int(values[i+1])
		base := i * step

		for j := 0; j < step; j++ {
			idx := base + j
			if idx >= maxCurveLen {
				break
			}

			out[idx] = uint16(lo + (hi-lo)*j/step)
		}
	}

	last := (len(values) - 1) * step
	if last < maxCurveLen {
		out[last] = values[len(values)-1]
	}

	for idx := last + 1; idx < maxCurveLen; idx++ {
		out[idx] = values[len(values)-1]
	}

	return out
}

func trimTrailingDuplicates(curve []uint16) []uint16 {
	n := len(curve)
	for n >= 2 && curve[n-2] == curve[n-1] {
		n--
	}

	return curve[:n]
}
