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

// Package raster drives the bitstream (C6) and Huffman decoder (C7) over a
// raw pixel strip, reconstructing a linearized sensor raster from signed
// differences and a vertical/horizontal predictor grid (C8).
package raster

import (
	"context"
	"log/slog"

	"github.com/go-nef/nefdecode/internal/bitstream"
	"github.com/go-nef/nefdecode/internal/huffman"
	"github.com/go-nef/nefdecode/internal/lincurve"
)

// maxTolerableOverrunBits bounds how many bits past the end of the real
// pixel span are treated as the producer's byte-alignment tail on its last
// code, rather than as missing data.
const maxTolerableOverrunBits = 7

// Raster is a height x width grid of linearized sensor samples in row-major
// order.
type Raster struct {
	Width  int
	Height int
	Pixels []uint16
}

// At returns the sample at (row, col).
func (r Raster) At(row, col int) uint16 {
	return r.Pixels[row*r.Width+col]
}

// Reconstruct decodes width*height samples from pixelData using curve and
// the initial tree, applying the 2x2 vertical / 2-element horizontal
// predictor grid and the linearization curve lookup.
func Reconstruct(
	ctx context.Context,
	log *slog.Logger,
	pixelData []byte,
	width, height int,
	curve lincurve.Curve,
	tree huffman.TreeIndex,
) (Raster, error) {
	bs := bitstream.New(pixelData)

	vertPred := curve.VertPred
	horizPred := [2]uint16{0, 0}
	activeTree := tree

	clampMax := curve.NumPoints - 1

	pixels := make([]uint16, width*height)

	for row := 0; row < height; row++ {
		if int32(row) == curve.SplitRow {
			activeTree++

			if log != nil {
				log.DebugContext(ctx, "split row reached", slog.Int("row", row))
			}
		}

		// Horizontal predictors always reset at row start; the split row
		// above additionally advances the active tree.
		horizPred = [2]uint16{0, 0}

		for col := 0; col < width; col++ {
			diff, err := huffman.DecodeOne(bs, activeTree)
			if err != nil {
				return Raster{}, err
			}

			if bs.OverrunBits() > maxTolerableOverrunBits {
				return Raster{}, ErrTruncated
			}

			p := col & 1

			var sample int32

			if col < 2 {
				vertPred[row&1][p] = uint16(int32(vertPred[row&1][p]) + diff)
				sample = int32(vertPred[row&1][p])
			} else {
				horizPred[p] = uint16(int32(horizPred[p]) + diff)
				sample = int32(horizPred[p])
			}

			sample = clampInt(sample, 0, int32(clampMax))

			pixels[row*width+col] = curve.ExpandedCurve[sample]
		}
	}

	return Raster{Width: width, Height: height, Pixels: pixels}, nil
}

func clampInt(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

