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

package nef

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-nef/nefdecode/internal/byteio"
	"github.com/go-nef/nefdecode/internal/huffman"
	"github.com/go-nef/nefdecode/internal/ifd"
	"github.com/go-nef/nefdecode/internal/lincurve"
	"github.com/go-nef/nefdecode/internal/makernote"
	"github.com/go-nef/nefdecode/internal/raster"
	"github.com/go-nef/nefdecode/internal/tifftags"
	"github.com/go-nef/nefdecode/internal/tiffvalue"
)

const (
	byteOrderMM = "MM"
	tiffMagic   = 42
)

// Decode runs the full pipeline over an in-memory NEF image: C1 opens the
// byte span, C3 walks the outer IFDs, a Makernote tag (if present) hands
// off to C4 and a second C3 walk, C5 expands the linearization curve, and
// C8 (driven by C6+C7) reconstructs the raw sensor raster. It returns
// every output spec §6 promises external collaborators.
func Decode(ctx context.Context, log *slog.Logger, data []byte) (Result, error) {
	r := byteio.New(data).WithTracer(ctx, byteio.SlogTracer{Log: log})

	if err := r.SeekAbs(0); err != nil {
		return Result{}, err
	}

	sentinel, err := r.ReadExact(2)
	if err != nil {
		return Result{}, err
	}

	if string(sentinel) != byteOrderMM {
		return Result{}, fmt.Errorf("%w: byte order sentinel", ErrBadMagic)
	}

	magic, err := r.ReadU16()
	if err != nil {
		return Result{}, err
	}

	if magic != tiffMagic {
		return Result{}, fmt.Errorf("%w: TIFF magic", ErrBadMagic)
	}

	firstIFD, err := r.ReadU32()
	if err != nil {
		return Result{}, err
	}

	ifds, err := ifd.Walk(ctx, log, r, int64(firstIFD), tifftags.Name, true, 0)
	if err != nil {
		return Result{}, err
	}

	rawIFD, err := FindRawIFD(ifds)
	if err != nil {
		return Result{}, err
	}

	geometry, err := Geometry(rawIFD)
	if err != nil {
		return Result{}, err
	}

	cfa, err := Cfa(rawIFD)
	if err != nil {
		return Result{}, err
	}

	mnOffset, err := FindMakernoteOffset(ifds)
	if err != nil {
		return Result{}, err
	}

	mn, err := makernote.Parse(ctx, log, r, mnOffset)
	if err != nil {
		return Result{}, err
	}

	curveEntry, ok := mn.Get(tifftags.NikonLinearization)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrMissingTag, tifftags.NikonName(tifftags.NikonLinearization))
	}

	compressionEntry, ok := mn.Get(tifftags.NikonNEFCompression)
	if !ok {
		return Result{}, fmt.Errorf("%w: %s", ErrMissingTag, tifftags.NikonName(tifftags.NikonNEFCompression))
	}

	if log != nil {
		log.InfoContext(ctx, "makernote parsed",
			slog.Int64("offset", mnOffset),
			slog.Int("compression", int(mustU32(compressionEntry))))
	}

	curve, err := lincurve.Decode(ctx, log, r, curveEntry, uint16(geometry.BitsPerSample))
	if err != nil {
		return Result{}, err
	}

	mn[tifftags.NikonLinearization] = patchedCurveEntry(curveEntry, curve)

	pixelData, err := readStrip(r, geometry.Offset)
	if err != nil {
		return Result{}, err
	}

	raw, err := raster.Reconstruct(
		ctx, log, pixelData,
		geometry.Width, geometry.Height,
		curve, huffman.TreeIndex(curve.TreeIndex),
	)
	if err != nil {
		return Result{}, err
	}

	return Result{
		IFDs:      ifds,
		Makernote: mn,
		Raster:    raw,
		Geometry:  geometry,
		Cfa:       cfa,
	}, nil
}

// readStrip returns every byte from offset to the end of the file image:
// the compressed pixel strip has no independently recorded length, so the
// reconstructor consumes exactly as many bits as it needs and ignores the
// rest.
func readStrip(r *byteio.Reader, offset int64) ([]byte, error) {
	n := r.Len() - offset
	if n < 0 {
		return nil, byteio.ErrTruncated
	}

	if err := r.SeekAbs(offset); err != nil {
		return nil, err
	}

	return r.ReadExact(int(n))
}

func mustU32(e ifd.Entry) uint32 {
	v, _ := e.Value.AsU32()

	return v
}

func patchedCurveEntry(original ifd.Entry, curve lincurve.Curve) ifd.Entry {
	patched := original
	patched.Value = tiffvalue.FromU16Sequence(curve.ExpandedCurve)

	return patched
}
