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

// Package makernote validates and re-enters the IFD walker (C3) against the
// Nikon Makernote's own embedded TIFF structure (C4).
package makernote

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/go-nef/nefdecode/internal/byteio"
	"github.com/go-nef/nefdecode/internal/ifd"
	"github.com/go-nef/nefdecode/internal/tifftags"
)

var preamble = []byte("Nikon\x00")

const (
	byteOrderMM  = "MM"
	tiffVersion  = 42
	preambleSize = 6
)

// Parse validates the Makernote preamble at absoluteOffset and re-enters the
// IFD walker with a base shifted to absoluteOffset+10, returning the single
// IFD it produces.
func Parse(ctx context.Context, log *slog.Logger, r *byteio.Reader, absoluteOffset int64) (ifd.IFD, error) {
	if err := r.SeekAbs(absoluteOffset); err != nil {
		return nil, err
	}

	tag, err := r.ReadExact(preambleSize)
	if err != nil {
		return nil, err
	}

	if !bytes.Equal(tag, preamble) {
		return nil, ErrUnsupportedVendor
	}

	// Version short + reserved short: recorded for diagnostics only.
	mnVersion, err := r.ReadU16()
	if err != nil {
		return nil, err
	}

	mnReserved, err := r.ReadU16()
	if err != nil {
		return nil, err
	}

	base := absoluteOffset + 10

	if err := r.SeekAbs(base); err != nil {
		return nil, err
	}

	sentinel, err := r.ReadExact(2)
	if err != nil {
		return nil, err
	}

	if string(sentinel) != byteOrderMM {
		return nil, ErrBadMagic
	}

	version, err := r.ReadU16()
	if err != nil {
		return nil, err
	}

	if version != tiffVersion {
		return nil, ErrBadMagic
	}

	firstIFDOffset, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	if log != nil {
		log.DebugContext(ctx, "entering makernote", slog.Int64("base", base),
			slog.Int("makernote_version", int(mnVersion)),
			slog.Int("makernote_reserved", int(mnReserved)),
			slog.Int64("first_ifd_offset", int64(firstIFDOffset)))
	}

	dirs, err := ifd.Walk(ctx, log, r, int64(firstIFDOffset), tifftags.NikonName, false, base)
	if err != nil {
		return nil, err
	}

	if len(dirs) != 1 {
		return nil, ErrMalformedStructure
	}

	return dirs[0], nil
}
